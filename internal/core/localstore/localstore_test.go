package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingFileReturnsEmpty(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "nope.json"))
	assert.Empty(t, s.Get("anything"))
	assert.Empty(t, s.Token())
}

func TestSetGetRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := Open(path)

	require.NoError(t, s.Set(TokenKey, "tok-1"))
	assert.Equal(t, "tok-1", s.Token())

	require.NoError(t, s.Set(TokenKey, "tok-2"))
	assert.Equal(t, "tok-2", s.Get(TokenKey))

	require.NoError(t, s.Remove(TokenKey))
	assert.Empty(t, s.Get(TokenKey))

	// removing again is fine
	require.NoError(t, s.Remove(TokenKey))
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, Open(path).Set("k", "v"))
	assert.Equal(t, "v", Open(path).Get("k"))
}

func TestJSONRoundTrip(t *testing.T) {
	type fav struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	s := Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, s.SetJSON("favorites", []fav{{1, "a"}, {2, "b"}}))

	var got []fav
	require.NoError(t, s.GetJSON("favorites", &got))
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].Name)
}

func TestKeysAreIndependent(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("b", "2"))
	require.NoError(t, s.Remove("a"))
	assert.Equal(t, "2", s.Get("b"))
}

func TestCorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	assert.Empty(t, Open(path).Get("k"))
}
