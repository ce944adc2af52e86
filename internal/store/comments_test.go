package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite-client/internal/domain"
	"quickbite-client/internal/validate"
)

func TestSubmitCommentAppends(t *testing.T) {
	backend := &backendStub{
		createComment: func(_ context.Context, pid int64, content string, rating int) (domain.Comment, error) {
			return domain.Comment{ID: 5, ProduitID: pid, Content: content, Rating: rating}, nil
		},
	}
	s := New(backend, nil, nil)

	require.NoError(t, s.SubmitComment(context.Background(), 1, "très bon", 5))

	st := s.Snapshot()
	require.Len(t, st.Comments.Items, 1)
	assert.Equal(t, "très bon", st.Comments.Items[0].Content)
	assert.Equal(t, StatusSucceeded, st.Comments.Status)
}

func TestSubmitCommentInvalidRatingStaysLocal(t *testing.T) {
	called := false
	backend := &backendStub{
		createComment: func(context.Context, int64, string, int) (domain.Comment, error) {
			called = true
			return domain.Comment{}, nil
		},
	}
	s := New(backend, nil, nil)
	events, unsub := s.Subscribe()
	defer unsub()

	tests := []struct {
		name    string
		pid     int64
		content string
		rating  int
	}{
		{"rating zero", 1, "ok", 0},
		{"rating too high", 1, "ok", 6},
		{"empty content", 1, "   ", 3},
		{"no product", 0, "ok", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.SubmitComment(context.Background(), tt.pid, tt.content, tt.rating)
			require.ErrorIs(t, err, validate.ErrValidation)
		})
	}

	assert.False(t, called, "validation failures never hit the network")
	assert.Empty(t, s.Snapshot().Comments.Items)
	assert.Equal(t, StatusIdle, s.Snapshot().Comments.Status)
	select {
	case e := <-events:
		t.Fatalf("no lifecycle event expected, got %+v", e)
	default:
	}
}

func TestFetchCommentsReplaces(t *testing.T) {
	backend := &backendStub{
		listComments: func(_ context.Context, pid int64) ([]domain.Comment, error) {
			return []domain.Comment{{ID: 1, ProduitID: pid, Rating: 4, Content: "bien"}}, nil
		},
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.FetchComments(context.Background(), 3))
	require.Len(t, s.Snapshot().Comments.Items, 1)
}
