package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite-client/internal/domain"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, h http.HandlerFunc, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, 5*time.Second, tokens, nil)
	require.NoError(t, err)
	return c
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	_, err := New("not a url", time.Second, nil, nil)
	assert.Error(t, err)
	_, err = New("", time.Second, nil, nil)
	assert.Error(t, err)
}

func TestBearerInjection(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}, staticToken("tok-abc"))

	_, err := c.ListCart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", got)
}

func TestEmptyTokenSendsAnonymously(t *testing.T) {
	var got string
	var hasHeader bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	}, staticToken(""))

	_, err := c.ListCart(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, hasHeader)
}

func TestErrorNormalization(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"message field", 422, `{"message":"The email has already been taken."}`, "The email has already been taken."},
		{"error field", 400, `{"error":"bad payload"}`, "bad payload"},
		{"unparseable body falls back", 500, `<html>panic</html>`, "Login failed"},
		{"empty body falls back", 503, ``, "Login failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}, nil)

			_, err := c.Login(context.Background(), "a@b.c", "pw")
			var ae *APIError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tt.status, ae.Status)
			assert.Equal(t, tt.wantMsg, ae.Message)
		})
	}
}

func TestMalformedResponseIsRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// 200 with a payload missing required fields
		w.Write([]byte(`{"token":""}`))
	}, nil)

	_, err := c.Login(context.Background(), "a@b.c", "password1")
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestMalformedPaginationMeta(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[],"meta":{"current_page":1,"per_page":0,"total":0,"last_page":0}}`))
	}, nil)

	_, err := c.ListProducts(context.Background(), domain.ProductQuery{})
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestIsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte(`{"message":"Not found."}`))
	}, nil)

	_, err := c.GetOrder(context.Background(), 99)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(errors.New("other")))
}

func TestNetworkFailureUsesFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on
	c, err := New(srv.URL, time.Second, nil, nil)
	require.NoError(t, err)

	_, err = c.ListCart(context.Background())
	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Failed to fetch cart", ae.Message)
	assert.Zero(t, ae.Status)
}
