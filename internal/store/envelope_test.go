package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite-client/internal/api"
	"quickbite-client/internal/domain"
)

func drain(ch <-chan Event, n int) []Event {
	out := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, <-ch)
	}
	return out
}

func TestThunkEmitsPendingThenFulfilled(t *testing.T) {
	s := New(&backendStub{}, nil, nil)
	events, unsub := s.Subscribe()
	defer unsub()

	require.NoError(t, s.FetchCart(context.Background()))

	got := drain(events, 2)
	assert.Equal(t, Event{Op: "cart/fetchCart", Phase: PhasePending}, got[0])
	assert.Equal(t, Event{Op: "cart/fetchCart", Phase: PhaseFulfilled}, got[1])
}

func TestThunkEmitsPendingThenRejected(t *testing.T) {
	backend := &backendStub{
		listCart: func(context.Context) ([]domain.CartLine, error) {
			return nil, &api.APIError{Status: 500, Message: "Failed to fetch cart"}
		},
	}
	s := New(backend, nil, nil)
	events, unsub := s.Subscribe()
	defer unsub()

	require.Error(t, s.FetchCart(context.Background()))

	got := drain(events, 2)
	assert.Equal(t, PhasePending, got[0].Phase)
	require.Equal(t, PhaseRejected, got[1].Phase)
	assert.Equal(t, "Failed to fetch cart", got[1].Err, "API message is surfaced as-is")
}

func TestRejectionMessagePrefersAPIError(t *testing.T) {
	backend := &backendStub{
		listCart: func(context.Context) ([]domain.CartLine, error) {
			return nil, &api.APIError{Status: 404, Message: "Not found."}
		},
	}
	s := New(backend, nil, nil)
	require.Error(t, s.FetchCart(context.Background()))
	assert.Equal(t, "Not found.", s.Snapshot().Cart.Error)
}

func TestSyncMutationEmitsMutated(t *testing.T) {
	s := New(&backendStub{}, nil, nil)
	events, unsub := s.Subscribe()
	defer unsub()

	s.ResetCartError()

	e := <-events
	assert.Equal(t, Event{Op: "cart/resetError", Phase: PhaseMutated}, e)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	s := New(&backendStub{}, nil, nil)
	_, unsub := s.Subscribe()
	unsub()
	unsub() // second call must not panic
	s.publish(Event{Op: "noop", Phase: PhaseMutated})
}

func TestSnapshotIsACopy(t *testing.T) {
	backend := &backendStub{
		listCart: func(context.Context) ([]domain.CartLine, error) {
			return []domain.CartLine{{ID: 1, ProduitID: 1, Quantite: 1}}, nil
		},
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.FetchCart(context.Background()))

	snap := s.Snapshot()
	snap.Cart.Items[0].Quantite = 99

	assert.Equal(t, 1, s.Snapshot().Cart.Items[0].Quantite,
		"mutating a snapshot must not leak into the store")
}
