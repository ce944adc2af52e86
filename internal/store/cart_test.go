package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite-client/internal/domain"
)

func line(id, pid int64, qty int, price string) domain.CartLine {
	p := decimal.RequireFromString(price)
	return domain.CartLine{
		ID: id, ProduitID: pid, Quantite: qty,
		Produit: &domain.Product{ID: pid, Name: "p", Price: p},
	}
}

func TestAddToCartMergesSameProduct(t *testing.T) {
	backend := &backendStub{
		addToCart: func(_ context.Context, pid int64, qty int) (domain.CartLine, error) {
			return line(7, pid, qty, "4.50"), nil
		},
	}
	s := New(backend, nil, nil)

	require.NoError(t, s.AddToCart(context.Background(), 42, 2))
	require.NoError(t, s.AddToCart(context.Background(), 42, 5))

	st := s.Snapshot()
	require.Len(t, st.Cart.Items, 1, "same product must stay a single line")
	assert.Equal(t, 5, st.Cart.Items[0].Quantite, "quantity is overwritten, not summed")
	assert.Equal(t, StatusSucceeded, st.Cart.Status)
}

func TestAddToCartClampsQuantity(t *testing.T) {
	var sent int
	backend := &backendStub{
		addToCart: func(_ context.Context, pid int64, qty int) (domain.CartLine, error) {
			sent = qty
			return line(1, pid, qty, "1.00"), nil
		},
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.AddToCart(context.Background(), 1, 0))
	assert.Equal(t, 1, sent)
}

func TestUpdateQuantityRemovesLineAtZero(t *testing.T) {
	backend := &backendStub{
		addToCart: func(_ context.Context, pid int64, qty int) (domain.CartLine, error) {
			return line(pid, pid, qty, "2.00"), nil
		},
		updateCartQty: func(_ context.Context, id int64, qty int) (domain.CartLine, error) {
			return domain.CartLine{ID: id, ProduitID: id, Quantite: qty}, nil
		},
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.AddToCart(context.Background(), 1, 2))
	require.NoError(t, s.AddToCart(context.Background(), 2, 3))

	require.NoError(t, s.UpdateQuantity(context.Background(), 1, 0))

	st := s.Snapshot()
	require.Len(t, st.Cart.Items, 1)
	assert.Equal(t, int64(2), st.Cart.Items[0].ID)
}

func TestUpdateQuantityUnknownLineLeavesCollection(t *testing.T) {
	backend := &backendStub{
		addToCart: func(_ context.Context, pid int64, qty int) (domain.CartLine, error) {
			return line(pid, pid, qty, "2.00"), nil
		},
		updateCartQty: func(_ context.Context, id int64, qty int) (domain.CartLine, error) {
			return domain.CartLine{ID: 999, ProduitID: 999, Quantite: qty}, nil
		},
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.AddToCart(context.Background(), 1, 2))
	before := s.Snapshot().Cart.Items

	require.NoError(t, s.UpdateQuantity(context.Background(), 999, 4))

	assert.Equal(t, before, s.Snapshot().Cart.Items)
	assert.Equal(t, StatusSucceeded, s.Snapshot().Cart.Status)
}

func TestFailedOperationKeepsCollection(t *testing.T) {
	boom := errors.New("boom")
	backend := &backendStub{
		addToCart: func(_ context.Context, pid int64, qty int) (domain.CartLine, error) {
			return line(pid, pid, qty, "2.00"), nil
		},
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.AddToCart(context.Background(), 1, 2))

	backend.addToCart = func(context.Context, int64, int) (domain.CartLine, error) {
		return domain.CartLine{}, boom
	}
	err := s.AddToCart(context.Background(), 2, 1)
	require.ErrorIs(t, err, boom)

	st := s.Snapshot()
	assert.Equal(t, StatusFailed, st.Cart.Status)
	assert.Equal(t, "boom", st.Cart.Error)
	require.Len(t, st.Cart.Items, 1, "rejected op must not touch the collection")
}

func TestResetCartError(t *testing.T) {
	backend := &backendStub{
		listCart: func(context.Context) ([]domain.CartLine, error) { return nil, errors.New("down") },
	}
	s := New(backend, nil, nil)
	require.Error(t, s.FetchCart(context.Background()))
	require.Equal(t, "down", s.Snapshot().Cart.Error)

	s.ResetCartError()
	st := s.Snapshot()
	assert.Empty(t, st.Cart.Error)
	assert.Equal(t, StatusFailed, st.Cart.Status, "reset clears the message only")

	s.ResetCartError() // idempotent
	assert.Empty(t, s.Snapshot().Cart.Error)
}

func TestClearCartDeletesEveryLine(t *testing.T) {
	var mu sync.Mutex
	removed := map[int64]bool{}
	backend := &backendStub{
		listCart: func(context.Context) ([]domain.CartLine, error) {
			return []domain.CartLine{line(1, 1, 1, "1.00"), line(2, 2, 2, "2.00"), line(3, 3, 1, "3.00")}, nil
		},
		removeFromCart: func(_ context.Context, id int64) error {
			mu.Lock()
			removed[id] = true
			mu.Unlock()
			return nil
		},
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.ClearCart(context.Background()))

	assert.Len(t, removed, 3)
	assert.Empty(t, s.Snapshot().Cart.Items)
}

// Concurrent updates on the same line are not serialized: the reducer
// applies responses in arrival order and the last one wins.
func TestUpdateQuantityArrivalOrderWins(t *testing.T) {
	release := make(chan struct{})
	backend := &backendStub{
		addToCart: func(_ context.Context, pid int64, qty int) (domain.CartLine, error) {
			return line(1, pid, qty, "2.00"), nil
		},
		updateCartQty: func(_ context.Context, id int64, qty int) (domain.CartLine, error) {
			if qty == 5 {
				<-release // first request's response is delayed
			}
			return domain.CartLine{ID: id, ProduitID: 1, Quantite: qty}, nil
		},
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.AddToCart(context.Background(), 1, 1))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.UpdateQuantity(context.Background(), 1, 5)
	}()
	require.NoError(t, s.UpdateQuantity(context.Background(), 1, 9))
	close(release)
	wg.Wait()

	assert.Equal(t, 5, s.Snapshot().Cart.Items[0].Quantite,
		"later arrival overwrites, even if it was dispatched first")
}
