package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite-client/internal/domain"
)

type confirmerFunc func(ctx context.Context, clientSecret string) error

func (f confirmerFunc) Confirm(ctx context.Context, cs string) error { return f(ctx, cs) }

func cartBackend() *backendStub {
	return &backendStub{
		addToCart: func(_ context.Context, pid int64, qty int) (domain.CartLine, error) {
			return line(pid, pid, qty, "4.50"), nil
		},
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	s := New(&backendStub{}, nil, nil)
	_, err := s.Checkout(context.Background(), confirmerFunc(func(context.Context, string) error {
		t.Fatal("must not reach payment")
		return nil
	}))
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutHappyPath(t *testing.T) {
	backend := cartBackend()
	var gotCents int64
	backend.createPaymentIntent = func(_ context.Context, cents int64) (string, error) {
		gotCents = cents
		return "pi_secret", nil
	}
	backend.createOrder = func(context.Context) (domain.Commande, error) {
		return domain.Commande{CommandeID: 12, Stat: domain.OrderPending}, nil
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.AddToCart(context.Background(), 1, 3)) // 3 × 4.50 = 13.50

	var confirmed string
	order, err := s.Checkout(context.Background(), confirmerFunc(func(_ context.Context, cs string) error {
		confirmed = cs
		return nil
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(1350), gotCents, "amount is sent in cents")
	assert.Equal(t, "pi_secret", confirmed)
	assert.Equal(t, int64(12), order.CommandeID)
	assert.Empty(t, s.Snapshot().Cart.Items, "cart cleared after a placed order")
}

func TestCheckoutStopsWhenPaymentDeclined(t *testing.T) {
	backend := cartBackend()
	backend.createPaymentIntent = func(context.Context, int64) (string, error) { return "pi_x", nil }
	orderPlaced := false
	backend.createOrder = func(context.Context) (domain.Commande, error) {
		orderPlaced = true
		return domain.Commande{CommandeID: 1}, nil
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.AddToCart(context.Background(), 1, 1))

	declined := errors.New("card declined")
	_, err := s.Checkout(context.Background(), confirmerFunc(func(context.Context, string) error {
		return declined
	}))
	require.ErrorIs(t, err, declined)
	assert.False(t, orderPlaced, "no order without a confirmed payment")
	assert.NotEmpty(t, s.Snapshot().Cart.Items, "cart untouched on a failed payment")
}

func TestCheckoutSurvivesClearCartFailure(t *testing.T) {
	backend := cartBackend()
	backend.createPaymentIntent = func(context.Context, int64) (string, error) { return "pi_x", nil }
	backend.createOrder = func(context.Context) (domain.Commande, error) {
		return domain.Commande{CommandeID: 7}, nil
	}
	backend.listCart = func(context.Context) ([]domain.CartLine, error) {
		return nil, errors.New("cart service down")
	}
	s := New(backend, nil, nil)
	require.NoError(t, s.AddToCart(context.Background(), 1, 1))

	order, err := s.Checkout(context.Background(), confirmerFunc(func(context.Context, string) error { return nil }))
	require.NoError(t, err, "a failed cart clear does not undo a placed order")
	assert.Equal(t, int64(7), order.CommandeID)
}
