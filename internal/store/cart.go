package store

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quickbite-client/internal/domain"
)

type CartState struct {
	Items  []domain.CartLine
	Status Status
	Error  string
}

func (s *Store) FetchCart(ctx context.Context) error {
	return runThunk(s, ctx, "cart/fetchCart",
		func(ctx context.Context) ([]domain.CartLine, error) { return s.api.ListCart(ctx) },
		func(st *State) { st.Cart.Status = StatusLoading },
		func(st *State, items []domain.CartLine) {
			st.Cart.Status = StatusSucceeded
			st.Cart.Items = items
			st.Cart.Error = ""
		},
		func(st *State, msg string) {
			st.Cart.Status = StatusFailed
			st.Cart.Error = msg
		},
	)
}

// AddToCart 同一商品只保留一行：已存在则覆盖数量（不是累加），否则追加。
func (s *Store) AddToCart(ctx context.Context, produitID int64, quantite int) error {
	if quantite < 1 {
		quantite = 1
	}
	return runThunk(s, ctx, "cart/addToCart",
		func(ctx context.Context) (domain.CartLine, error) { return s.api.AddToCart(ctx, produitID, quantite) },
		func(st *State) { st.Cart.Status = StatusLoading },
		func(st *State, line domain.CartLine) {
			st.Cart.Status = StatusSucceeded
			st.Cart.Error = ""
			for i := range st.Cart.Items {
				if st.Cart.Items[i].ProduitID == line.ProduitID {
					st.Cart.Items[i].Quantite = line.Quantite
					return
				}
			}
			st.Cart.Items = append(st.Cart.Items, line)
		},
		func(st *State, msg string) {
			st.Cart.Status = StatusFailed
			st.Cart.Error = msg
		},
	)
}

// UpdateQuantity 数量归零（或更低）等价于删行。
func (s *Store) UpdateQuantity(ctx context.Context, panierID int64, quantite int) error {
	return runThunk(s, ctx, "cart/updateQuantity",
		func(ctx context.Context) (domain.CartLine, error) {
			return s.api.UpdateCartQuantity(ctx, panierID, quantite)
		},
		func(st *State) { st.Cart.Status = StatusLoading },
		func(st *State, line domain.CartLine) {
			st.Cart.Status = StatusSucceeded
			st.Cart.Error = ""
			idx := -1
			for i := range st.Cart.Items {
				if st.Cart.Items[i].ID == line.ID {
					idx = i
					break
				}
			}
			if idx < 0 {
				s.log.Warn("updated cart line not in collection", zap.Int64("id", line.ID))
				return
			}
			if line.Quantite <= 0 {
				st.Cart.Items = append(st.Cart.Items[:idx], st.Cart.Items[idx+1:]...)
				return
			}
			st.Cart.Items[idx].Quantite = line.Quantite
		},
		func(st *State, msg string) {
			st.Cart.Status = StatusFailed
			st.Cart.Error = msg
		},
	)
}

func (s *Store) RemoveFromCart(ctx context.Context, panierID int64) error {
	return runThunk(s, ctx, "cart/removeFromCart",
		func(ctx context.Context) (int64, error) { return panierID, s.api.RemoveFromCart(ctx, panierID) },
		func(st *State) { st.Cart.Status = StatusLoading },
		func(st *State, id int64) {
			st.Cart.Status = StatusSucceeded
			st.Cart.Error = ""
			kept := st.Cart.Items[:0]
			for _, l := range st.Cart.Items {
				if l.ID != id {
					kept = append(kept, l)
				}
			}
			st.Cart.Items = kept
		},
		func(st *State, msg string) {
			st.Cart.Status = StatusFailed
			st.Cart.Error = msg
		},
	)
}

// ClearCart 重新拉一遍购物车，然后并发删掉每一行（Promise.all 的等价物）。
func (s *Store) ClearCart(ctx context.Context) error {
	return runThunk(s, ctx, "cart/clearCart",
		func(ctx context.Context) (struct{}, error) {
			lines, err := s.api.ListCart(ctx)
			if err != nil {
				return struct{}{}, err
			}
			g, gctx := errgroup.WithContext(ctx)
			for _, l := range lines {
				g.Go(func() error { return s.api.RemoveFromCart(gctx, l.ID) })
			}
			return struct{}{}, g.Wait()
		},
		func(st *State) { st.Cart.Status = StatusLoading },
		func(st *State, _ struct{}) {
			st.Cart.Status = StatusSucceeded
			st.Cart.Items = nil
			st.Cart.Error = ""
		},
		func(st *State, msg string) {
			st.Cart.Status = StatusFailed
			st.Cart.Error = msg
		},
	)
}

// ResetCartError 重试按钮用：只清错误，不动数据和状态。
func (s *Store) ResetCartError() {
	s.mutate("cart/resetError", func(st *State) { st.Cart.Error = "" })
}
