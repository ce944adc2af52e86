package store

import (
	"context"

	"go.uber.org/zap"

	"quickbite-client/internal/domain"
)

type OrdersState struct {
	Items   []domain.Commande
	Current *domain.Commande
	Status  Status
	Error   string
}

func (s *Store) FetchOrders(ctx context.Context) error {
	return runThunk(s, ctx, "commandes/fetchCommandes",
		func(ctx context.Context) ([]domain.Commande, error) { return s.api.ListOrders(ctx) },
		func(st *State) { st.Orders.Status = StatusLoading; st.Orders.Error = "" },
		func(st *State, items []domain.Commande) {
			st.Orders.Status = StatusSucceeded
			st.Orders.Items = items
		},
		func(st *State, msg string) {
			st.Orders.Status = StatusFailed
			st.Orders.Error = msg
		},
	)
}

func (s *Store) FetchOrderByID(ctx context.Context, commandeID int64) error {
	return runThunk(s, ctx, "commandes/fetchCommandeById",
		func(ctx context.Context) (domain.Commande, error) { return s.api.GetOrder(ctx, commandeID) },
		func(st *State) { st.Orders.Status = StatusLoading; st.Orders.Error = "" },
		func(st *State, o domain.Commande) {
			st.Orders.Status = StatusSucceeded
			st.Orders.Current = &o
		},
		func(st *State, msg string) {
			st.Orders.Status = StatusFailed
			st.Orders.Error = msg
		},
	)
}

// UpdateOrderStatus 状态只能由这条显式操作改；列表里找不到目标时
// 集合不动，但记一条 warn（源实现静默吞掉，这里让它可见）。
func (s *Store) UpdateOrderStatus(ctx context.Context, commandeID int64, stat domain.OrderStatus) error {
	return runThunk(s, ctx, "commandes/updateCommandeStatus",
		func(ctx context.Context) (domain.Commande, error) {
			return s.api.UpdateOrderStatus(ctx, commandeID, stat)
		},
		func(st *State) { st.Orders.Status = StatusLoading; st.Orders.Error = "" },
		func(st *State, o domain.Commande) {
			st.Orders.Status = StatusSucceeded
			found := false
			for i := range st.Orders.Items {
				if st.Orders.Items[i].CommandeID == o.CommandeID {
					st.Orders.Items[i] = o
					found = true
					break
				}
			}
			if !found {
				s.log.Warn("updated commande not in collection", zap.Int64("commandeId", o.CommandeID))
			}
			if st.Orders.Current != nil && st.Orders.Current.CommandeID == o.CommandeID {
				st.Orders.Current = &o
			}
		},
		func(st *State, msg string) {
			st.Orders.Status = StatusFailed
			st.Orders.Error = msg
		},
	)
}

func (s *Store) ClearCurrentOrder() {
	s.mutate("commandes/clearCurrent", func(st *State) { st.Orders.Current = nil })
}

func (s *Store) ResetOrdersError() {
	s.mutate("commandes/resetError", func(st *State) { st.Orders.Error = "" })
}

// createOrder 结账末步用，成功订单挂到 Current 并插到列表头。
func (s *Store) createOrder(ctx context.Context) (domain.Commande, error) {
	var created domain.Commande
	err := runThunk(s, ctx, "commandes/createCommande",
		func(ctx context.Context) (domain.Commande, error) { return s.api.CreateOrder(ctx) },
		func(st *State) { st.Orders.Status = StatusLoading; st.Orders.Error = "" },
		func(st *State, o domain.Commande) {
			st.Orders.Status = StatusSucceeded
			st.Orders.Items = append([]domain.Commande{o}, st.Orders.Items...)
			st.Orders.Current = &o
			created = o
		},
		func(st *State, msg string) {
			st.Orders.Status = StatusFailed
			st.Orders.Error = msg
		},
	)
	return created, err
}
