// Package store holds the application state of the storefront client:
// one slice per entity, async thunks around the API adapter, and pure
// selectors over snapshots. Consumers dispatch and observe; nothing here
// renders.
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"quickbite-client/internal/api"
	"quickbite-client/internal/core/localstore"
	"quickbite-client/internal/domain"
)

// Backend 客户端用到的全部远端操作。*api.Client 即实现。
type Backend interface {
	ListProducts(ctx context.Context, q domain.ProductQuery) (domain.ProductPage, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error)
	UpdateProduct(ctx context.Context, produitID int64, in domain.ProductInput) (domain.Product, error)
	DeleteProduct(ctx context.Context, produitID int64) error

	ListCart(ctx context.Context) ([]domain.CartLine, error)
	AddToCart(ctx context.Context, produitID int64, quantite int) (domain.CartLine, error)
	UpdateCartQuantity(ctx context.Context, panierID int64, quantite int) (domain.CartLine, error)
	RemoveFromCart(ctx context.Context, panierID int64) error

	ListOrders(ctx context.Context) ([]domain.Commande, error)
	GetOrder(ctx context.Context, commandeID int64) (domain.Commande, error)
	CreateOrder(ctx context.Context) (domain.Commande, error)
	UpdateOrderStatus(ctx context.Context, commandeID int64, stat domain.OrderStatus) (domain.Commande, error)

	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, in api.UserInput) (domain.User, error)
	UpdateUser(ctx context.Context, userID int64, in api.UserInput) (domain.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	ListComments(ctx context.Context, produitID int64) ([]domain.Comment, error)
	CreateComment(ctx context.Context, produitID int64, content string, rating int) (domain.Comment, error)

	Register(ctx context.Context, in api.RegisterInput) (api.AuthPayload, error)
	Login(ctx context.Context, email, password string) (api.AuthPayload, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (domain.User, error)

	CreatePaymentIntent(ctx context.Context, amountCents int64) (string, error)
}

// State 聚合状态。快照按值传给 selector，保持纯函数。
type State struct {
	Products  ProductsState
	Cart      CartState
	Orders    OrdersState
	Users     UsersState
	Comments  CommentsState
	Auth      AuthState
	Favorites FavoritesState
}

type Store struct {
	mu    sync.Mutex
	api   Backend
	local *localstore.Store
	log   *zap.Logger

	state   State
	subs    map[int]chan Event
	nextSub int
}

func New(backend Backend, local *localstore.Store, l *zap.Logger) *Store {
	if l == nil {
		l = zap.NewNop()
	}
	s := &Store{
		api:   backend,
		local: local,
		log:   l,
		subs:  map[int]chan Event{},
	}
	s.state.Products.Meta = domain.PageMeta{CurrentPage: 1, PerPage: 10, LastPage: 1}
	s.loadFavorites()
	return s
}

// Snapshot 返回一份拷贝，调用方随便读，不会碰到共享切片。
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// mutate 同步 reducer 入口（clear error 一类不走网络的变更）。
func (s *Store) mutate(op string, fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	s.mu.Unlock()
	s.publish(Event{Op: op, Phase: PhaseMutated})
}

func cloneState(st State) State {
	out := st
	out.Products.Items = append([]domain.Product(nil), st.Products.Items...)
	out.Cart.Items = append([]domain.CartLine(nil), st.Cart.Items...)
	out.Orders.Items = append([]domain.Commande(nil), st.Orders.Items...)
	out.Users.Items = append([]domain.User(nil), st.Users.Items...)
	out.Comments.Items = append([]domain.Comment(nil), st.Comments.Items...)
	out.Favorites.Items = append([]domain.FavoriteEntry(nil), st.Favorites.Items...)
	if st.Orders.Current != nil {
		cur := *st.Orders.Current
		cur.Lignes = append([]domain.OrderLine(nil), st.Orders.Current.Lignes...)
		out.Orders.Current = &cur
	}
	if st.Auth.User != nil {
		u := *st.Auth.User
		out.Auth.User = &u
	}
	return out
}
