// Package mockapi is a self-hostable stand-in for the QuickBite backend.
// It serves the exact REST contract the client adapter consumes, so the
// SDK can be developed and tested without the production API.
package mockapi

import (
	"context"
	"errors"

	"quickbite-client/internal/domain"
)

var ErrNotFound = errors.New("mockapi: not found")
var ErrDuplicateEmail = errors.New("mockapi: email taken")

// UserRecord 服务端内部形态：比对外的 User 多一个密码散列。
type UserRecord struct {
	domain.User
	PasswordHash string
}

type ProductRepo interface {
	ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, int, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type CartRepo interface {
	ListCart(ctx context.Context, userID int64) ([]domain.CartLine, error)
	// UpsertCartLine 同商品合并成一行，数量覆盖而不是累加。
	UpsertCartLine(ctx context.Context, userID, produitID int64, quantite int) (domain.CartLine, error)
	GetCartLine(ctx context.Context, id int64) (domain.CartLine, int64, error)
	SetCartQuantity(ctx context.Context, id int64, quantite int) (domain.CartLine, error)
	DeleteCartLine(ctx context.Context, id int64) error
}

type OrderRepo interface {
	ListOrders(ctx context.Context, userID int64, all bool) ([]domain.Commande, error)
	GetOrder(ctx context.Context, id int64) (domain.Commande, int64, error)
	CreateOrder(ctx context.Context, userID int64, o domain.Commande) (domain.Commande, error)
	UpdateOrderStatus(ctx context.Context, id int64, stat domain.OrderStatus) (domain.Commande, error)
}

type UserRepo interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (UserRecord, error)
	CreateUser(ctx context.Context, u UserRecord) (domain.User, error)
	UpdateUser(ctx context.Context, u UserRecord) (domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type CommentRepo interface {
	ListComments(ctx context.Context, produitID int64) ([]domain.Comment, error)
	CreateComment(ctx context.Context, cm domain.Comment) (domain.Comment, error)
}

// Repos 五个仓储的集合，gorm 和内存实现都整套提供。
type Repos interface {
	ProductRepo
	CartRepo
	OrderRepo
	UserRepo
	CommentRepo
}
