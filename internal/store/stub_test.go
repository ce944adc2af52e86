package store

import (
	"context"

	"quickbite-client/internal/api"
	"quickbite-client/internal/domain"
)

// backendStub lets each test wire just the calls it cares about.
// Unset hooks return zero values and no error.
type backendStub struct {
	listProducts  func(ctx context.Context, q domain.ProductQuery) (domain.ProductPage, error)
	createProduct func(ctx context.Context, in domain.ProductInput) (domain.Product, error)
	updateProduct func(ctx context.Context, id int64, in domain.ProductInput) (domain.Product, error)
	deleteProduct func(ctx context.Context, id int64) error

	listCart        func(ctx context.Context) ([]domain.CartLine, error)
	addToCart       func(ctx context.Context, produitID int64, quantite int) (domain.CartLine, error)
	updateCartQty   func(ctx context.Context, panierID int64, quantite int) (domain.CartLine, error)
	removeFromCart  func(ctx context.Context, panierID int64) error
	listOrders      func(ctx context.Context) ([]domain.Commande, error)
	getOrder        func(ctx context.Context, id int64) (domain.Commande, error)
	createOrder     func(ctx context.Context) (domain.Commande, error)
	updateOrderStat func(ctx context.Context, id int64, stat domain.OrderStatus) (domain.Commande, error)

	listUsers  func(ctx context.Context) ([]domain.User, error)
	createUser func(ctx context.Context, in api.UserInput) (domain.User, error)
	updateUser func(ctx context.Context, id int64, in api.UserInput) (domain.User, error)
	deleteUser func(ctx context.Context, id int64) error

	listComments  func(ctx context.Context, produitID int64) ([]domain.Comment, error)
	createComment func(ctx context.Context, produitID int64, content string, rating int) (domain.Comment, error)

	register    func(ctx context.Context, in api.RegisterInput) (api.AuthPayload, error)
	login       func(ctx context.Context, email, password string) (api.AuthPayload, error)
	logout      func(ctx context.Context) error
	currentUser func(ctx context.Context) (domain.User, error)

	createPaymentIntent func(ctx context.Context, amountCents int64) (string, error)
}

func (b *backendStub) ListProducts(ctx context.Context, q domain.ProductQuery) (domain.ProductPage, error) {
	if b.listProducts == nil {
		return domain.ProductPage{Meta: domain.PageMeta{CurrentPage: 1, PerPage: 10, LastPage: 1}}, nil
	}
	return b.listProducts(ctx, q)
}

func (b *backendStub) CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	if b.createProduct == nil {
		return domain.Product{}, nil
	}
	return b.createProduct(ctx, in)
}

func (b *backendStub) UpdateProduct(ctx context.Context, id int64, in domain.ProductInput) (domain.Product, error) {
	if b.updateProduct == nil {
		return domain.Product{}, nil
	}
	return b.updateProduct(ctx, id, in)
}

func (b *backendStub) DeleteProduct(ctx context.Context, id int64) error {
	if b.deleteProduct == nil {
		return nil
	}
	return b.deleteProduct(ctx, id)
}

func (b *backendStub) ListCart(ctx context.Context) ([]domain.CartLine, error) {
	if b.listCart == nil {
		return nil, nil
	}
	return b.listCart(ctx)
}

func (b *backendStub) AddToCart(ctx context.Context, produitID int64, quantite int) (domain.CartLine, error) {
	if b.addToCart == nil {
		return domain.CartLine{}, nil
	}
	return b.addToCart(ctx, produitID, quantite)
}

func (b *backendStub) UpdateCartQuantity(ctx context.Context, panierID int64, quantite int) (domain.CartLine, error) {
	if b.updateCartQty == nil {
		return domain.CartLine{}, nil
	}
	return b.updateCartQty(ctx, panierID, quantite)
}

func (b *backendStub) RemoveFromCart(ctx context.Context, panierID int64) error {
	if b.removeFromCart == nil {
		return nil
	}
	return b.removeFromCart(ctx, panierID)
}

func (b *backendStub) ListOrders(ctx context.Context) ([]domain.Commande, error) {
	if b.listOrders == nil {
		return nil, nil
	}
	return b.listOrders(ctx)
}

func (b *backendStub) GetOrder(ctx context.Context, id int64) (domain.Commande, error) {
	if b.getOrder == nil {
		return domain.Commande{}, nil
	}
	return b.getOrder(ctx, id)
}

func (b *backendStub) CreateOrder(ctx context.Context) (domain.Commande, error) {
	if b.createOrder == nil {
		return domain.Commande{}, nil
	}
	return b.createOrder(ctx)
}

func (b *backendStub) UpdateOrderStatus(ctx context.Context, id int64, stat domain.OrderStatus) (domain.Commande, error) {
	if b.updateOrderStat == nil {
		return domain.Commande{}, nil
	}
	return b.updateOrderStat(ctx, id, stat)
}

func (b *backendStub) ListUsers(ctx context.Context) ([]domain.User, error) {
	if b.listUsers == nil {
		return nil, nil
	}
	return b.listUsers(ctx)
}

func (b *backendStub) CreateUser(ctx context.Context, in api.UserInput) (domain.User, error) {
	if b.createUser == nil {
		return domain.User{}, nil
	}
	return b.createUser(ctx, in)
}

func (b *backendStub) UpdateUser(ctx context.Context, id int64, in api.UserInput) (domain.User, error) {
	if b.updateUser == nil {
		return domain.User{}, nil
	}
	return b.updateUser(ctx, id, in)
}

func (b *backendStub) DeleteUser(ctx context.Context, id int64) error {
	if b.deleteUser == nil {
		return nil
	}
	return b.deleteUser(ctx, id)
}

func (b *backendStub) ListComments(ctx context.Context, produitID int64) ([]domain.Comment, error) {
	if b.listComments == nil {
		return nil, nil
	}
	return b.listComments(ctx, produitID)
}

func (b *backendStub) CreateComment(ctx context.Context, produitID int64, content string, rating int) (domain.Comment, error) {
	if b.createComment == nil {
		return domain.Comment{}, nil
	}
	return b.createComment(ctx, produitID, content, rating)
}

func (b *backendStub) Register(ctx context.Context, in api.RegisterInput) (api.AuthPayload, error) {
	if b.register == nil {
		return api.AuthPayload{}, nil
	}
	return b.register(ctx, in)
}

func (b *backendStub) Login(ctx context.Context, email, password string) (api.AuthPayload, error) {
	if b.login == nil {
		return api.AuthPayload{}, nil
	}
	return b.login(ctx, email, password)
}

func (b *backendStub) Logout(ctx context.Context) error {
	if b.logout == nil {
		return nil
	}
	return b.logout(ctx)
}

func (b *backendStub) CurrentUser(ctx context.Context) (domain.User, error) {
	if b.currentUser == nil {
		return domain.User{}, nil
	}
	return b.currentUser(ctx)
}

func (b *backendStub) CreatePaymentIntent(ctx context.Context, amountCents int64) (string, error) {
	if b.createPaymentIntent == nil {
		return "", nil
	}
	return b.createPaymentIntent(ctx, amountCents)
}
