package mockapi

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"quickbite-client/internal/domain"
)

// MemoryRepos 进程内存储，测试和免配置的本地开发用。
type MemoryRepos struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]domain.Product
	cart     map[int64]cartRow
	orders   map[int64]orderRow
	users    map[int64]UserRecord
	comments map[int64]domain.Comment
}

type cartRow struct {
	line   domain.CartLine
	userID int64
}

type orderRow struct {
	order  domain.Commande
	userID int64
}

func NewMemoryRepos() *MemoryRepos {
	return &MemoryRepos{
		nextID:   1000,
		products: map[int64]domain.Product{},
		cart:     map[int64]cartRow{},
		orders:   map[int64]orderRow{},
		users:    map[int64]UserRecord{},
		comments: map[int64]domain.Comment{},
	}
}

func (m *MemoryRepos) id() int64 { m.nextID++; return m.nextID }

/* ---------- products ---------- */

func (m *MemoryRepos) ListProducts(_ context.Context, q domain.ProductQuery) ([]domain.Product, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		all = append(all, p)
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := all[:0]
	for _, p := range all {
		if q.CategoryID > 0 && p.CategoryID != q.CategoryID {
			continue
		}
		if !q.MinPrice.IsZero() && p.Price.LessThan(q.MinPrice) {
			continue
		}
		if !q.MaxPrice.IsZero() && p.Price.GreaterThan(q.MaxPrice) {
			continue
		}
		if q.Type != "" && p.Type != q.Type {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortBy, dir := q.SortBy, q.SortDir
	if sortBy == "" {
		sortBy = "created_at"
	}
	desc := dir != "asc"
	sort.SliceStable(filtered, func(i, j int) bool {
		var c int
		switch sortBy {
		case "price":
			c = filtered[i].Price.Cmp(filtered[j].Price)
		case "name":
			c = strings.Compare(filtered[i].Name, filtered[j].Name)
		default:
			switch {
			case filtered[i].ID < filtered[j].ID:
				c = -1
			case filtered[i].ID > filtered[j].ID:
				c = 1
			}
		}
		if desc {
			return c > 0
		}
		return c < 0
	})

	total := len(filtered)
	page, per := q.Page, q.PerPage
	if page < 1 {
		page = 1
	}
	if per < 1 {
		per = 10
	}
	lo := (page - 1) * per
	if lo > total {
		lo = total
	}
	hi := min(lo+per, total)
	return append([]domain.Product(nil), filtered[lo:hi]...), total, nil
}

func (m *MemoryRepos) GetProduct(_ context.Context, id int64) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func (m *MemoryRepos) CreateProduct(_ context.Context, p domain.Product) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.id()
	p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	m.products[p.ID] = p
	return p, nil
}

func (m *MemoryRepos) UpdateProduct(_ context.Context, p domain.Product) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.products[p.ID]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	p.CreatedAt = old.CreatedAt
	m.products[p.ID] = p
	return p, nil
}

func (m *MemoryRepos) DeleteProduct(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

/* ---------- cart ---------- */

func (m *MemoryRepos) ListCart(_ context.Context, userID int64) ([]domain.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.CartLine
	for _, row := range m.cart {
		if row.userID != userID {
			continue
		}
		l := row.line
		if p, ok := m.products[l.ProduitID]; ok {
			cp := p
			l.Produit = &cp
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryRepos) UpsertCartLine(_ context.Context, userID, produitID int64, quantite int) (domain.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[produitID]; !ok {
		return domain.CartLine{}, ErrNotFound
	}
	for id, row := range m.cart {
		if row.userID == userID && row.line.ProduitID == produitID {
			row.line.Quantite = quantite // 覆盖，不累加
			m.cart[id] = row
			return m.withProduct(row.line), nil
		}
	}
	line := domain.CartLine{ID: m.id(), ProduitID: produitID, Quantite: quantite}
	m.cart[line.ID] = cartRow{line: line, userID: userID}
	return m.withProduct(line), nil
}

func (m *MemoryRepos) withProduct(l domain.CartLine) domain.CartLine {
	if p, ok := m.products[l.ProduitID]; ok {
		cp := p
		l.Produit = &cp
	}
	return l
}

func (m *MemoryRepos) GetCartLine(_ context.Context, id int64) (domain.CartLine, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.cart[id]
	if !ok {
		return domain.CartLine{}, 0, ErrNotFound
	}
	return row.line, row.userID, nil
}

func (m *MemoryRepos) SetCartQuantity(_ context.Context, id int64, quantite int) (domain.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.cart[id]
	if !ok {
		return domain.CartLine{}, ErrNotFound
	}
	row.line.Quantite = quantite
	if quantite <= 0 {
		delete(m.cart, id)
		return row.line, nil
	}
	m.cart[id] = row
	return m.withProduct(row.line), nil
}

func (m *MemoryRepos) DeleteCartLine(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cart[id]; !ok {
		return ErrNotFound
	}
	delete(m.cart, id)
	return nil
}

/* ---------- orders ---------- */

func (m *MemoryRepos) ListOrders(_ context.Context, userID int64, all bool) ([]domain.Commande, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Commande
	for _, row := range m.orders {
		if all || row.userID == userID {
			out = append(out, row.order)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CommandeID > out[j].CommandeID })
	return out, nil
}

func (m *MemoryRepos) GetOrder(_ context.Context, id int64) (domain.Commande, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.orders[id]
	if !ok {
		return domain.Commande{}, 0, ErrNotFound
	}
	return row.order, row.userID, nil
}

func (m *MemoryRepos) CreateOrder(_ context.Context, userID int64, o domain.Commande) (domain.Commande, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.CommandeID = m.id()
	o.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	m.orders[o.CommandeID] = orderRow{order: o, userID: userID}
	return o, nil
}

func (m *MemoryRepos) UpdateOrderStatus(_ context.Context, id int64, stat domain.OrderStatus) (domain.Commande, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.orders[id]
	if !ok {
		return domain.Commande{}, ErrNotFound
	}
	row.order.Stat = stat
	m.orders[id] = row
	return row.order, nil
}

/* ---------- users ---------- */

func (m *MemoryRepos) ListUsers(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.User
	for _, u := range m.users {
		out = append(out, u.User)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (m *MemoryRepos) GetUser(_ context.Context, id int64) (UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return UserRecord{}, ErrNotFound
	}
	return u, nil
}

func (m *MemoryRepos) GetUserByEmail(_ context.Context, email string) (UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return UserRecord{}, ErrNotFound
}

func (m *MemoryRepos) CreateUser(_ context.Context, u UserRecord) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.users {
		if strings.EqualFold(ex.Email, u.Email) {
			return domain.User{}, ErrDuplicateEmail
		}
	}
	u.UserID = m.id()
	m.users[u.UserID] = u
	return u.User, nil
}

func (m *MemoryRepos) UpdateUser(_ context.Context, u UserRecord) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.users[u.UserID]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	if u.PasswordHash == "" {
		u.PasswordHash = old.PasswordHash
	}
	m.users[u.UserID] = u
	return u.User, nil
}

func (m *MemoryRepos) DeleteUser(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	return nil
}

/* ---------- comments ---------- */

func (m *MemoryRepos) ListComments(_ context.Context, produitID int64) ([]domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Comment
	for _, cm := range m.comments {
		if cm.ProduitID == produitID {
			out = append(out, cm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryRepos) CreateComment(_ context.Context, cm domain.Comment) (domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cm.ID = m.id()
	m.comments[cm.ID] = cm
	return cm, nil
}
