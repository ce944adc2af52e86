package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"quickbite-client/internal/domain"
)

// GormRepos 持久化实现（mysql/postgres）。
type GormRepos struct{ db *gorm.DB }

func NewGormRepos(db *gorm.DB) (*GormRepos, error) {
	err := db.AutoMigrate(&ProductModel{}, &CartLineModel{}, &CommandeModel{}, &UserModel{}, &CommentModel{})
	if err != nil {
		return nil, err
	}
	return &GormRepos{db: db}, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

/* ---------- products ---------- */

func (r *GormRepos) ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, int, error) {
	tx := r.db.WithContext(ctx).Model(&ProductModel{})
	if q.CategoryID > 0 {
		tx = tx.Where("category_id = ?", q.CategoryID)
	}
	if !q.MinPrice.IsZero() {
		tx = tx.Where("price >= ?", q.MinPrice)
	}
	if !q.MaxPrice.IsZero() {
		tx = tx.Where("price <= ?", q.MaxPrice)
	}
	if q.Type != "" {
		tx = tx.Where("type = ?", q.Type)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := q.SortBy
	switch sortBy {
	case "price", "name":
	default:
		sortBy = "created_at"
	}
	dir := "DESC"
	if q.SortDir == "asc" {
		dir = "ASC"
	}
	page, per := q.Page, q.PerPage
	if page < 1 {
		page = 1
	}
	if per < 1 {
		per = 10
	}

	var rows []ProductModel
	if err := tx.Order(sortBy + " " + dir).Offset((page - 1) * per).Limit(per).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, int(total), nil
}

func (r *GormRepos) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	var m ProductModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return domain.Product{}, notFound(err)
	}
	return m.toDomain(), nil
}

func (r *GormRepos) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	m := productModel(p)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Product{}, err
	}
	return m.toDomain(), nil
}

func (r *GormRepos) UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	var m ProductModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", p.ID).Error; err != nil {
		return domain.Product{}, notFound(err)
	}
	upd := productModel(p)
	upd.CreatedAt = m.CreatedAt
	if err := r.db.WithContext(ctx).Save(&upd).Error; err != nil {
		return domain.Product{}, err
	}
	return upd.toDomain(), nil
}

func (r *GormRepos) DeleteProduct(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ProductModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

/* ---------- cart ---------- */

func (r *GormRepos) ListCart(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	var rows []CartLineModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.CartLine, 0, len(rows))
	for _, m := range rows {
		l := m.toDomain()
		if p, err := r.GetProduct(ctx, l.ProduitID); err == nil {
			cp := p
			l.Produit = &cp
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *GormRepos) UpsertCartLine(ctx context.Context, userID, produitID int64, quantite int) (domain.CartLine, error) {
	if _, err := r.GetProduct(ctx, produitID); err != nil {
		return domain.CartLine{}, err
	}
	var m CartLineModel
	err := r.db.WithContext(ctx).Where("user_id = ? AND produit_id = ?", userID, produitID).First(&m).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = CartLineModel{UserID: userID, ProduitID: produitID, Quantite: quantite}
		if e := r.db.WithContext(ctx).Create(&m).Error; e != nil {
			return domain.CartLine{}, e
		}
	case err != nil:
		return domain.CartLine{}, err
	default:
		m.Quantite = quantite
		if e := r.db.WithContext(ctx).Save(&m).Error; e != nil {
			return domain.CartLine{}, e
		}
	}
	return r.attachProduct(ctx, m.toDomain()), nil
}

func (r *GormRepos) attachProduct(ctx context.Context, l domain.CartLine) domain.CartLine {
	if p, err := r.GetProduct(ctx, l.ProduitID); err == nil {
		cp := p
		l.Produit = &cp
	}
	return l
}

func (r *GormRepos) GetCartLine(ctx context.Context, id int64) (domain.CartLine, int64, error) {
	var m CartLineModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return domain.CartLine{}, 0, notFound(err)
	}
	return m.toDomain(), m.UserID, nil
}

func (r *GormRepos) SetCartQuantity(ctx context.Context, id int64, quantite int) (domain.CartLine, error) {
	var m CartLineModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return domain.CartLine{}, notFound(err)
	}
	m.Quantite = quantite
	if quantite <= 0 {
		if err := r.db.WithContext(ctx).Delete(&CartLineModel{}, "id = ?", id).Error; err != nil {
			return domain.CartLine{}, err
		}
		return m.toDomain(), nil
	}
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return domain.CartLine{}, err
	}
	return r.attachProduct(ctx, m.toDomain()), nil
}

func (r *GormRepos) DeleteCartLine(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&CartLineModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

/* ---------- orders ---------- */

func (r *GormRepos) ListOrders(ctx context.Context, userID int64, all bool) ([]domain.Commande, error) {
	tx := r.db.WithContext(ctx).Model(&CommandeModel{}).Order("id DESC")
	if !all {
		tx = tx.Where("user_id = ?", userID)
	}
	var rows []CommandeModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Commande, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *GormRepos) GetOrder(ctx context.Context, id int64) (domain.Commande, int64, error) {
	var m CommandeModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return domain.Commande{}, 0, notFound(err)
	}
	return m.toDomain(), m.UserID, nil
}

func (r *GormRepos) CreateOrder(ctx context.Context, userID int64, o domain.Commande) (domain.Commande, error) {
	lignes, err := json.Marshal(o.Lignes)
	if err != nil {
		return domain.Commande{}, err
	}
	m := CommandeModel{UserID: userID, Lignes: string(lignes), Total: o.Total, Stat: string(o.Stat)}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Commande{}, err
	}
	return m.toDomain(), nil
}

func (r *GormRepos) UpdateOrderStatus(ctx context.Context, id int64, stat domain.OrderStatus) (domain.Commande, error) {
	var m CommandeModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return domain.Commande{}, notFound(err)
	}
	m.Stat = string(stat)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return domain.Commande{}, err
	}
	return m.toDomain(), nil
}

/* ---------- users ---------- */

func (r *GormRepos) ListUsers(ctx context.Context) ([]domain.User, error) {
	var rows []UserModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toRecord().User)
	}
	return out, nil
}

func (r *GormRepos) GetUser(ctx context.Context, id int64) (UserRecord, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return UserRecord{}, notFound(err)
	}
	return m.toRecord(), nil
}

func (r *GormRepos) GetUserByEmail(ctx context.Context, email string) (UserRecord, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).First(&m, "email = ?", email).Error; err != nil {
		return UserRecord{}, notFound(err)
	}
	return m.toRecord(), nil
}

func (r *GormRepos) CreateUser(ctx context.Context, u UserRecord) (domain.User, error) {
	m := UserModel{
		Username:     u.Username,
		Email:        u.Email,
		Adresse:      u.Adresse,
		Role:         u.Role,
		PasswordHash: u.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDupKey(err) {
			return domain.User{}, ErrDuplicateEmail
		}
		return domain.User{}, err
	}
	return m.toRecord().User, nil
}

func (r *GormRepos) UpdateUser(ctx context.Context, u UserRecord) (domain.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", u.UserID).Error; err != nil {
		return domain.User{}, notFound(err)
	}
	m.Username = u.Username
	m.Email = u.Email
	m.Adresse = u.Adresse
	if u.Role != "" {
		m.Role = u.Role
	}
	if u.PasswordHash != "" {
		m.PasswordHash = u.PasswordHash
	}
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return domain.User{}, err
	}
	return m.toRecord().User, nil
}

func (r *GormRepos) DeleteUser(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&UserModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

/* ---------- comments ---------- */

func (r *GormRepos) ListComments(ctx context.Context, produitID int64) ([]domain.Comment, error) {
	var rows []CommentModel
	if err := r.db.WithContext(ctx).Where("produit_id = ?", produitID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *GormRepos) CreateComment(ctx context.Context, cm domain.Comment) (domain.Comment, error) {
	m := CommentModel{
		ProduitID: cm.ProduitID,
		UserID:    cm.UserID,
		Author:    cm.Author,
		Rating:    cm.Rating,
		Content:   cm.Content,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Comment{}, err
	}
	return m.toDomain(), nil
}

// isDupKey 不依赖具体驱动的重复键判定。
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
