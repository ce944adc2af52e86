package mockapi

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"quickbite-client/internal/domain"
)

type ProductModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	CategoryID  int64           `gorm:"index"`
	Image       string          `gorm:"size:255"`
	Type        string          `gorm:"size:64;index"`
	Size        string          `gorm:"size:32"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

func (ProductModel) TableName() string { return "products" }

type CartLineModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"index;not null"`
	ProduitID int64 `gorm:"index;not null"`
	Quantite  int   `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CartLineModel) TableName() string { return "paniers" }

type CommandeModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	UserID    int64           `gorm:"index;not null"`
	Lignes    string          `gorm:"type:text"` // []domain.OrderLine 的 JSON
	Total     decimal.Decimal `gorm:"type:decimal(12,2)"`
	Stat      string          `gorm:"size:16;not null;default:pending"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (CommandeModel) TableName() string { return "commandes" }

type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:191;not null"`
	Adresse      string `gorm:"size:255"`
	Role         string `gorm:"size:16;not null;default:user"`
	PasswordHash string `gorm:"size:100;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string { return "users" }

type CommentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProduitID int64  `gorm:"index;not null"`
	UserID    int64  `gorm:"index;not null"`
	Author    string `gorm:"size:64"`
	Rating    int    `gorm:"not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (CommentModel) TableName() string { return "commentaires" }

/* ---------- model <-> domain ---------- */

func (m ProductModel) toDomain() domain.Product {
	return domain.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		CategoryID:  m.CategoryID,
		Image:       m.Image,
		Type:        m.Type,
		Size:        m.Size,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func productModel(p domain.Product) ProductModel {
	return ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		Image:       p.Image,
		Type:        p.Type,
		Size:        p.Size,
	}
}

func (m CartLineModel) toDomain() domain.CartLine {
	return domain.CartLine{ID: m.ID, ProduitID: m.ProduitID, Quantite: m.Quantite}
}

func (m CommandeModel) toDomain() domain.Commande {
	var lignes []domain.OrderLine
	_ = json.Unmarshal([]byte(m.Lignes), &lignes)
	return domain.Commande{
		CommandeID: m.ID,
		Lignes:     lignes,
		Total:      m.Total,
		Stat:       domain.OrderStatus(m.Stat),
		CreatedAt:  m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (m UserModel) toRecord() UserRecord {
	return UserRecord{
		User: domain.User{
			UserID:   m.ID,
			Username: m.Username,
			Email:    m.Email,
			Adresse:  m.Adresse,
			Role:     m.Role,
		},
		PasswordHash: m.PasswordHash,
	}
}

func (m CommentModel) toDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		ProduitID: m.ProduitID,
		UserID:    m.UserID,
		Author:    m.Author,
		Rating:    m.Rating,
		Content:   m.Content,
	}
}
