package domain

import "github.com/shopspring/decimal"

// Product 目录商品。字段名跟后端 JSON 保持一致。
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  int64           `json:"category_id"`
	Image       string          `json:"image"`
	Type        string          `json:"type,omitempty"`
	Size        string          `json:"size,omitempty"`
	CreatedAt   string          `json:"created_at,omitempty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductQuery 目录查询参数，全部可选。
type ProductQuery struct {
	Page       int
	PerPage    int
	SortBy     string
	SortDir    string
	CategoryID int64
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
	Type       string
	Search     string
}

// ProductInput 创建/更新商品的表单字段（multipart）。
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  int64
	Type        string
	Size        string
	ImagePath   string // 本地图片文件，空则不上传
}
