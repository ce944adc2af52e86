package domain

import "github.com/shopspring/decimal"

// FavoriteEntry 收藏快照：名称/价格/图片在收藏当时定格，
// 商品后续改动不回填。
type FavoriteEntry struct {
	ID        int64           `json:"id"`
	ProduitID int64           `json:"produitId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
}

// Snapshot 从商品生成收藏条目。
func Snapshot(p Product) FavoriteEntry {
	return FavoriteEntry{
		ID:        p.ID,
		ProduitID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
	}
}
