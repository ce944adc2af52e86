package domain

// CartLine 购物车行。后端沿用法语字段：produitId / quantite。
// 一个商品至多一行，重复加购由服务端合并数量。
type CartLine struct {
	ID        int64    `json:"id"`
	ProduitID int64    `json:"produitId"`
	Quantite  int      `json:"quantite"`
	Produit   *Product `json:"produit,omitempty"`
}
