package domain

// Comment 商品评价，rating 取值 1..5。
type Comment struct {
	ID        int64  `json:"id"`
	ProduitID int64  `json:"produitId"`
	UserID    int64  `json:"userId"`
	Author    string `json:"author,omitempty"`
	Rating    int    `json:"rating"`
	Content   string `json:"content"`
}
