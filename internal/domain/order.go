package domain

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderLine 下单时刻的商品快照，单价不随商品后续改价变化。
type OrderLine struct {
	ProduitID int64           `json:"produitId"`
	Quantite  int             `json:"quantite"`
	Prix      decimal.Decimal `json:"prix"`
}

// Commande 订单。后端以 commandeId 为主键字段名（历史包袱，和其它实体的 id 不同）。
type Commande struct {
	CommandeID int64           `json:"commandeId"`
	Lignes     []OrderLine     `json:"lignes"`
	Total      decimal.Decimal `json:"total"`
	Stat       OrderStatus     `json:"stat"`
	CreatedAt  string          `json:"created_at"`
}
