package api

import (
	"context"
	"fmt"
	"net/http"

	"quickbite-client/internal/domain"
)

type commandeOut struct {
	domain.Commande
}

func (o *commandeOut) checkShape() error {
	if o.CommandeID == 0 {
		return fmt.Errorf("%w: commande without id", ErrMalformedResponse)
	}
	if o.Stat != "" && !o.Stat.Valid() {
		return fmt.Errorf("%w: unknown order status %q", ErrMalformedResponse, o.Stat)
	}
	return nil
}

type commandeList []domain.Commande

func (ls *commandeList) checkShape() error {
	for i := range *ls {
		o := commandeOut{(*ls)[i]}
		if err := o.checkShape(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Commande, error) {
	var ls commandeList
	err := c.doJSON(ctx, http.MethodGet, "/api/commandes", nil, nil, "Failed to fetch commandes", &ls)
	return ls, err
}

func (c *Client) GetOrder(ctx context.Context, commandeID int64) (domain.Commande, error) {
	var out commandeOut
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/commandes/%d", commandeID), nil, nil, "Failed to fetch commande details", &out)
	return out.Commande, err
}

// CreateOrder 由服务端从当前购物车生成订单并计算总价。
func (c *Client) CreateOrder(ctx context.Context) (domain.Commande, error) {
	var out commandeOut
	err := c.doJSON(ctx, http.MethodPost, "/api/commandes", nil, nil, "Order creation failed", &out)
	return out.Commande, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, commandeID int64, stat domain.OrderStatus) (domain.Commande, error) {
	var out commandeOut
	body := map[string]any{"stat": stat}
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/commandes/%d", commandeID), nil, body, "Failed to update commande status", &out)
	return out.Commande, err
}
