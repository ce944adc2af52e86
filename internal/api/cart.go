package api

import (
	"context"
	"fmt"
	"net/http"

	"quickbite-client/internal/domain"
)

type cartLines []domain.CartLine

func (ls *cartLines) checkShape() error {
	for _, l := range *ls {
		if l.ID == 0 || l.ProduitID == 0 {
			return fmt.Errorf("%w: cart line without id", ErrMalformedResponse)
		}
	}
	return nil
}

type cartLineOut struct {
	domain.CartLine
}

func (l *cartLineOut) checkShape() error {
	if l.ID == 0 || l.ProduitID == 0 {
		return fmt.Errorf("%w: cart line without id", ErrMalformedResponse)
	}
	return nil
}

func (c *Client) ListCart(ctx context.Context) ([]domain.CartLine, error) {
	var ls cartLines
	err := c.doJSON(ctx, http.MethodGet, "/api/panier", nil, nil, "Failed to fetch cart", &ls)
	return ls, err
}

// AddToCart 服务端保证同商品合并成一行，返回合并后的行。
func (c *Client) AddToCart(ctx context.Context, produitID int64, quantite int) (domain.CartLine, error) {
	body := map[string]any{"produitId": produitID, "quantite": quantite}
	var out cartLineOut
	err := c.doJSON(ctx, http.MethodPost, "/api/panier", nil, body, "Failed to add to cart", &out)
	return out.CartLine, err
}

func (c *Client) UpdateCartQuantity(ctx context.Context, panierID int64, quantite int) (domain.CartLine, error) {
	body := map[string]any{"quantite": quantite}
	var out cartLineOut
	err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/api/panier/%d", panierID), nil, body, "Failed to update quantity", &out)
	return out.CartLine, err
}

func (c *Client) RemoveFromCart(ctx context.Context, panierID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/panier/%d", panierID), nil, nil, "Failed to remove from cart", nil)
}
