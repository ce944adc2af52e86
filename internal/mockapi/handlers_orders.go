package mockapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"quickbite-client/internal/domain"
	mdw "quickbite-client/internal/transport/http/middleware"
	resp "quickbite-client/internal/transport/http/response"
)

func (s *Server) listOrders(c *gin.Context) {
	all := c.GetString(mdw.KeyRole) == domain.RoleAdmin
	orders, err := s.repos.ListOrders(c.Request.Context(), userID(c), all)
	if err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 200, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, owner, err := s.repos.GetOrder(c.Request.Context(), id)
	if err != nil {
		failRepo(c, err)
		return
	}
	if owner != userID(c) && c.GetString(mdw.KeyRole) != domain.RoleAdmin {
		resp.NotFound(c, "Not found.")
		return
	}
	resp.OK(c, 200, o)
}

// createOrder 从当前购物车生成订单：逐行固化单价，合计由服务端算。
// 购物车本身不清空，清空是客户端下单成功后的动作。
func (s *Server) createOrder(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	lines, err := s.repos.ListCart(ctx, uid)
	if err != nil {
		failRepo(c, err)
		return
	}
	if len(lines) == 0 {
		resp.BadRequest(c, "Cart is empty.")
		return
	}
	total := decimal.Zero
	ordLines := make([]domain.OrderLine, 0, len(lines))
	for _, l := range lines {
		prix := decimal.Zero
		if l.Produit != nil {
			prix = l.Produit.Price
		}
		total = total.Add(prix.Mul(decimal.NewFromInt(int64(l.Quantite))))
		ordLines = append(ordLines, domain.OrderLine{
			ProduitID: l.ProduitID,
			Quantite:  l.Quantite,
			Prix:      prix,
		})
	}
	o, err := s.repos.CreateOrder(ctx, uid, domain.Commande{
		Lignes:    ordLines,
		Total:     total,
		Stat:      domain.OrderPending,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 201, o)
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Stat domain.OrderStatus `json:"stat" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.Stat.Valid() {
		resp.Fail(c, 422, "The given data was invalid.")
		return
	}
	o, err := s.repos.UpdateOrderStatus(c.Request.Context(), id, req.Stat)
	if err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 200, o)
}
