package mockapi

import (
	"github.com/gin-gonic/gin"

	resp "quickbite-client/internal/transport/http/response"
)

func (s *Server) listCart(c *gin.Context) {
	lines, err := s.repos.ListCart(c.Request.Context(), userID(c))
	if err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 200, lines)
}

func (s *Server) addToCart(c *gin.Context) {
	var req struct {
		ProduitID int64 `json:"produitId" binding:"required"`
		Quantite  int   `json:"quantite" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, 422, "The given data was invalid.")
		return
	}
	ctx := c.Request.Context()
	if _, err := s.repos.GetProduct(ctx, req.ProduitID); err != nil {
		failRepo(c, err)
		return
	}
	line, err := s.repos.UpsertCartLine(ctx, userID(c), req.ProduitID, req.Quantite)
	if err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 201, line)
}

func (s *Server) updateCartQuantity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Quantite int `json:"quantite" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, 422, "The given data was invalid.")
		return
	}
	ctx := c.Request.Context()
	if _, owner, err := s.repos.GetCartLine(ctx, id); err != nil || owner != userID(c) {
		resp.NotFound(c, "Not found.")
		return
	}
	line, err := s.repos.SetCartQuantity(ctx, id, req.Quantite)
	if err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 200, line)
}

func (s *Server) removeFromCart(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, owner, err := s.repos.GetCartLine(ctx, id); err != nil || owner != userID(c) {
		resp.NotFound(c, "Not found.")
		return
	}
	if err := s.repos.DeleteCartLine(ctx, id); err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 200, gin.H{"message": "Removed."})
}
