package mockapi

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"quickbite-client/internal/domain"
	resp "quickbite-client/internal/transport/http/response"
)

func (s *Server) listComments(c *gin.Context) {
	pid, err := strconv.ParseInt(c.Query("produitId"), 10, 64)
	if err != nil || pid <= 0 {
		resp.BadRequest(c, "produitId is required.")
		return
	}
	comments, err := s.repos.ListComments(c.Request.Context(), pid)
	if err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 200, comments)
}

func (s *Server) createComment(c *gin.Context) {
	var req struct {
		ProduitID int64  `json:"produitId" binding:"required"`
		Content   string `json:"content" binding:"required"`
		Rating    int    `json:"rating" binding:"required,min=1,max=5"`
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
	uid := userID(c)
	author := ""
	if rec, err := s.repos.GetUser(ctx, uid); err == nil {
		author = rec.Username
	}
	cm, err := s.repos.CreateComment(ctx, domain.Comment{
		ProduitID: req.ProduitID,
		UserID:    uid,
		Author:    author,
		Rating:    req.Rating,
		Content:   req.Content,
	})
	if err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 201, cm)
}
