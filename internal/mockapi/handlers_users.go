package mockapi

import (
	"github.com/gin-gonic/gin"

	"quickbite-client/internal/domain"
	resp "quickbite-client/internal/transport/http/response"
	"quickbite-client/pkg/utils"
)

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.repos.ListUsers(c.Request.Context())
	if err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 200, gin.H{"data": users})
}

type userReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Adresse  string `json:"adresse"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (s *Server) createUser(c *gin.Context) {
	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		resp.Fail(c, 422, "The given data was invalid.")
		return
	}
	if req.Role == "" {
		req.Role = domain.RoleUser
	}
	u, err := s.repos.CreateUser(c.Request.Context(), UserRecord{
		User: domain.User{
			Username: req.Username,
			Email:    req.Email,
			Adresse:  req.Adresse,
			Role:     req.Role,
		},
		PasswordHash: utils.HashPassword(req.Password),
	})
	if err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 201, u)
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, 422, "The given data was invalid.")
		return
	}
	ctx := c.Request.Context()
	rec, err := s.repos.GetUser(ctx, id)
	if err != nil {
		failRepo(c, err)
		return
	}
	rec.Username = req.Username
	rec.Email = req.Email
	rec.Adresse = req.Adresse
	if req.Role != "" {
		rec.Role = req.Role
	}
	if req.Password != "" {
		rec.PasswordHash = utils.HashPassword(req.Password)
	}
	u, err := s.repos.UpdateUser(ctx, rec)
	if err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 200, u)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.repos.DeleteUser(c.Request.Context(), id); err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 200, gin.H{"message": "Deleted."})
}
