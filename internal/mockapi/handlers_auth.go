package mockapi

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"quickbite-client/internal/domain"
	resp "quickbite-client/internal/transport/http/response"
	"quickbite-client/pkg/utils"
)

type registerReq struct {
	Username             string `json:"username"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation"`
	Adresse              string `json:"adresse"`
}

func (s *Server) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, 422, "The given data was invalid.")
		return
	}
	if req.Password != req.PasswordConfirmation {
		resp.Fail(c, 422, "The password confirmation does not match.")
		return
	}
	u, err := s.repos.CreateUser(c.Request.Context(), UserRecord{
		User: domain.User{
			Username: req.Username,
			Email:    req.Email,
			Adresse:  req.Adresse,
			Role:     domain.RoleUser,
		},
		PasswordHash: utils.HashPassword(req.Password),
	})
	if err != nil {
		failRepo(c, err)
		return
	}
	s.issueAndReply(c, u)
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, 422, "The given data was invalid.")
		return
	}
	rec, err := s.repos.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil || !utils.CheckPassword(req.Password, rec.PasswordHash) {
		resp.Unauthorized(c, "These credentials do not match our records.")
		return
	}
	s.issueAndReply(c, rec.User)
}

func (s *Server) issueAndReply(c *gin.Context, u domain.User) {
	token, err := s.jwter.Issue(strconv.FormatInt(u.UserID, 10), u.Role)
	if err != nil {
		resp.Internal(c, "Server error.")
		return
	}
	resp.OK(c, 200, gin.H{"token": token, "user": u})
}

// logout 令牌是无状态 JWT，这里只回 200，失效交给客户端丢弃。
func (s *Server) logout(c *gin.Context) {
	resp.OK(c, 200, gin.H{"message": "Logged out."})
}

func (s *Server) currentUser(c *gin.Context) {
	rec, err := s.repos.GetUser(c.Request.Context(), userID(c))
	if err != nil {
		resp.Unauthorized(c, "Unauthenticated.")
		return
	}
	resp.OK(c, 200, gin.H{"user": rec.User})
}
