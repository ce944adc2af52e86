package mockapi

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resp "quickbite-client/internal/transport/http/response"
)

// createPaymentIntent 假 Stripe：凑一个形状正确的 client secret 就够了。
func (s *Server) createPaymentIntent(c *gin.Context) {
	var req struct {
		Amount int64 `json:"amount" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, 422, "The given data was invalid.")
		return
	}
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	secret := fmt.Sprintf("pi_%s_secret_%s", id[:16], id[16:])
	resp.OK(c, 200, gin.H{"clientSecret": secret})
}
