package mockapi

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"quickbite-client/internal/core/auth"
	"quickbite-client/internal/core/cache"
	mdw "quickbite-client/internal/transport/http/middleware"
)

type Server struct {
	repos Repos
	jwter *auth.JWTer
	cache *cache.Cache // 可空，配置了 redis 才有
	log   *zap.Logger
}

func NewServer(repos Repos, jwter *auth.JWTer, c *cache.Cache, l *zap.Logger) *Server {
	if l == nil {
		l = zap.NewNop()
	}
	return &Server{repos: repos, jwter: jwter, cache: c, log: l}
}

// NewEngine 路由与真实后端的路径一一对应（/api 前缀，法语资源名照搬）。
func (s *Server) NewEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(s.log),
		ginzap.RecoveryWithZap(s.log, true),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// 公共
	api.POST("/register", s.register)
	api.POST("/login", s.login)
	api.GET("/products", s.listProducts)
	api.GET("/commentaires", s.listComments)
	api.POST("/stripe/pay", s.createPaymentIntent)

	// 登录即可
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(s.jwter, ""))
	{
		authed.POST("/logout", s.logout)
		authed.GET("/user", s.currentUser)

		authed.GET("/panier", s.listCart)
		authed.POST("/panier", s.addToCart)
		authed.PATCH("/panier/:id", s.updateCartQuantity)
		authed.DELETE("/panier/:id", s.removeFromCart)

		authed.GET("/commandes", s.listOrders)
		authed.GET("/commandes/:id", s.getOrder)
		authed.POST("/commandes", s.createOrder)

		authed.POST("/commentaires", s.createComment)
	}

	// 仅管理员
	admin := api.Group("")
	admin.Use(mdw.AuthJWT(s.jwter, "admin"))
	{
		admin.POST("/products", s.createProduct)
		admin.POST("/products/:id", s.updateProduct)
		admin.DELETE("/products/:id", s.deleteProduct)

		admin.PUT("/commandes/:id", s.updateOrderStatus)

		admin.GET("/users", s.listUsers)
		admin.POST("/users", s.createUser)
		admin.PUT("/users/:id", s.updateUser)
		admin.DELETE("/users/:id", s.deleteUser)
	}

	return r
}
