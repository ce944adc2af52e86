// mockapi 起一个本地 QuickBite 后端替身，接口契约与线上完全一致。
// 默认用内存仓储；配置了 db.dsn 则落 gorm，配置了 redis.addr 则挂商品列表缓存。
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"quickbite-client/internal/core/auth"
	"quickbite-client/internal/core/cache"
	"quickbite-client/internal/core/config"
	"quickbite-client/internal/core/database"
	"quickbite-client/internal/core/logger"
	"quickbite-client/internal/core/server"
	"quickbite-client/internal/mockapi"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	repos := buildRepos(cfg, log)

	if err := mockapi.Seed(context.Background(), repos); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seed done")

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	r := mockapi.NewServer(repos, jwter, c, log).NewEngine()

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("mock api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("products", baseURL+"/api/products"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("mock api start FAILED", zap.Error(err))
		}
	}()
	log.Info("mock api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("mock api stopped gracefully")
}

func buildRepos(cfg *config.Config, l *zap.Logger) mockapi.Repos {
	if cfg.DB.DSN == "" {
		l.Info("using in-memory repositories")
		return mockapi.NewMemoryRepos()
	}
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	repos, err := mockapi.NewGormRepos(db)
	if err != nil {
		l.Fatal("db migrate", zap.Error(err))
	}
	l.Info("database connected", zap.String("driver", cfg.DB.Driver))
	return repos
}
