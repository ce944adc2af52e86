// storefront 演示客户端：登录、浏览目录、加购、结账，走完整条状态链。
// 对着 mockapi（或线上后端）跑，观察每个操作的 pending → fulfilled 事件流。
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"quickbite-client/internal/api"
	"quickbite-client/internal/core/auth"
	"quickbite-client/internal/core/config"
	"quickbite-client/internal/core/localstore"
	"quickbite-client/internal/core/logger"
	"quickbite-client/internal/domain"
	"quickbite-client/internal/store"
)

// autoConfirmer 演示用：拿到 client secret 直接当支付成功。
type autoConfirmer struct{ log *zap.Logger }

func (a autoConfirmer) Confirm(_ context.Context, clientSecret string) error {
	a.log.Info("payment confirmed", zap.String("client_secret", clientSecret))
	return nil
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	local := localstore.Open(cfg.Storage.Path)
	client, err := api.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSec)*time.Second, local, log)
	if err != nil {
		log.Fatal("api client", zap.Error(err))
	}
	s := store.New(client, local, log)

	events, unsubscribe := s.Subscribe()
	defer unsubscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range events {
			if e.Err != "" {
				log.Warn("op rejected", zap.String("op", e.Op), zap.String("err", e.Err))
				continue
			}
			log.Info("op", zap.String("op", e.Op), zap.String("phase", string(e.Phase)))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// 有没过期的持久化 token 就先试恢复会话，失败再登录
	if tok := local.Token(); tok != "" && !auth.Expired(tok) {
		_ = s.FetchCurrentUser(ctx)
	}
	if store.IsAuthenticated(s.Snapshot()) != store.TriTrue {
		if err := s.LoginUser(ctx, "demo@quickbite.dev", "demo12345"); err != nil {
			log.Fatal("login", zap.Error(err))
		}
	}
	st := s.Snapshot()
	fmt.Printf("logged in as %s (%s)\n", st.Auth.User.Username, st.Auth.User.Email)

	if err := s.FetchProducts(ctx, domain.ProductQuery{Page: 1, PerPage: 10}); err != nil {
		log.Fatal("fetch products", zap.Error(err))
	}
	st = s.Snapshot()
	fmt.Printf("catalog: %d products (page %d/%d)  pager %v\n",
		len(st.Products.Items), st.Products.Meta.CurrentPage, st.Products.Meta.LastPage,
		store.PageWindow(st.Products.Meta.CurrentPage, st.Products.Meta.LastPage))
	for _, p := range st.Products.Items {
		fmt.Printf("  #%d %-18s %8s€  [%s]\n", p.ID, p.Name, p.Price.StringFixed(2), p.Type)
	}

	if len(st.Products.Items) < 2 {
		log.Fatal("not enough products to demo with")
	}
	first, second := st.Products.Items[0], st.Products.Items[1]
	s.AddToFavorites(first)

	if err := s.AddToCart(ctx, first.ID, 2); err != nil {
		log.Fatal("add to cart", zap.Error(err))
	}
	if err := s.AddToCart(ctx, second.ID, 1); err != nil {
		log.Fatal("add to cart", zap.Error(err))
	}
	st = s.Snapshot()
	fmt.Printf("cart: %d articles, total %s€, favorites %d\n",
		store.CartCount(st), store.CartTotal(st).StringFixed(2), store.FavoritesCount(st))

	commande, err := s.Checkout(ctx, autoConfirmer{log: log})
	if err != nil {
		log.Fatal("checkout", zap.Error(err))
	}
	fmt.Printf("order #%d placed, total %s€, status %s\n",
		commande.CommandeID, commande.Total.StringFixed(2), commande.Stat)

	if err := s.FetchOrders(ctx); err != nil {
		log.Fatal("fetch orders", zap.Error(err))
	}
	fmt.Printf("order history: %d commandes\n", len(s.Snapshot().Orders.Items))

	cancel()
	unsubscribe()
	<-done
}
