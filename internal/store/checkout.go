package store

import (
	"context"
	"errors"

	"quickbite-client/internal/domain"
)

// PaymentConfirmer 托管卡片组件的占位：拿 client secret 去确认支付。
// 真实实现在 UI 侧（外部协作方），这里只定义端口。
type PaymentConfirmer interface {
	Confirm(ctx context.Context, clientSecret string) error
}

var ErrEmptyCart = errors.New("checkout: cart is empty")

// Checkout 结账编排：创建支付意图 → 确认支付 → 服务端下单 → 清空购物车。
// 任何一步失败就停在那一步，没有自动重试。
func (s *Store) Checkout(ctx context.Context, confirmer PaymentConfirmer) (domain.Commande, error) {
	total := CartTotal(s.Snapshot())
	if !total.IsPositive() {
		return domain.Commande{}, ErrEmptyCart
	}
	cents := total.Shift(2).Round(0).IntPart()

	secret, err := s.api.CreatePaymentIntent(ctx, cents)
	if err != nil {
		return domain.Commande{}, err
	}
	if err := confirmer.Confirm(ctx, secret); err != nil {
		return domain.Commande{}, err
	}

	order, err := s.createOrder(ctx)
	if err != nil {
		return domain.Commande{}, err
	}
	// 支付成功后清车失败不致命：订单已经落了，购物车下次抓取会对齐
	_ = s.ClearCart(ctx)
	return order, nil
}
