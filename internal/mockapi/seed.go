package mockapi

import (
	"context"

	"github.com/shopspring/decimal"

	"quickbite-client/internal/domain"
	"quickbite-client/pkg/utils"
)

// Seed 写入演示数据：一个管理员、一个普通用户和一批菜单商品。
// 幂等：已有同邮箱用户时跳过对应写入。
func Seed(ctx context.Context, r Repos) error {
	users := []struct {
		rec UserRecord
		pw  string
	}{
		{UserRecord{User: domain.User{Username: "admin", Email: "admin@quickbite.dev", Adresse: "1 Rue de la Paix", Role: domain.RoleAdmin}}, "admin12345"},
		{UserRecord{User: domain.User{Username: "demo", Email: "demo@quickbite.dev", Adresse: "2 Avenue Victor Hugo", Role: domain.RoleUser}}, "demo12345"},
	}
	for _, u := range users {
		if _, err := r.GetUserByEmail(ctx, u.rec.Email); err == nil {
			continue
		}
		u.rec.PasswordHash = utils.HashPassword(u.pw)
		if _, err := r.CreateUser(ctx, u.rec); err != nil {
			return err
		}
	}

	existing, total, err := r.ListProducts(ctx, domain.ProductQuery{Page: 1, PerPage: 1})
	if err != nil {
		return err
	}
	if total > 0 || len(existing) > 0 {
		return nil
	}
	products := []domain.Product{
		{Name: "Margherita", Description: "Tomate, mozzarella, basilic", Price: decimal.NewFromFloat(9.50), Stock: 40, CategoryID: 1, Type: "pizza", Size: "M", Image: "/uploads/margherita.jpg"},
		{Name: "Quattro Formaggi", Description: "Quatre fromages", Price: decimal.NewFromFloat(12.00), Stock: 25, CategoryID: 1, Type: "pizza", Size: "L", Image: "/uploads/quattro.jpg"},
		{Name: "Classic Burger", Description: "Boeuf, cheddar, oignons", Price: decimal.NewFromFloat(11.20), Stock: 30, CategoryID: 2, Type: "burger", Image: "/uploads/classic-burger.jpg"},
		{Name: "Veggie Burger", Description: "Galette de légumes, avocat", Price: decimal.NewFromFloat(10.80), Stock: 18, CategoryID: 2, Type: "burger", Image: "/uploads/veggie-burger.jpg"},
		{Name: "Caesar Salad", Description: "Poulet grillé, parmesan", Price: decimal.NewFromFloat(8.90), Stock: 22, CategoryID: 3, Type: "salade", Image: "/uploads/caesar.jpg"},
		{Name: "Tiramisu", Description: "Mascarpone, café", Price: decimal.NewFromFloat(5.50), Stock: 50, CategoryID: 4, Type: "dessert", Image: "/uploads/tiramisu.jpg"},
		{Name: "Limonade Maison", Description: "Citron pressé, menthe", Price: decimal.NewFromFloat(3.20), Stock: 60, CategoryID: 5, Type: "boisson", Image: "/uploads/limonade.jpg"},
		{Name: "Sushi Mix", Description: "12 pièces assorties", Price: decimal.NewFromFloat(14.90), Stock: 15, CategoryID: 6, Type: "sushi", Image: "/uploads/sushi-mix.jpg"},
	}
	for _, p := range products {
		if _, err := r.CreateProduct(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
