package store

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"quickbite-client/internal/domain"
)

// 选择器都是 State 值上的纯函数：同样的输入永远给同样的输出。

// IsAuthenticated 三态认证标志。
func IsAuthenticated(st State) Tri { return st.Auth.Authenticated }

// CartCount 购物车角标：各行数量求和。
func CartCount(st State) int {
	n := 0
	for _, l := range st.Cart.Items {
		n += l.Quantite
	}
	return n
}

func FavoritesCount(st State) int { return len(st.Favorites.Items) }

// CartTotal 仅对带商品快照的行计价，缺快照的行当 0 处理。
func CartTotal(st State) decimal.Decimal {
	total := decimal.Zero
	for _, l := range st.Cart.Items {
		if l.Produit == nil {
			continue
		}
		total = total.Add(l.Produit.Price.Mul(decimal.NewFromInt(int64(l.Quantite))))
	}
	return total
}

// ProductFilter 客户端侧的目录过滤（服务端过滤之外的本地细筛）。
type ProductFilter struct {
	CategoryID int64
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
	Search     string
	Type       string
}

func FilterProducts(products []domain.Product, f ProductFilter) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	var out []domain.Product
	for _, p := range products {
		if f.CategoryID > 0 && p.CategoryID != f.CategoryID {
			continue
		}
		if !f.MinPrice.IsZero() && p.Price.LessThan(f.MinPrice) {
			continue
		}
		if !f.MaxPrice.IsZero() && p.Price.GreaterThan(f.MaxPrice) {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// UniqueTypes 下拉筛选项：去重保序，空值丢掉。
func UniqueTypes(products []domain.Product) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range products {
		if p.Type == "" {
			continue
		}
		if _, ok := seen[p.Type]; ok {
			continue
		}
		seen[p.Type] = struct{}{}
		out = append(out, p.Type)
	}
	return out
}

// Ellipsis 分页窗口里的省略号项。
const Ellipsis = "..."

// PageWindow 带省略号的页码窗口：首页、当前页前后各一页、末页。
// last=7 cur=4 → [1 ... 3 4 5 ... 7]。
func PageWindow(current, last int) []string {
	pages := []string{"1"}
	start := max(2, current-1)
	end := min(last-1, current+1)

	if start > 2 {
		pages = append(pages, Ellipsis)
	}
	for i := start; i <= end; i++ {
		pages = append(pages, strconv.Itoa(i))
	}
	if end < last-1 {
		pages = append(pages, Ellipsis)
	}
	if last > 1 {
		pages = append(pages, strconv.Itoa(last))
	}
	return pages
}
