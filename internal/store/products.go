package store

import (
	"context"

	"go.uber.org/zap"

	"quickbite-client/internal/domain"
)

type ProductsState struct {
	Items  []domain.Product
	Meta   domain.PageMeta
	Status Status
	Error  string
}

// FetchProducts 列表抓取：fulfilled 整体替换集合并原样收下分页元数据。
// pending 阶段不清空旧集合（stale-while-revalidate）。
func (s *Store) FetchProducts(ctx context.Context, q domain.ProductQuery) error {
	return runThunk(s, ctx, "products/fetchProducts",
		func(ctx context.Context) (domain.ProductPage, error) { return s.api.ListProducts(ctx, q) },
		func(st *State) { st.Products.Status = StatusLoading },
		func(st *State, page domain.ProductPage) {
			st.Products.Status = StatusSucceeded
			st.Products.Items = page.Data
			st.Products.Meta = page.Meta
			st.Products.Error = ""
		},
		func(st *State, msg string) {
			st.Products.Status = StatusFailed
			st.Products.Error = msg
		},
	)
}

// AddProduct 管理端新增，成功后插到列表头部（新的在前）。
func (s *Store) AddProduct(ctx context.Context, in domain.ProductInput) error {
	return runThunk(s, ctx, "products/addProduct",
		func(ctx context.Context) (domain.Product, error) { return s.api.CreateProduct(ctx, in) },
		func(st *State) { st.Products.Status = StatusLoading },
		func(st *State, p domain.Product) {
			st.Products.Status = StatusSucceeded
			st.Products.Items = append([]domain.Product{p}, st.Products.Items...)
			st.Products.Meta.Total++
			st.Products.Error = ""
		},
		func(st *State, msg string) {
			st.Products.Status = StatusFailed
			st.Products.Error = msg
		},
	)
}

func (s *Store) UpdateProduct(ctx context.Context, produitID int64, in domain.ProductInput) error {
	return runThunk(s, ctx, "products/updateProduct",
		func(ctx context.Context) (domain.Product, error) { return s.api.UpdateProduct(ctx, produitID, in) },
		func(st *State) { st.Products.Status = StatusLoading },
		func(st *State, p domain.Product) {
			st.Products.Status = StatusSucceeded
			st.Products.Error = ""
			for i := range st.Products.Items {
				if st.Products.Items[i].ID == p.ID {
					st.Products.Items[i] = p
					return
				}
			}
			// 更新对象不在当前页里：状态不动，但留下痕迹
			s.log.Warn("updated product not in current collection", zap.Int64("id", p.ID))
		},
		func(st *State, msg string) {
			st.Products.Status = StatusFailed
			st.Products.Error = msg
		},
	)
}

func (s *Store) DeleteProduct(ctx context.Context, produitID int64) error {
	return runThunk(s, ctx, "products/deleteProduct",
		func(ctx context.Context) (int64, error) { return produitID, s.api.DeleteProduct(ctx, produitID) },
		func(st *State) { st.Products.Status = StatusLoading },
		func(st *State, id int64) {
			st.Products.Status = StatusSucceeded
			st.Products.Error = ""
			kept := st.Products.Items[:0]
			for _, p := range st.Products.Items {
				if p.ID != id {
					kept = append(kept, p)
				}
			}
			st.Products.Items = kept
			st.Products.Meta.Total--
		},
		func(st *State, msg string) {
			st.Products.Status = StatusFailed
			st.Products.Error = msg
		},
	)
}

// ResetFilters 回到默认分页/排序。
func (s *Store) ResetFilters() {
	s.mutate("products/resetFilters", func(st *State) {
		st.Products.Meta = domain.PageMeta{CurrentPage: 1, PerPage: 10, LastPage: 1}
	})
}

// ClearSearchResults 搜索框关闭时清场。
func (s *Store) ClearSearchResults() {
	s.mutate("products/clearSearchResults", func(st *State) {
		st.Products.Items = nil
		st.Products.Status = StatusIdle
	})
}

func (s *Store) ResetProductsError() {
	s.mutate("products/resetError", func(st *State) { st.Products.Error = "" })
}
