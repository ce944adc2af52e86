package mockapi

import (
	"context"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"quickbite-client/internal/core/cache"
	"quickbite-client/internal/domain"
	resp "quickbite-client/internal/transport/http/response"
)

const productCacheTTL = 30 * time.Second

func (s *Server) listProducts(c *gin.Context) {
	q := parseProductQuery(c)
	ctx := c.Request.Context()

	load := func(ctx2 context.Context) (*domain.ProductPage, error) {
		items, total, err := s.repos.ListProducts(ctx2, q)
		if err != nil {
			return nil, err
		}
		last := (total + q.PerPage - 1) / q.PerPage
		if last < 1 {
			last = 1
		}
		return &domain.ProductPage{
			Data: items,
			Meta: domain.PageMeta{
				CurrentPage: q.Page,
				PerPage:     q.PerPage,
				Total:       total,
				LastPage:    last,
				SortBy:      q.SortBy,
				SortDir:     q.SortDir,
			},
		}, nil
	}

	var page *domain.ProductPage
	var err error
	if s.cache != nil {
		key := "products:" + c.Request.URL.RawQuery
		page, err = cache.GetOrLoadJSON(s.cache, ctx, key, productCacheTTL, load)
	} else {
		page, err = load(ctx)
	}
	if err != nil {
		failRepo(c, err)
		return
	}
	resp.OK(c, 200, page)
}

func parseProductQuery(c *gin.Context) domain.ProductQuery {
	q := domain.ProductQuery{Page: 1, PerPage: 10}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("per_page")); err == nil && v > 0 {
		q.PerPage = v
	}
	q.SortBy = c.Query("sort_by")
	q.SortDir = c.Query("sort_dir")
	if v, err := strconv.ParseInt(c.Query("category_id"), 10, 64); err == nil {
		q.CategoryID = v
	}
	if v, err := decimal.NewFromString(c.Query("min_price")); err == nil {
		q.MinPrice = v
	}
	if v, err := decimal.NewFromString(c.Query("max_price")); err == nil {
		q.MaxPrice = v
	}
	q.Type = c.Query("type")
	q.Search = c.Query("search")
	return q
}

func (s *Server) createProduct(c *gin.Context) {
	p, ok := bindProductForm(c)
	if !ok {
		return
	}
	out, err := s.repos.CreateProduct(c.Request.Context(), p)
	if err != nil {
		failRepo(c, err)
		return
	}
	s.invalidateProducts(c)
	resp.OK(c, 201, out)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, ok := bindProductForm(c)
	if !ok {
		return
	}
	p.ID = id
	out, err := s.repos.UpdateProduct(c.Request.Context(), p)
	if err != nil {
		failRepo(c, err)
		return
	}
	s.invalidateProducts(c)
	resp.OK(c, 200, out)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.repos.DeleteProduct(c.Request.Context(), id); err != nil {
		failRepo(c, err)
		return
	}
	s.invalidateProducts(c)
	resp.OK(c, 200, gin.H{"message": "Deleted."})
}

func (s *Server) invalidateProducts(c *gin.Context) {
	if s.cache != nil {
		s.cache.Invalidate(c.Request.Context(), "products:*")
	}
}

// bindProductForm 商品写接口走 multipart：字段 + 可选 image 文件。
func bindProductForm(c *gin.Context) (domain.Product, bool) {
	price, err := decimal.NewFromString(c.PostForm("price"))
	name := c.PostForm("name")
	if err != nil || name == "" {
		resp.Fail(c, 422, "The given data was invalid.")
		return domain.Product{}, false
	}
	stock, _ := strconv.Atoi(c.PostForm("stock"))
	catID, _ := strconv.ParseInt(c.PostForm("category_id"), 10, 64)
	p := domain.Product{
		Name:        name,
		Description: c.PostForm("description"),
		Price:       price,
		Stock:       stock,
		CategoryID:  catID,
		Type:        c.PostForm("type"),
		Size:        c.PostForm("size"),
	}
	if fh, err := c.FormFile("image"); err == nil {
		p.Image = "/uploads/" + filepath.Base(fh.Filename)
	}
	return p, true
}
