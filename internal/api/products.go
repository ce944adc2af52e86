package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"quickbite-client/internal/domain"
)

type productPage struct {
	domain.ProductPage
}

func (p *productPage) checkShape() error {
	if p.Meta.LastPage < 1 || p.Meta.PerPage < 1 {
		return fmt.Errorf("%w: bad pagination meta", ErrMalformedResponse)
	}
	for _, pr := range p.Data {
		if pr.ID == 0 {
			return fmt.Errorf("%w: product without id", ErrMalformedResponse)
		}
	}
	return nil
}

// ListProducts GET /api/products，零值参数不下发。
func (c *Client) ListProducts(ctx context.Context, q domain.ProductQuery) (domain.ProductPage, error) {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.SortBy != "" {
		v.Set("sort_by", q.SortBy)
	}
	if q.SortDir != "" {
		v.Set("sort_dir", q.SortDir)
	}
	if q.CategoryID > 0 {
		v.Set("category_id", strconv.FormatInt(q.CategoryID, 10))
	}
	if !q.MinPrice.IsZero() {
		v.Set("min_price", q.MinPrice.String())
	}
	if !q.MaxPrice.IsZero() {
		v.Set("max_price", q.MaxPrice.String())
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	var page productPage
	err := c.doJSON(ctx, http.MethodGet, "/api/products", v, nil, "Failed to fetch products", &page)
	return page.ProductPage, err
}

type productOut struct {
	domain.Product
}

func (p *productOut) checkShape() error {
	if p.ID == 0 {
		return fmt.Errorf("%w: product without id", ErrMalformedResponse)
	}
	return nil
}

// CreateProduct POST /api/products（multipart，后台管理用）。
func (c *Client) CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	return c.sendProductForm(ctx, "/api/products", in, "Failed to add product")
}

// UpdateProduct 后端沿用 POST + id 的 Laravel 习惯做更新。
func (c *Client) UpdateProduct(ctx context.Context, produitID int64, in domain.ProductInput) (domain.Product, error) {
	return c.sendProductForm(ctx, fmt.Sprintf("/api/products/%d", produitID), in, "Failed to update product")
}

func (c *Client) DeleteProduct(ctx context.Context, produitID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", produitID), nil, nil, "Failed to delete product", nil)
}

func (c *Client) sendProductForm(ctx context.Context, path string, in domain.ProductInput, fallback string) (domain.Product, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price.String(),
		"stock":       strconv.Itoa(in.Stock),
		"category_id": strconv.FormatInt(in.CategoryID, 10),
	}
	if in.Type != "" {
		fields["type"] = in.Type
	}
	if in.Size != "" {
		fields["size"] = in.Size
	}
	for k, val := range fields {
		if err := w.WriteField(k, val); err != nil {
			return domain.Product{}, fmt.Errorf("api: build form: %w", err)
		}
	}
	if in.ImagePath != "" {
		f, err := os.Open(in.ImagePath)
		if err != nil {
			return domain.Product{}, fmt.Errorf("api: open image: %w", err)
		}
		defer f.Close()
		part, err := w.CreateFormFile("image", filepath.Base(in.ImagePath))
		if err != nil {
			return domain.Product{}, fmt.Errorf("api: build form: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return domain.Product{}, fmt.Errorf("api: copy image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return domain.Product{}, fmt.Errorf("api: build form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return domain.Product{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out productOut
	if err := c.send(req, fallback, &out); err != nil {
		return domain.Product{}, err
	}
	return out.Product, nil
}
