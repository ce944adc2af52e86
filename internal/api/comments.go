package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"quickbite-client/internal/domain"
)

type commentList []domain.Comment

func (ls *commentList) checkShape() error {
	for _, cm := range *ls {
		if cm.ID == 0 {
			return fmt.Errorf("%w: comment without id", ErrMalformedResponse)
		}
	}
	return nil
}

type commentOut struct {
	domain.Comment
}

func (cm *commentOut) checkShape() error {
	if cm.ID == 0 {
		return fmt.Errorf("%w: comment without id", ErrMalformedResponse)
	}
	return nil
}

func (c *Client) ListComments(ctx context.Context, produitID int64) ([]domain.Comment, error) {
	v := url.Values{}
	v.Set("produitId", strconv.FormatInt(produitID, 10))
	var ls commentList
	err := c.doJSON(ctx, http.MethodGet, "/api/commentaires", v, nil, "Failed to fetch comments", &ls)
	return ls, err
}

func (c *Client) CreateComment(ctx context.Context, produitID int64, content string, rating int) (domain.Comment, error) {
	body := map[string]any{"produitId": produitID, "content": content, "rating": rating}
	var out commentOut
	err := c.doJSON(ctx, http.MethodPost, "/api/commentaires", nil, body, "Failed to submit comment", &out)
	return out.Comment, err
}
