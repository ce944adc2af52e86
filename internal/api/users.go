package api

import (
	"context"
	"fmt"
	"net/http"

	"quickbite-client/internal/domain"
)

type userList struct {
	Data []domain.User `json:"data"`
}

func (u *userList) checkShape() error {
	for _, x := range u.Data {
		if x.UserID == 0 {
			return fmt.Errorf("%w: user without id", ErrMalformedResponse)
		}
	}
	return nil
}

type userOut struct {
	domain.User
}

func (u *userOut) checkShape() error {
	if u.UserID == 0 {
		return fmt.Errorf("%w: user without id", ErrMalformedResponse)
	}
	return nil
}

// UserInput 管理端创建/更新用户。Password 只写不读。
type UserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Adresse  string `json:"adresse"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out userList
	err := c.doJSON(ctx, http.MethodGet, "/api/users", nil, nil, "Failed fetch users", &out)
	return out.Data, err
}

func (c *Client) CreateUser(ctx context.Context, in UserInput) (domain.User, error) {
	var out userOut
	err := c.doJSON(ctx, http.MethodPost, "/api/users", nil, in, "Failed to add user", &out)
	return out.User, err
}

func (c *Client) UpdateUser(ctx context.Context, userID int64, in UserInput) (domain.User, error) {
	var out userOut
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", userID), nil, in, "Failed to update user", &out)
	return out.User, err
}

func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", userID), nil, nil, "Failed to delete user", nil)
}
