package api

import (
	"context"
	"fmt"
	"net/http"

	"quickbite-client/internal/domain"
)

// AuthPayload 登录/注册成功响应：token + 用户快照。
type AuthPayload struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (p *AuthPayload) checkShape() error {
	if p.Token == "" {
		return fmt.Errorf("%w: auth payload without token", ErrMalformedResponse)
	}
	return nil
}

type RegisterInput struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Adresse              string `json:"adresse"`
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (AuthPayload, error) {
	var out AuthPayload
	err := c.doJSON(ctx, http.MethodPost, "/api/register", nil, in, "Registration failed", &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthPayload, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthPayload
	err := c.doJSON(ctx, http.MethodPost, "/api/login", nil, body, "Login failed", &out)
	return out, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/logout", nil, nil, "Logout failed", nil)
}

type currentUser struct {
	User domain.User `json:"user"`
}

func (u *currentUser) checkShape() error {
	if u.User.UserID == 0 {
		return fmt.Errorf("%w: user without id", ErrMalformedResponse)
	}
	return nil
}

func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var out currentUser
	err := c.doJSON(ctx, http.MethodGet, "/api/user", nil, nil, "Session expired", &out)
	return out.User, err
}
