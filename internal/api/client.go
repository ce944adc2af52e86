// Package api is the thin adapter in front of the QuickBite backend.
// It injects the bearer token, normalizes failures and checks response
// shape — no retry, no cache, no in-flight dedup.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// TokenSource 每次请求时读取当前凭证，为空则匿名发送。
type TokenSource interface {
	Token() string
}

type Client struct {
	base string
	hc   *http.Client
	log  *zap.Logger
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, l *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" {
		return nil, fmt.Errorf("api: invalid base url %q", baseURL)
	}
	if l == nil {
		l = zap.NewNop()
	}
	return &Client{
		base: strings.TrimRight(u.String(), "/"),
		hc: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{next: http.DefaultTransport, tokens: tokens},
		},
		log: l,
	}, nil
}

// bearerTransport 请求拦截：有 token 就带上。
type bearerTransport struct {
	next   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens != nil {
		if tok := t.tokens.Token(); tok != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return t.next.RoundTrip(req)
}

// doJSON 发送 JSON 请求并解码响应。fallback 是该操作专属的兜底错误文案。
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any, fallback string, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := c.newRequest(ctx, method, path, query, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, fallback, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) send(req *http.Request, fallback string, out any) error {
	start := time.Now()
	res, err := c.hc.Do(req)
	if err != nil {
		c.log.Debug("api request failed",
			zap.String("method", req.Method), zap.String("url", req.URL.Path), zap.Error(err))
		return &APIError{Message: fallback, cause: err}
	}
	defer res.Body.Close()

	c.log.Debug("api request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", res.StatusCode),
		zap.Duration("latency", time.Since(start)))

	raw, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return &APIError{Status: res.StatusCode, Message: fallback, cause: err}
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return normalizeError(res.StatusCode, raw, fallback)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if ck, ok := out.(shaped); ok {
		if err := ck.checkShape(); err != nil {
			return err
		}
	}
	return nil
}

// shaped 响应结构自检，不合法的载荷在边界上就打回。
type shaped interface{ checkShape() error }

// normalizeError 优先用服务端给的 message / error 字段。
func normalizeError(status int, raw []byte, fallback string) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := fallback
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			msg = body.Message
		} else if body.Error != "" {
			msg = body.Error
		}
	}
	return &APIError{Status: status, Message: msg}
}
