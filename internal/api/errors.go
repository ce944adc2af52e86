package api

import "errors"

// ErrMalformedResponse 服务端载荷缺字段或类型不对，
// 宁可在适配层失败也不把零值灌进状态里。
var ErrMalformedResponse = errors.New("api: malformed response")

// APIError 网络/接口失败的归一化形态，Message 面向用户展示。
type APIError struct {
	Status  int
	Message string
	cause   error
}

func (e *APIError) Error() string { return e.Message }
func (e *APIError) Unwrap() error { return e.cause }

// IsNotFound 404 判定，订单/商品详情页会用。
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == 404
}
