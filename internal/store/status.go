package store

// Status 每个 slice 的请求状态机。
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Tri 认证三态：未知（还在查）/ 否 / 是。
// 受保护页面靠“未知”挡住未登录内容闪现。
type Tri uint8

const (
	TriUnknown Tri = iota
	TriFalse
	TriTrue
)
