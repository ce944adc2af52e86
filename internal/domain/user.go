package domain

// User 后台用户。密码只写不读，响应里永远不回带。
type User struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Adresse  string `json:"adresse"`
	Role     string `json:"role"` // "user" / "admin"
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
