package domain

type UserRole string

const (
	UserRoleAdmin UserRole = "ROLE_ADMIN"
	UserRoleUser  UserRole = "ROLE_USER"
)

type User struct {
	ID        string   `json:"userId"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Role      UserRole `json:"role"`
	CreatedAt int64    `json:"createdAt"` // ms since epoch
}
