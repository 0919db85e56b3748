package user

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
}
