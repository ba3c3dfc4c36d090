package core

import "time"

// Role determines which dashboard and API surface a user sees.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDesigner Role = "designer"
	RoleAdmin    Role = "admin"
)

type User struct {
	Subject   string    `json:"subject"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarUrl"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
