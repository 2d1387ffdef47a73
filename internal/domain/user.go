package domain

type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleStaff UserRole = "STAFF"
)

type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	FullName     string   `json:"full_name"`
	Active       bool     `json:"active"`
	Role         UserRole `json:"role"`
	CreatedOn    string   `json:"created_on"`
	LastLogin    *string  `json:"last_login,omitempty"`
}
