package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether r is one of the known role claim values.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// User models an account known to the backend. The console never stores
// users; this shape only appears in API payloads and stub fixtures.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
