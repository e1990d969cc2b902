package models

import "time"

// Role is the closed set of actor roles known to the system.
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered account of any role.
type User struct {
	ID               string    `bson:"id" json:"id"`
	Username         string    `bson:"username" json:"username"`
	Email            string    `bson:"email" json:"email"`
	PasswordHash     string    `bson:"password_hash" json:"-"`
	Role             Role      `bson:"role" json:"role"`
	StripeCustomerID string    `bson:"stripe_customer_id,omitempty" json:"-"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// PublicUser is the sanitized projection returned to clients.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Public strips credentials and internal references.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
