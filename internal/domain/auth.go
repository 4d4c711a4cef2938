package domain

import (
	"context"
	"time"
)

// Principal kinds.
const (
	PrincipalEmployee = "employee"
	PrincipalCustomer = "customer"
)

// Roles carried in tokens and checked by route authority.
const (
	RoleHeadOffice = "headoffice"
	RoleBranch     = "branch"
	RoleCustomer   = "customer"
)

// MinPasswordLength is the shortest password accepted when one is set.
const MinPasswordLength = 8

// Principal is the authenticated actor of a request. It is passed explicitly
// into write operations.
// swagger:model Principal
type Principal struct {
	ID    int64    `json:"id"`
	Kind  string   `json:"kind"`
	Roles []string `json:"roles"`
}

// HasRole reports whether the principal holds role.
func (p *Principal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Employee is a head-office or branch staff account.
// swagger:model Employee
type Employee struct {
	ID           int64     `json:"id"`
	LoginID      string    `json:"login_id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Customer is a gym member account.
// swagger:model Customer
type Customer struct {
	ID           int64     `json:"id"`
	LoginID      string    `json:"login_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues signed tokens for an authenticated principal.
type TokenIssuer interface {
	Issue(principal *Principal, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the principal it was issued for.
type TokenVerifier interface {
	Verify(token string) (*Principal, error)
}

// EmployeeRepository defines read access to employee accounts.
type EmployeeRepository interface {
	GetByLoginID(ctx context.Context, loginID string) (*Employee, error)
	GetByID(ctx context.Context, id int64) (*Employee, error)
	UpdatePassword(ctx context.Context, id int64, hash, salt string, updatedAt time.Time) error
}

// CustomerRepository defines read access to customer accounts.
type CustomerRepository interface {
	GetByLoginID(ctx context.Context, loginID string) (*Customer, error)
	GetByID(ctx context.Context, id int64) (*Customer, error)
	UpdatePassword(ctx context.Context, id int64, hash, salt string, updatedAt time.Time) error
}

// AuthService authenticates employees and customers.
type AuthService interface {
	// Login checks the credentials of an account of the given kind and returns a signed token.
	Login(ctx context.Context, kind, loginID, password string) (token string, principal *Principal, err error)
	// ChangePassword replaces the actor's own password after checking the current one.
	ChangePassword(ctx context.Context, actor *Principal, currentPassword, newPassword string) error
}
