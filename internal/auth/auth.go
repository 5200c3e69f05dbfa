package auth

import "time"

// Account is the authentication record bound one-to-one to an employee. The
// role tag is the only authorization state persisted per account; permission
// sets are derived from it, never stored.
type Account struct {
	ID           int64
	EmployeeID   int64
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmployeeInfo is the slice of the employee record the authentication flow
// needs for building claims.
type EmployeeInfo struct {
	ID                 int64
	DNI                int
	FirstName          string
	LastName           string
	IsSectorSupervisor bool
}

// AccountRepository looks accounts up by the employee national ID, not the
// surrogate key. Implementations exclude soft-deleted accounts: a deleted
// account cannot authenticate.
type AccountRepository interface {
	GetByEmployeeDNI(dni int) (*Account, error)
	ExistsForEmployeeDNI(dni int) (bool, error)
	Create(account *Account) error
}

// EmployeeDirectory resolves the employee bound to an account.
type EmployeeDirectory interface {
	GetByDNI(dni int) (*EmployeeInfo, error)
}

// LoginResult is what a successful authentication hands back to the caller.
type LoginResult struct {
	Token       string
	Role        Role
	DisplayName string
}

// ServiceAPI is the authentication surface consumed by handlers and the
// request middleware.
type ServiceAPI interface {
	Login(dto LoginDTO) (*LoginResult, error)
	Register(dto RegisterDTO) error
	ValidateToken(tokenString string) (*Claims, error)
}
