package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/adminrec/personnel-management/internal"
)

// Service performs authentication business logic: credential verification,
// claim building and token issuance. Read-only with respect to stored state
// apart from account registration.
type Service struct {
	accounts  AccountRepository
	employees EmployeeDirectory
	tokens    TokenService
	argon     internal.Argon2Config
	logger    *slog.Logger
}

func NewService(accounts AccountRepository, employees EmployeeDirectory, tokens TokenService, argon internal.Argon2Config, logger *slog.Logger) *Service {
	return &Service{
		accounts:  accounts,
		employees: employees,
		tokens:    tokens,
		argon:     argon,
		logger:    logger,
	}
}

// Login verifies credentials and issues a token carrying role and identity
// claims. Missing accounts and wrong passwords fail identically; the caller
// never learns which half was wrong.
func (s *Service) Login(dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByEmployeeDNI(dto.DNI)
	if err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	if err := VerifyPassword(account.PasswordHash, dto.Password); err != nil {
		if errors.Is(err, ErrHashFormat) {
			s.logger.Error("stored password hash is malformed", "account_id", account.ID)
		}
		return nil, internal.ErrInvalidCredentials
	}

	// An account without its employee is a broken foreign key, not a bad
	// login attempt.
	emp, err := s.employees.GetByDNI(dto.DNI)
	if err != nil {
		s.logger.Error("account has no employee record", "account_id", account.ID, "error", err)
		return nil, internal.ErrEmployeeIntegrity.WithCause(err)
	}

	claims := ClaimSet{
		Role:         account.Role.String(),
		EmployeeName: emp.LastName + ", " + emp.FirstName,
		EmployeeDNI:  strconv.Itoa(emp.DNI),
	}

	token, err := s.tokens.Issue(strconv.Itoa(emp.DNI), claims)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("login succeeded", "employee_id", emp.ID, "role", account.Role)

	return &LoginResult{
		Token:       token,
		Role:        account.Role,
		DisplayName: emp.FirstName + " " + emp.LastName,
	}, nil
}

// Register creates an account for an existing employee. The initial role
// follows the employee's supervisor flag.
func (s *Service) Register(dto RegisterDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	emp, err := s.employees.GetByDNI(dto.DNI)
	if err != nil {
		return internal.ErrEmployeeNotFound
	}

	exists, err := s.accounts.ExistsForEmployeeDNI(dto.DNI)
	if err != nil {
		return fmt.Errorf("check existing account: %w", err)
	}
	if exists {
		return internal.ErrAccountExists
	}

	hash, err := HashPassword(dto.Password, s.argon)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	role := RoleEmployee
	if emp.IsSectorSupervisor {
		role = RoleSupervisor
	}

	account := &Account{
		EmployeeID:   emp.ID,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.accounts.Create(account); err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	s.logger.Info("account registered", "employee_id", emp.ID, "role", role)
	return nil
}

// RegisterAccount is the programmatic form of Register used when hiring an
// employee creates the account in the same flow.
func (s *Service) RegisterAccount(dni int, password string) error {
	return s.Register(RegisterDTO{DNI: dni, Password: password})
}

// ValidateToken validates a session token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.tokens.Validate(tokenString)
}
