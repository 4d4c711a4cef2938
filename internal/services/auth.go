package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gdhealth/internal/domain"
)

type authService struct {
	employeeRepo   domain.EmployeeRepository
	customerRepo   domain.CustomerRepository
	hasher         domain.PasswordHasher
	tokens         domain.TokenIssuer
	tokenExpiry    time.Duration
	contextTimeout time.Duration
	now            func() time.Time
}

// NewAuthService creates an AuthService for employee and customer logins.
func NewAuthService(
	employeeRepo domain.EmployeeRepository,
	customerRepo domain.CustomerRepository,
	hasher domain.PasswordHasher,
	tokens domain.TokenIssuer,
	tokenExpiry time.Duration,
	timeout time.Duration,
) domain.AuthService {
	return &authService{
		employeeRepo:   employeeRepo,
		customerRepo:   customerRepo,
		hasher:         hasher,
		tokens:         tokens,
		tokenExpiry:    tokenExpiry,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *authService) Login(ctx context.Context, kind, loginID, password string) (string, *domain.Principal, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	loginID = strings.TrimSpace(loginID)
	if loginID == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	var (
		principal *domain.Principal
		err       error
	)
	switch kind {
	case domain.PrincipalEmployee:
		principal, err = s.loginEmployee(ctx, loginID, password)
	case domain.PrincipalCustomer:
		principal, err = s.loginCustomer(ctx, loginID, password)
	default:
		return "", nil, fmt.Errorf("%w: unknown account kind %q", domain.ErrInvalidInput, kind)
	}
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(principal, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, principal, nil
}

func (s *authService) loginEmployee(ctx context.Context, loginID, password string) (*domain.Principal, error) {
	emp, err := s.employeeRepo.GetByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	if !emp.Active {
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(emp.PasswordHash, emp.Salt, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Principal{ID: emp.ID, Kind: domain.PrincipalEmployee, Roles: []string{emp.Role}}, nil
}

func (s *authService) loginCustomer(ctx context.Context, loginID, password string) (*domain.Principal, error) {
	c, err := s.customerRepo.GetByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if err := s.hasher.Compare(c.PasswordHash, c.Salt, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Principal{ID: c.ID, Kind: domain.PrincipalCustomer, Roles: []string{domain.RoleCustomer}}, nil
}

func (s *authService) ChangePassword(ctx context.Context, actor *domain.Principal, currentPassword, newPassword string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if actor == nil {
		return fmt.Errorf("%w: no authenticated account", domain.ErrForbidden)
	}
	if utf8.RuneCountInString(newPassword) < domain.MinPasswordLength {
		return fmt.Errorf("%w: new password must be at least %d characters", domain.ErrInvalidInput, domain.MinPasswordLength)
	}
	if newPassword == currentPassword {
		return fmt.Errorf("%w: new password must differ from the current one", domain.ErrInvalidInput)
	}

	var (
		hash, salt string
		update     func(ctx context.Context, id int64, hash, salt string, updatedAt time.Time) error
	)
	switch actor.Kind {
	case domain.PrincipalEmployee:
		emp, err := s.employeeRepo.GetByID(ctx, actor.ID)
		if err != nil {
			return fmt.Errorf("get employee %d: %w", actor.ID, err)
		}
		if !emp.Active {
			return fmt.Errorf("%w: employee %d is inactive", domain.ErrForbidden, actor.ID)
		}
		hash, salt, update = emp.PasswordHash, emp.Salt, s.employeeRepo.UpdatePassword
	case domain.PrincipalCustomer:
		c, err := s.customerRepo.GetByID(ctx, actor.ID)
		if err != nil {
			return fmt.Errorf("get customer %d: %w", actor.ID, err)
		}
		hash, salt, update = c.PasswordHash, c.Salt, s.customerRepo.UpdatePassword
	default:
		return fmt.Errorf("%w: unknown account kind %q", domain.ErrForbidden, actor.Kind)
	}

	if err := s.hasher.Compare(hash, salt, currentPassword); err != nil {
		return domain.ErrInvalidCredentials
	}
	newSalt, err := s.hasher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	newHash, err := s.hasher.Hash(newSalt, newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := update(ctx, actor.ID, newHash, newSalt, s.now()); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
