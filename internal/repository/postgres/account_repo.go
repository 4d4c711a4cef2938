package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gdhealth/internal/domain"
)

type employeeRepository struct {
	DB *sql.DB
}

// NewEmployeeRepository returns a domain.EmployeeRepository implemented with Postgres.
func NewEmployeeRepository(db *sql.DB) domain.EmployeeRepository {
	return &employeeRepository{DB: db}
}

const employeeColumns = `id, login_id, name, role, active, password_hash, salt, created_at, updated_at`

func (r *employeeRepository) GetByLoginID(ctx context.Context, loginID string) (*domain.Employee, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE login_id = $1`, loginID)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

func (r *employeeRepository) getOne(ctx context.Context, query string, arg any) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&e.ID, &e.LoginID, &e.Name, &e.Role, &e.Active, &e.PasswordHash, &e.Salt, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) UpdatePassword(ctx context.Context, id int64, hash, salt string, updatedAt time.Time) error {
	return updatePassword(ctx, r.DB, `UPDATE employees SET password_hash = $1, salt = $2, updated_at = $3 WHERE id = $4`, id, hash, salt, updatedAt)
}

type customerRepository struct {
	DB *sql.DB
}

// NewCustomerRepository returns a domain.CustomerRepository implemented with Postgres.
func NewCustomerRepository(db *sql.DB) domain.CustomerRepository {
	return &customerRepository{DB: db}
}

const customerColumns = `id, login_id, name, email, password_hash, salt, created_at, updated_at`

func (r *customerRepository) GetByLoginID(ctx context.Context, loginID string) (*domain.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE login_id = $1`, loginID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

func (r *customerRepository) getOne(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&c.ID, &c.LoginID, &c.Name, &c.Email, &c.PasswordHash, &c.Salt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) UpdatePassword(ctx context.Context, id int64, hash, salt string, updatedAt time.Time) error {
	return updatePassword(ctx, r.DB, `UPDATE customers SET password_hash = $1, salt = $2, updated_at = $3 WHERE id = $4`, id, hash, salt, updatedAt)
}

func updatePassword(ctx context.Context, db *sql.DB, query string, id int64, hash, salt string, updatedAt time.Time) error {
	result, err := db.ExecContext(ctx, query, hash, salt, updatedAt, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
