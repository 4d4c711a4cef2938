package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gdhealth/internal/domain"
)

type employeeImageRepository struct {
	DB *sql.DB
}

// NewEmployeeImageRepository returns a domain.EmployeeImageRepository implemented with Postgres.
func NewEmployeeImageRepository(db *sql.DB) domain.EmployeeImageRepository {
	return &employeeImageRepository{DB: db}
}

func (r *employeeImageRepository) GetByEmployeeID(ctx context.Context, employeeID int64) (*domain.EmployeeImage, error) {
	query := `
		SELECT id, employee_id, origin_name, filename, size, content_type, created_at, updated_at
		FROM employee_images
		WHERE employee_id = $1
	`
	img := &domain.EmployeeImage{}
	err := r.DB.QueryRowContext(ctx, query, employeeID).
		Scan(&img.ID, &img.EmployeeID, &img.OriginName, &img.Filename, &img.Size, &img.ContentType, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return img, nil
}

// Upsert inserts the image or replaces the employee's existing one. CreatedAt is
// kept from the first insert.
func (r *employeeImageRepository) Upsert(ctx context.Context, img *domain.EmployeeImage) error {
	query := `
		INSERT INTO employee_images (employee_id, origin_name, filename, size, content_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id) DO UPDATE
		SET origin_name = EXCLUDED.origin_name,
			filename = EXCLUDED.filename,
			size = EXCLUDED.size,
			content_type = EXCLUDED.content_type,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query, img.EmployeeID, img.OriginName, img.Filename, img.Size, img.ContentType, img.CreatedAt, img.UpdatedAt).
		Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		if isPQCode(err, pqForeignKeyViolation) {
			return fmt.Errorf("employee %d: %w", img.EmployeeID, domain.ErrNotFound)
		}
		return err
	}
	return nil
}
