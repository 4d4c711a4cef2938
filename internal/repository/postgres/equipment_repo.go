package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gdhealth/internal/domain"
)

type equipmentRepository struct {
	DB *sql.DB
}

// NewEquipmentRepository returns a domain.EquipmentRepository implemented with Postgres.
func NewEquipmentRepository(db *sql.DB) domain.EquipmentRepository {
	return &equipmentRepository{DB: db}
}

const equipmentColumns = `id, employee_id, item_name, item_price, active, created_at, updated_at`

// equipmentWhere builds the WHERE clause for filter. Placeholders start at $1.
func equipmentWhere(filter domain.EquipmentFilter) (string, []any, error) {
	switch filter.Type {
	case "":
		return "", nil, nil
	case domain.EquipmentSearchName:
		return ` WHERE item_name ILIKE $1 ESCAPE '\'`, []any{"%" + escapeLike(filter.Keyword) + "%"}, nil
	case domain.EquipmentSearchActive:
		switch strings.ToUpper(filter.Keyword) {
		case "Y":
			return ` WHERE active = $1`, []any{true}, nil
		case "N":
			return ` WHERE active = $1`, []any{false}, nil
		}
		return "", nil, fmt.Errorf("%w: active keyword must be Y or N", domain.ErrInvalidInput)
	}
	return "", nil, fmt.Errorf("%w: unknown search type %q", domain.ErrInvalidInput, filter.Type)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *equipmentRepository) Count(ctx context.Context, filter domain.EquipmentFilter) (int, error) {
	where, args, err := equipmentWhere(filter)
	if err != nil {
		return 0, err
	}
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM sports_equipment`+where, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *equipmentRepository) List(ctx context.Context, filter domain.EquipmentFilter, offset, limit int) ([]*domain.Equipment, error) {
	where, args, err := equipmentWhere(filter)
	if err != nil {
		return nil, err
	}
	n := len(args)
	query := fmt.Sprintf(`SELECT %s FROM sports_equipment%s ORDER BY id DESC LIMIT $%d OFFSET $%d`, equipmentColumns, where, n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*domain.Equipment{}
	for rows.Next() {
		eq := &domain.Equipment{}
		if err := rows.Scan(&eq.ID, &eq.EmployeeID, &eq.ItemName, &eq.ItemPrice, &eq.Active, &eq.CreatedAt, &eq.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, eq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	err := r.DB.QueryRowContext(ctx, `SELECT `+equipmentColumns+` FROM sports_equipment WHERE id = $1`, id).
		Scan(&eq.ID, &eq.EmployeeID, &eq.ItemName, &eq.ItemPrice, &eq.Active, &eq.CreatedAt, &eq.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	query := `
		INSERT INTO sports_equipment (employee_id, item_name, item_price, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, eq.EmployeeID, eq.ItemName, eq.ItemPrice, eq.Active, eq.CreatedAt, eq.UpdatedAt).
		Scan(&eq.ID)
	if err != nil {
		if isPQCode(err, pqUniqueViolation) {
			return fmt.Errorf("%w: equipment %q already exists", domain.ErrConflict, eq.ItemName)
		}
		return err
	}
	return nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	query := `
		UPDATE sports_equipment
		SET item_name = $1, item_price = $2, employee_id = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := r.DB.ExecContext(ctx, query, eq.ItemName, eq.ItemPrice, eq.EmployeeID, eq.UpdatedAt, eq.ID)
	if err != nil {
		if isPQCode(err, pqUniqueViolation) {
			return fmt.Errorf("%w: equipment %q already exists", domain.ErrConflict, eq.ItemName)
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) SetActive(ctx context.Context, id, employeeID int64, active bool, updatedAt time.Time) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE sports_equipment SET active = $1, employee_id = $2, updated_at = $3 WHERE id = $4`,
		active, employeeID, updatedAt, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
