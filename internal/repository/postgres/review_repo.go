package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gdhealth/internal/domain"
)

type reviewRepository struct {
	DB *sql.DB
}

// NewReviewRepository returns a domain.ReviewRepository implemented with Postgres.
func NewReviewRepository(db *sql.DB) domain.ReviewRepository {
	return &reviewRepository{DB: db}
}

const reviewSelect = `
	SELECT rv.id, rv.reservation_id, rv.customer_id, c.login_id, p.name, rv.title, rv.content, rv.created_at, rv.updated_at
	FROM reviews rv
	JOIN customers c ON c.id = rv.customer_id
	JOIN program_reservations pr ON pr.id = rv.reservation_id
	JOIN program_dates pd ON pd.id = pr.program_date_id
	JOIN programs p ON p.id = pd.program_id
`

func scanReview(row interface{ Scan(...any) error }) (*domain.Review, error) {
	rv := &domain.Review{}
	err := row.Scan(&rv.ID, &rv.ReservationID, &rv.CustomerID, &rv.CustomerLoginID, &rv.ProgramName, &rv.Title, &rv.Content, &rv.CreatedAt, &rv.UpdatedAt)
	return rv, err
}

func (r *reviewRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *reviewRepository) List(ctx context.Context, offset, limit int) ([]*domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, reviewSelect+` ORDER BY rv.id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	rv, err := scanReview(r.DB.QueryRowContext(ctx, reviewSelect+` WHERE rv.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (r *reviewRepository) ExistsForReservation(ctx context.Context, reservationID int64) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM reviews WHERE reservation_id = $1)`, reservationID).Scan(&exists)
	return exists, err
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `
		INSERT INTO reviews (reservation_id, customer_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, rv.ReservationID, rv.CustomerID, rv.Title, rv.Content, rv.CreatedAt, rv.UpdatedAt).Scan(&rv.ID)
	if err != nil {
		if isPQCode(err, pqUniqueViolation) {
			return fmt.Errorf("%w: reservation %d already reviewed", domain.ErrConflict, rv.ReservationID)
		}
		return err
	}
	return nil
}

func (r *reviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE reviews SET title = $1, content = $2, updated_at = $3 WHERE id = $4`,
		rv.Title, rv.Content, rv.UpdatedAt, rv.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
