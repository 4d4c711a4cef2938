package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gdhealth/internal/domain"
)

type programReservationRepository struct {
	DB *sql.DB
}

// NewProgramReservationRepository returns a domain.ProgramReservationRepository implemented with Postgres.
func NewProgramReservationRepository(db *sql.DB) domain.ProgramReservationRepository {
	return &programReservationRepository{DB: db}
}

// programDateSelect yields program dates with their live reservation count.
const programDateSelect = `
	SELECT pd.id, pd.program_id, p.name, b.name, pd.program_date, p.max_customers,
		(SELECT COUNT(*) FROM program_reservations pr WHERE pr.program_date_id = pd.id) AS reserved
	FROM program_dates pd
	JOIN programs p ON p.id = pd.program_id
	JOIN branches b ON b.id = p.branch_id
`

func monthRange(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func scanProgramDate(row interface{ Scan(...any) error }) (*domain.ProgramDate, error) {
	pd := &domain.ProgramDate{}
	err := row.Scan(&pd.ID, &pd.ProgramID, &pd.ProgramName, &pd.BranchName, &pd.Date, &pd.MaxCustomers, &pd.ReservedCount)
	return pd, err
}

func (r *programReservationRepository) queryProgramDates(ctx context.Context, query string, args ...any) ([]*domain.ProgramDate, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := []*domain.ProgramDate{}
	for rows.Next() {
		pd, err := scanProgramDate(rows)
		if err != nil {
			return nil, err
		}
		dates = append(dates, pd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *programReservationRepository) ListProgramDatesByMonth(ctx context.Context, year int, month time.Month) ([]*domain.ProgramDate, error) {
	from, to := monthRange(year, month)
	return r.queryProgramDates(ctx,
		programDateSelect+` WHERE pd.program_date >= $1 AND pd.program_date < $2 ORDER BY pd.program_date, pd.id`,
		from, to)
}

func (r *programReservationRepository) ListProgramDatesFrom(ctx context.Context, from time.Time) ([]*domain.ProgramDate, error) {
	return r.queryProgramDates(ctx,
		programDateSelect+` WHERE pd.program_date >= $1 ORDER BY pd.program_date, pd.id`,
		from)
}

func (r *programReservationRepository) ListCustomerProgramDates(ctx context.Context, customerID int64, year int, month time.Month) ([]*domain.ProgramDate, error) {
	from, to := monthRange(year, month)
	return r.queryProgramDates(ctx,
		programDateSelect+` WHERE pd.program_date >= $1 AND pd.program_date < $2
		AND EXISTS (SELECT 1 FROM program_reservations mine WHERE mine.program_date_id = pd.id AND mine.customer_id = $3)
		ORDER BY pd.program_date, pd.id`,
		from, to, customerID)
}

func (r *programReservationRepository) GetProgramDate(ctx context.Context, programDateID int64) (*domain.ProgramDate, error) {
	pd, err := scanProgramDate(r.DB.QueryRowContext(ctx, programDateSelect+` WHERE pd.id = $1`, programDateID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return pd, nil
}

const reservationSelect = `
	SELECT pr.id, pr.program_date_id, pr.customer_id, p.name, pd.program_date, pr.created_at
	FROM program_reservations pr
	JOIN program_dates pd ON pd.id = pr.program_date_id
	JOIN programs p ON p.id = pd.program_id
`

func scanReservation(row interface{ Scan(...any) error }) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	err := row.Scan(&res.ID, &res.ProgramDateID, &res.CustomerID, &res.ProgramName, &res.Date, &res.CreatedAt)
	return res, err
}

func (r *programReservationRepository) getReservation(ctx context.Context, query string, args ...any) (*domain.Reservation, error) {
	res, err := scanReservation(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *programReservationRepository) GetReservationFor(ctx context.Context, programDateID, customerID int64) (*domain.Reservation, error) {
	return r.getReservation(ctx, reservationSelect+` WHERE pr.program_date_id = $1 AND pr.customer_id = $2`, programDateID, customerID)
}

func (r *programReservationRepository) GetReservation(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	return r.getReservation(ctx, reservationSelect+` WHERE pr.id = $1`, reservationID)
}

func (r *programReservationRepository) LatestPayment(ctx context.Context, customerID int64) (*domain.Payment, error) {
	query := `
		SELECT pay.id, pay.customer_id, m.name, pay.amount, pay.paid_at, pay.expires_at
		FROM payments pay
		JOIN memberships m ON m.id = pay.membership_id
		WHERE pay.customer_id = $1
		ORDER BY pay.expires_at DESC
		LIMIT 1
	`
	pay := &domain.Payment{}
	err := r.DB.QueryRowContext(ctx, query, customerID).
		Scan(&pay.ID, &pay.CustomerID, &pay.MembershipName, &pay.Amount, &pay.PaidAt, &pay.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return pay, nil
}

// CreateReservation inserts the reservation while the program date row is
// locked, so reservations for one date are serialized and capacity holds.
func (r *programReservationRepository) CreateReservation(ctx context.Context, res *domain.Reservation) (err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var maxCustomers int
	err = tx.QueryRowContext(ctx, `
		SELECT p.max_customers
		FROM program_dates pd
		JOIN programs p ON p.id = pd.program_id
		WHERE pd.id = $1
		FOR UPDATE OF pd
	`, res.ProgramDateID).Scan(&maxCustomers)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("program date %d: %w", res.ProgramDateID, domain.ErrNotFound)
		}
		return err
	}

	var reserved int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM program_reservations WHERE program_date_id = $1`,
		res.ProgramDateID).Scan(&reserved)
	if err != nil {
		return err
	}
	if reserved >= maxCustomers {
		return fmt.Errorf("%w: program date %d is full", domain.ErrConflict, res.ProgramDateID)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO program_reservations (program_date_id, customer_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, res.ProgramDateID, res.CustomerID, res.CreatedAt).Scan(&res.ID)
	if err != nil {
		if isPQCode(err, pqUniqueViolation) {
			return fmt.Errorf("%w: already reserved", domain.ErrConflict)
		}
		return err
	}
	return tx.Commit()
}

func (r *programReservationRepository) ListReservationsByCustomer(ctx context.Context, customerID int64) ([]*domain.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx, reservationSelect+` WHERE pr.customer_id = $1 ORDER BY pd.program_date DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*domain.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *programReservationRepository) DeleteReservation(ctx context.Context, reservationID, customerID int64) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM program_reservations WHERE id = $1 AND customer_id = $2`,
		reservationID, customerID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
