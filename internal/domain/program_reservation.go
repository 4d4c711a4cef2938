package domain

import (
	"context"
	"time"
)

// ProgramDate is one scheduled session of a gym program.
// swagger:model ProgramDate
type ProgramDate struct {
	ID            int64     `json:"id"`
	ProgramID     int64     `json:"program_id"`
	ProgramName   string    `json:"program_name"`
	BranchName    string    `json:"branch_name"`
	Date          time.Time `json:"date"`
	MaxCustomers  int       `json:"max_customers"`
	ReservedCount int       `json:"reserved_count"`
}

// Remaining returns the number of free places.
func (p *ProgramDate) Remaining() int {
	return max(p.MaxCustomers-p.ReservedCount, 0)
}

// ProgramDateDetail is a program date as seen by one customer.
// swagger:model ProgramDateDetail
type ProgramDateDetail struct {
	ProgramDate
	ReservationID int64 `json:"reservation_id,omitempty"`
	Reserved      bool  `json:"reserved"`
}

// Reservation is a customer's booking of a program date.
// swagger:model Reservation
type Reservation struct {
	ID            int64     `json:"id"`
	ProgramDateID int64     `json:"program_date_id"`
	CustomerID    int64     `json:"customer_id"`
	ProgramName   string    `json:"program_name,omitempty"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
}

// Payment is a membership payment; reservations need an active one.
// swagger:model Payment
type Payment struct {
	ID             int64     `json:"id"`
	CustomerID     int64     `json:"customer_id"`
	MembershipName string    `json:"membership_name"`
	Amount         int64     `json:"amount"`
	PaidAt         time.Time `json:"paid_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// ActiveAt reports whether the payment covers t.
func (p *Payment) ActiveAt(t time.Time) bool {
	return p != nil && !t.Before(p.PaidAt) && t.Before(p.ExpiresAt)
}

// ProgramReservationRepository defines storage for program dates and reservations.
type ProgramReservationRepository interface {
	ListProgramDatesByMonth(ctx context.Context, year int, month time.Month) ([]*ProgramDate, error)
	ListProgramDatesFrom(ctx context.Context, from time.Time) ([]*ProgramDate, error)
	ListCustomerProgramDates(ctx context.Context, customerID int64, year int, month time.Month) ([]*ProgramDate, error)
	GetProgramDate(ctx context.Context, programDateID int64) (*ProgramDate, error)
	GetReservationFor(ctx context.Context, programDateID, customerID int64) (*Reservation, error)
	GetReservation(ctx context.Context, reservationID int64) (*Reservation, error)
	LatestPayment(ctx context.Context, customerID int64) (*Payment, error)
	CreateReservation(ctx context.Context, r *Reservation) error
	ListReservationsByCustomer(ctx context.Context, customerID int64) ([]*Reservation, error)
	DeleteReservation(ctx context.Context, reservationID, customerID int64) error
}

// ProgramReservationService defines customer program reservation operations.
type ProgramReservationService interface {
	ListProgramsByMonth(ctx context.Context, year int, month time.Month) ([]*ProgramDate, error)
	ListCalendar(ctx context.Context) ([]*ProgramDate, error)
	ListMyCalendar(ctx context.Context, customerID int64, year int, month time.Month) ([]*ProgramDate, error)
	GetProgramDate(ctx context.Context, programDateID, customerID int64) (*ProgramDateDetail, error)
	CustomerLoginID(ctx context.Context, customerID int64) (string, error)
	CustomerPayment(ctx context.Context, customerID int64) (*Payment, error)
	Reserve(ctx context.Context, actor *Principal, programDateID int64) (*Reservation, error)
	ListMine(ctx context.Context, customerID int64) ([]*Reservation, error)
	Cancel(ctx context.Context, actor *Principal, reservationID int64) error
}
