package domain

import (
	"context"
	"time"
)

// Review is a customer's review of a program they reserved.
// swagger:model Review
type Review struct {
	ID              int64     `json:"id"`
	ReservationID   int64     `json:"reservation_id"`
	CustomerID      int64     `json:"customer_id"`
	CustomerLoginID string    `json:"customer_login_id,omitempty"`
	ProgramName     string    `json:"program_name,omitempty"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ReviewPage is one page of reviews with its navigation.
// swagger:model ReviewPage
type ReviewPage struct {
	Items      []*Review        `json:"items"`
	Pagination PaginationResult `json:"pagination"`
	Total      int              `json:"total"`
}

// ReviewRepository defines storage for reviews.
type ReviewRepository interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, offset, limit int) ([]*Review, error)
	GetByID(ctx context.Context, id int64) (*Review, error)
	ExistsForReservation(ctx context.Context, reservationID int64) (bool, error)
	Create(ctx context.Context, review *Review) error
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id int64) error
}

// ReviewService defines review operations.
type ReviewService interface {
	ListPage(ctx context.Context, page int) (*ReviewPage, error)
	Get(ctx context.Context, id int64) (*Review, error)
	Add(ctx context.Context, actor *Principal, review *Review) error
	Update(ctx context.Context, actor *Principal, id int64, title, content string) (*Review, error)
	Delete(ctx context.Context, actor *Principal, id int64) error
}
