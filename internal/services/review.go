package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gdhealth/internal/domain"
)

const (
	maxReviewTitleLen   = 100
	maxReviewContentLen = 4000
)

type reviewService struct {
	repo            domain.ReviewRepository
	reservationRepo domain.ProgramReservationRepository
	pager           *domain.Pager
	contextTimeout  time.Duration
	now             func() time.Time
}

// NewReviewService returns the review service. Review listings are paged with pager.
func NewReviewService(repo domain.ReviewRepository, reservationRepo domain.ProgramReservationRepository, pager *domain.Pager, timeout time.Duration) domain.ReviewService {
	return &reviewService{
		repo:            repo,
		reservationRepo: reservationRepo,
		pager:           pager,
		contextTimeout:  timeout,
		now:             time.Now,
	}
}

func (s *reviewService) ListPage(ctx context.Context, page int) (*domain.ReviewPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}
	p := s.pager.Compute(page, total)

	items, err := s.repo.List(ctx, p.BeginRow, p.RowsPerPage)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if items == nil {
		items = []*domain.Review{}
	}
	return &domain.ReviewPage{Items: items, Pagination: p, Total: total}, nil
}

func (s *reviewService) Get(ctx context.Context, id int64) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}
	return rv, nil
}

func validateReviewText(title, content string) error {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	switch {
	case title == "":
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	case len([]rune(title)) > maxReviewTitleLen:
		return fmt.Errorf("%w: title is longer than %d characters", domain.ErrInvalidInput, maxReviewTitleLen)
	case content == "":
		return fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	case len([]rune(content)) > maxReviewContentLen:
		return fmt.Errorf("%w: content is longer than %d characters", domain.ErrInvalidInput, maxReviewContentLen)
	}
	return nil
}

func (s *reviewService) Add(ctx context.Context, actor *domain.Principal, review *domain.Review) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireRole(actor, domain.RoleCustomer); err != nil {
		return err
	}
	if err := validateReviewText(review.Title, review.Content); err != nil {
		return err
	}

	res, err := s.reservationRepo.GetReservation(ctx, review.ReservationID)
	if err != nil {
		return fmt.Errorf("get reservation %d: %w", review.ReservationID, err)
	}
	if res.CustomerID != actor.ID {
		return fmt.Errorf("%w: reservation %d belongs to another customer", domain.ErrForbidden, res.ID)
	}
	exists, err := s.repo.ExistsForReservation(ctx, res.ID)
	if err != nil {
		return fmt.Errorf("check review for reservation %d: %w", res.ID, err)
	}
	if exists {
		return fmt.Errorf("%w: reservation %d already reviewed", domain.ErrConflict, res.ID)
	}

	now := s.now()
	review.CustomerID = actor.ID
	review.ProgramName = res.ProgramName
	review.Title = strings.TrimSpace(review.Title)
	review.Content = strings.TrimSpace(review.Content)
	review.CreatedAt = now
	review.UpdatedAt = now
	if err := s.repo.Create(ctx, review); err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

// owned loads review id and checks that actor wrote it.
func (s *reviewService) owned(ctx context.Context, actor *domain.Principal, id int64) (*domain.Review, error) {
	if err := requireRole(actor, domain.RoleCustomer); err != nil {
		return nil, err
	}
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}
	if rv.CustomerID != actor.ID {
		return nil, fmt.Errorf("%w: review %d belongs to another customer", domain.ErrForbidden, id)
	}
	return rv, nil
}

func (s *reviewService) Update(ctx context.Context, actor *domain.Principal, id int64, title, content string) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateReviewText(title, content); err != nil {
		return nil, err
	}
	rv, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	rv.Title = strings.TrimSpace(title)
	rv.Content = strings.TrimSpace(content)
	rv.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, rv); err != nil {
		return nil, fmt.Errorf("update review %d: %w", id, err)
	}
	return rv, nil
}

func (s *reviewService) Delete(ctx context.Context, actor *domain.Principal, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete review %d: %w", id, err)
	}
	return nil
}
