package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gdhealth/internal/domain"
)

type programReservationService struct {
	repo           domain.ProgramReservationRepository
	customerRepo   domain.CustomerRepository
	emailService   domain.EmailService
	logger         *zap.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewProgramReservationService returns the customer program reservation service.
func NewProgramReservationService(
	repo domain.ProgramReservationRepository,
	customerRepo domain.CustomerRepository,
	emailService domain.EmailService,
	logger *zap.Logger,
	timeout time.Duration,
) domain.ProgramReservationService {
	return &programReservationService{
		repo:           repo,
		customerRepo:   customerRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func validateMonth(year int, month time.Month) error {
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d out of range", domain.ErrInvalidInput, year)
	}
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d out of range", domain.ErrInvalidInput, month)
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (s *programReservationService) ListProgramsByMonth(ctx context.Context, year int, month time.Month) ([]*domain.ProgramDate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	dates, err := s.repo.ListProgramDatesByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("list program dates: %w", err)
	}
	return dates, nil
}

func (s *programReservationService) ListCalendar(ctx context.Context) ([]*domain.ProgramDate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	dates, err := s.repo.ListProgramDatesFrom(ctx, startOfDay(s.now()))
	if err != nil {
		return nil, fmt.Errorf("list calendar: %w", err)
	}
	return dates, nil
}

func (s *programReservationService) ListMyCalendar(ctx context.Context, customerID int64, year int, month time.Month) ([]*domain.ProgramDate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	dates, err := s.repo.ListCustomerProgramDates(ctx, customerID, year, month)
	if err != nil {
		return nil, fmt.Errorf("list customer %d calendar: %w", customerID, err)
	}
	return dates, nil
}

func (s *programReservationService) GetProgramDate(ctx context.Context, programDateID, customerID int64) (*domain.ProgramDateDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	pd, err := s.repo.GetProgramDate(ctx, programDateID)
	if err != nil {
		return nil, fmt.Errorf("get program date %d: %w", programDateID, err)
	}
	detail := &domain.ProgramDateDetail{ProgramDate: *pd}

	res, err := s.repo.GetReservationFor(ctx, programDateID, customerID)
	switch {
	case err == nil:
		detail.Reserved = true
		detail.ReservationID = res.ID
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get reservation for program date %d: %w", programDateID, err)
	}
	return detail, nil
}

func (s *programReservationService) CustomerLoginID(ctx context.Context, customerID int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return "", fmt.Errorf("get customer %d: %w", customerID, err)
	}
	return c.LoginID, nil
}

func (s *programReservationService) CustomerPayment(ctx context.Context, customerID int64) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.activePayment(ctx, customerID)
}

func (s *programReservationService) activePayment(ctx context.Context, customerID int64) (*domain.Payment, error) {
	pay, err := s.repo.LatestPayment(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get payment of customer %d: %w", customerID, err)
	}
	if !pay.ActiveAt(s.now()) {
		return nil, fmt.Errorf("customer %d has no active membership: %w", customerID, domain.ErrNotFound)
	}
	return pay, nil
}

func (s *programReservationService) Reserve(ctx context.Context, actor *domain.Principal, programDateID int64) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireRole(actor, domain.RoleCustomer); err != nil {
		return nil, err
	}

	pd, err := s.repo.GetProgramDate(ctx, programDateID)
	if err != nil {
		return nil, fmt.Errorf("get program date %d: %w", programDateID, err)
	}
	now := s.now()
	if pd.Date.Before(startOfDay(now)) {
		return nil, fmt.Errorf("%w: program date %d is in the past", domain.ErrInvalidInput, programDateID)
	}

	if _, err := s.activePayment(ctx, actor.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: an active membership is required", domain.ErrForbidden)
		}
		return nil, err
	}

	if _, err := s.repo.GetReservationFor(ctx, programDateID, actor.ID); err == nil {
		return nil, fmt.Errorf("%w: program date %d already reserved", domain.ErrConflict, programDateID)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get reservation for program date %d: %w", programDateID, err)
	}
	if pd.Remaining() == 0 {
		return nil, fmt.Errorf("%w: program date %d is full", domain.ErrConflict, programDateID)
	}

	res := &domain.Reservation{
		ProgramDateID: programDateID,
		CustomerID:    actor.ID,
		ProgramName:   pd.ProgramName,
		Date:          pd.Date,
		CreatedAt:     now,
	}
	if err := s.repo.CreateReservation(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.notify(ctx, actor.ID, pd, res.ID, s.emailService.SendReservationConfirmed)
	return res, nil
}

func (s *programReservationService) ListMine(ctx context.Context, customerID int64) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, err := s.repo.ListReservationsByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list reservations of customer %d: %w", customerID, err)
	}
	return list, nil
}

func (s *programReservationService) Cancel(ctx context.Context, actor *domain.Principal, reservationID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireRole(actor, domain.RoleCustomer); err != nil {
		return err
	}

	res, err := s.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return fmt.Errorf("get reservation %d: %w", reservationID, err)
	}
	if res.CustomerID != actor.ID {
		return fmt.Errorf("%w: reservation %d belongs to another customer", domain.ErrForbidden, reservationID)
	}
	if err := s.repo.DeleteReservation(ctx, reservationID, actor.ID); err != nil {
		return fmt.Errorf("delete reservation %d: %w", reservationID, err)
	}

	pd, err := s.repo.GetProgramDate(ctx, res.ProgramDateID)
	if err != nil {
		s.logger.Warn("cancellation email skipped",
			zap.Int64("reservation_id", reservationID), zap.Error(err))
		return nil
	}
	s.notify(ctx, actor.ID, pd, reservationID, s.emailService.SendReservationCancelled)
	return nil
}

// notify emails the customer about a reservation change. Failures are logged only.
func (s *programReservationService) notify(
	ctx context.Context,
	customerID int64,
	pd *domain.ProgramDate,
	reservationID int64,
	send func(context.Context, *domain.ReservationEmailData) error,
) {
	c, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		s.logger.Warn("reservation email skipped",
			zap.Int64("customer_id", customerID), zap.Int64("reservation_id", reservationID), zap.Error(err))
		return
	}
	data := &domain.ReservationEmailData{
		Email:         c.Email,
		CustomerName:  c.Name,
		ProgramName:   pd.ProgramName,
		BranchName:    pd.BranchName,
		Date:          pd.Date,
		ReservationID: reservationID,
	}
	if err := send(ctx, data); err != nil {
		s.logger.Warn("reservation email failed",
			zap.Int64("customer_id", customerID), zap.Int64("reservation_id", reservationID), zap.Error(err))
	}
}
