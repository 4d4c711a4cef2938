package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gdhealth/internal/domain"
)

type equipmentService struct {
	repo           domain.EquipmentRepository
	pager          *domain.Pager
	contextTimeout time.Duration
	now            func() time.Time
}

// NewEquipmentService returns the head-office equipment service. Listings are
// paged with pager.
func NewEquipmentService(repo domain.EquipmentRepository, pager *domain.Pager, timeout time.Duration) domain.EquipmentService {
	return &equipmentService{
		repo:           repo,
		pager:          pager,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *equipmentService) ListPage(ctx context.Context, page int) (*domain.EquipmentPage, error) {
	return s.page(ctx, domain.EquipmentFilter{}, page)
}

func (s *equipmentService) SearchPage(ctx context.Context, filter domain.EquipmentFilter, page int) (*domain.EquipmentPage, error) {
	filter.Type = strings.ToLower(strings.TrimSpace(filter.Type))
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	return s.page(ctx, filter, page)
}

func (s *equipmentService) page(ctx context.Context, filter domain.EquipmentFilter, page int) (*domain.EquipmentPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count equipment: %w", err)
	}
	p := s.pager.Compute(page, total)

	items, err := s.repo.List(ctx, filter, p.BeginRow, p.RowsPerPage)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	if items == nil {
		items = []*domain.Equipment{}
	}
	return &domain.EquipmentPage{Items: items, Pagination: p, Total: total}, nil
}

func (s *equipmentService) Get(ctx context.Context, id int64) (*domain.Equipment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	eq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment %d: %w", id, err)
	}
	return eq, nil
}

func validateEquipment(name string, price int64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: item price must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

func (s *equipmentService) Add(ctx context.Context, actor *domain.Principal, eq *domain.Equipment) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireRole(actor, domain.RoleHeadOffice); err != nil {
		return err
	}
	if err := validateEquipment(eq.ItemName, eq.ItemPrice); err != nil {
		return err
	}

	now := s.now()
	eq.ItemName = strings.TrimSpace(eq.ItemName)
	eq.EmployeeID = actor.ID
	eq.Active = true
	eq.CreatedAt = now
	eq.UpdatedAt = now
	if err := s.repo.Create(ctx, eq); err != nil {
		return fmt.Errorf("create equipment: %w", err)
	}
	return nil
}

func (s *equipmentService) Update(ctx context.Context, actor *domain.Principal, id int64, in domain.EquipmentUpdate) (*domain.Equipment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireRole(actor, domain.RoleHeadOffice); err != nil {
		return nil, err
	}
	if err := validateEquipment(in.ItemName, in.ItemPrice); err != nil {
		return nil, err
	}

	eq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment %d: %w", id, err)
	}
	eq.ItemName = strings.TrimSpace(in.ItemName)
	eq.ItemPrice = in.ItemPrice
	eq.EmployeeID = actor.ID
	eq.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, eq); err != nil {
		return nil, fmt.Errorf("update equipment %d: %w", id, err)
	}
	return eq, nil
}

func (s *equipmentService) Deactivate(ctx context.Context, actor *domain.Principal, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireRole(actor, domain.RoleHeadOffice); err != nil {
		return err
	}
	if err := s.repo.SetActive(ctx, id, actor.ID, false, s.now()); err != nil {
		return fmt.Errorf("deactivate equipment %d: %w", id, err)
	}
	return nil
}
