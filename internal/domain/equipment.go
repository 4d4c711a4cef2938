package domain

import (
	"context"
	"time"
)

// Equipment search types.
const (
	EquipmentSearchName   = "name"
	EquipmentSearchActive = "active"
)

// Equipment is a sports equipment item managed by the head office.
// swagger:model Equipment
type Equipment struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	ItemName   string    `json:"item_name"`
	ItemPrice  int64     `json:"item_price"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EquipmentFilter narrows equipment listings. The zero value matches every row.
type EquipmentFilter struct {
	Type    string `json:"type"`
	Keyword string `json:"keyword"`
}

// EquipmentUpdate holds the editable fields of an equipment item.
type EquipmentUpdate struct {
	ItemName  string
	ItemPrice int64
}

// EquipmentPage is one page of equipment with its navigation.
// swagger:model EquipmentPage
type EquipmentPage struct {
	Items      []*Equipment     `json:"items"`
	Pagination PaginationResult `json:"pagination"`
	Total      int              `json:"total"`
}

// EquipmentRepository defines storage for equipment.
type EquipmentRepository interface {
	Count(ctx context.Context, filter EquipmentFilter) (int, error)
	List(ctx context.Context, filter EquipmentFilter, offset, limit int) ([]*Equipment, error)
	GetByID(ctx context.Context, id int64) (*Equipment, error)
	Create(ctx context.Context, eq *Equipment) error
	Update(ctx context.Context, eq *Equipment) error
	SetActive(ctx context.Context, id, employeeID int64, active bool, updatedAt time.Time) error
}

// EquipmentService defines head-office equipment administration.
type EquipmentService interface {
	ListPage(ctx context.Context, page int) (*EquipmentPage, error)
	SearchPage(ctx context.Context, filter EquipmentFilter, page int) (*EquipmentPage, error)
	Get(ctx context.Context, id int64) (*Equipment, error)
	Add(ctx context.Context, actor *Principal, eq *Equipment) error
	Update(ctx context.Context, actor *Principal, id int64, in EquipmentUpdate) (*Equipment, error)
	Deactivate(ctx context.Context, actor *Principal, id int64) error
}
