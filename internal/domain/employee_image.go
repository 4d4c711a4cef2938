package domain

import (
	"context"
	"time"
)

// MaxEmployeeImageSize is the largest accepted profile image, in bytes.
const MaxEmployeeImageSize = 10 << 20

// EmployeeImage is the metadata of an employee's profile image.
// swagger:model EmployeeImage
type EmployeeImage struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employee_id"`
	OriginName  string    `json:"origin_name"`
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmployeeImageRepository stores one image record per employee.
type EmployeeImageRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID int64) (*EmployeeImage, error)
	Upsert(ctx context.Context, img *EmployeeImage) error
}

// EmployeeImageService manages employee profile image metadata.
type EmployeeImageService interface {
	Get(ctx context.Context, employeeID int64) (*EmployeeImage, error)
	Set(ctx context.Context, actor *Principal, img *EmployeeImage) error
}
