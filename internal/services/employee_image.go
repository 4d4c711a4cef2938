package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gdhealth/internal/domain"
)

const imageNameRandomBytes = 8

type employeeImageService struct {
	repo           domain.EmployeeImageRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewEmployeeImageService returns the service managing employee profile image metadata.
func NewEmployeeImageService(repo domain.EmployeeImageRepository, timeout time.Duration) domain.EmployeeImageService {
	return &employeeImageService{repo: repo, contextTimeout: timeout, now: time.Now}
}

func (s *employeeImageService) Get(ctx context.Context, employeeID int64) (*domain.EmployeeImage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	img, err := s.repo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("get image of employee %d: %w", employeeID, err)
	}
	return img, nil
}

func (s *employeeImageService) Set(ctx context.Context, actor *domain.Principal, img *domain.EmployeeImage) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireRole(actor, domain.RoleHeadOffice); err != nil {
		return err
	}
	if err := validateEmployeeImage(img); err != nil {
		return err
	}

	name, err := generateImageFilename(img.EmployeeID, img.OriginName)
	if err != nil {
		return fmt.Errorf("generate image filename: %w", err)
	}
	now := s.now()
	img.OriginName = filepath.Base(img.OriginName)
	img.Filename = name
	img.ContentType = strings.ToLower(strings.TrimSpace(img.ContentType))
	img.CreatedAt = now
	img.UpdatedAt = now
	if err := s.repo.Upsert(ctx, img); err != nil {
		return fmt.Errorf("save image of employee %d: %w", img.EmployeeID, err)
	}
	return nil
}

func validateEmployeeImage(img *domain.EmployeeImage) error {
	if img == nil || img.EmployeeID <= 0 {
		return fmt.Errorf("%w: employee is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(img.OriginName) == "" {
		return fmt.Errorf("%w: original file name is required", domain.ErrInvalidInput)
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(img.ContentType)), "image/") {
		return fmt.Errorf("%w: content type %q is not an image", domain.ErrInvalidInput, img.ContentType)
	}
	if img.Size <= 0 || img.Size > domain.MaxEmployeeImageSize {
		return fmt.Errorf("%w: image size must be between 1 and %d bytes", domain.ErrInvalidInput, domain.MaxEmployeeImageSize)
	}
	return nil
}

// generateImageFilename returns "<employeeID>_<random hex><ext>".
func generateImageFilename(employeeID int64, originName string) (string, error) {
	b := make([]byte, imageNameRandomBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filepath.Base(originName)))
	return fmt.Sprintf("%d_%s%s", employeeID, hex.EncodeToString(b), ext), nil
}
