package services

import (
	"fmt"

	"gdhealth/internal/domain"
)

func requireRole(actor *domain.Principal, role string) error {
	if !actor.HasRole(role) {
		return fmt.Errorf("%w: role %s required", domain.ErrForbidden, role)
	}
	return nil
}
