package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gdhealth/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *zap.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *zap.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

func (s *emailService) SendReservationConfirmed(ctx context.Context, data *domain.ReservationEmailData) error {
	return s.send(ctx, "reservation_confirmed", data)
}

func (s *emailService) SendReservationCancelled(ctx context.Context, data *domain.ReservationEmailData) error {
	return s.send(ctx, "reservation_cancelled", data)
}

func (s *emailService) send(ctx context.Context, templateName string, data *domain.ReservationEmailData) error {
	if data == nil {
		return errors.New("reservation email data is nil")
	}
	if data.Email == "" {
		return fmt.Errorf("%w: recipient email is empty", domain.ErrInvalidInput)
	}
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send %s email: %w", templateName, err)
	}
	s.logger.Info("email sent",
		zap.String("template", templateName),
		zap.Int64("reservation_id", data.ReservationID))
	return nil
}
