// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Redefinir sua senha - Business Manager"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// QueueChargeReminderEmail queues a billing reminder for a client charge.
func (s *Service) QueueChargeReminderEmail(ctx context.Context, input adapter.QueueChargeReminderInput) error {
	subject := fmt.Sprintf("Lembrete de pagamento - %s", input.ProductName)

	templateData := map[string]interface{}{
		"client_name":  input.ClientName,
		"product_name": input.ProductName,
		"charge_label": input.ChargeLabel,
		"amount":       input.Amount,
		"due_date":     input.DueDate,
		"message":      input.Message,
	}

	job := entity.NewEmailJob(
		entity.TemplateChargeReminder,
		input.ClientEmail,
		input.ClientName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue charge reminder email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
