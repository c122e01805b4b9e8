// internal/pkg/email/service.go

// Package email is a stubbed sender: messages are logged, never delivered.
package email

import (
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
)

// Service logs outgoing mail instead of sending it
type Service struct {
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new email service
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		logger: logger,
	}
}

// Send records an outgoing message
func (s *Service) Send(to, subject, message string) error {
	s.logger.WithFields(logrus.Fields{
		"from":    s.config.Email.FromEmail,
		"to":      to,
		"subject": subject,
	}).Info("Email queued (stub, not delivered)")
	return nil
}

// SendOrderConfirmation notifies a customer that their order was placed
func (s *Service) SendOrderConfirmation(to, orderID string) error {
	return s.Send(to, "Your order has been placed",
		"Thank you for your purchase! Your order reference is "+orderID+".")
}
