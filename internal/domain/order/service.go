// internal/domain/order/service.go
package order

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service handles order placement and lookup
type Service struct {
	repo   Repository
	logger *logrus.Logger
}

// NewService creates a new order service
func NewService(repo Repository, logger *logrus.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create validates a submission and persists the resulting order. It assigns
// the order id, creation timestamp and default statuses: orders start as
// Processing, and payment starts Pending for cod and Paid otherwise (gcash
// and card payments are captured at checkout).
func (s *Service) Create(ctx context.Context, sub *Submission) (*Order, error) {
	o, err := Validate(sub)
	if err != nil {
		return nil, err
	}

	o.ID = uuid.NewString()
	o.Status = StatusProcessing
	o.PaymentStatus = PaymentStatusPending
	if o.PaymentMethod != PaymentCOD {
		o.PaymentStatus = PaymentStatusPaid
	}
	o.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, o); err != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id": o.UserID,
			"error":   err.Error(),
		}).Error("Failed to persist order")
		return nil, ErrPersistence
	}

	return o, nil
}

// GetByID retrieves a single order. Returns ErrNotFound if the id is unknown.
func (s *Service) GetByID(ctx context.Context, id string) (*Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	return s.repo.FindByID(ctx, id)
}

// ListByUserOrEmail retrieves orders for a user id or email, most recent
// first. At least one of the two must be given.
func (s *Service) ListByUserOrEmail(ctx context.Context, userID, email string) ([]Order, error) {
	userID = strings.TrimSpace(userID)
	email = strings.TrimSpace(email)
	if userID == "" && email == "" {
		return nil, ErrMissingQuery
	}
	return s.repo.FindByUserOrEmail(ctx, userID, email)
}
