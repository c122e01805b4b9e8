package order

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	orders    map[string]*Order
	createErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{orders: make(map[string]*Order)}
}

func (f *fakeRepository) Create(ctx context.Context, o *Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orders[o.ID] = o
	return nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (f *fakeRepository) FindByUserOrEmail(ctx context.Context, userID, email string) ([]Order, error) {
	var out []Order
	for _, o := range f.orders {
		if (userID != "" && o.UserID == userID) || (email != "" && o.UserEmail == email) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestServiceCreateAssignsDefaults(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, testLogger())

	o, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, StatusProcessing, o.Status)
	assert.Equal(t, PaymentStatusPending, o.PaymentStatus)
	assert.False(t, o.CreatedAt.IsZero())
	assert.Contains(t, repo.orders, o.ID)
}

func TestServiceCreateMarksNonCodAsPaid(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, testLogger())

	sub := validSubmission()
	sub.PaymentMethod = "gcash"
	sub.Gcash = &GcashDetails{Number: "09171234567", PIN: "1234"}

	o, err := svc.Create(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPaid, o.PaymentStatus)
}

func TestServiceCreateRejectsInvalidSubmission(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, testLogger())

	sub := validSubmission()
	sub.UserEmail = "nope"

	_, err := svc.Create(context.Background(), sub)
	assertFailureCode(t, err, CodeInvalidEmail)
	assert.Empty(t, repo.orders)
}

func TestServiceCreateHidesStorageFailure(t *testing.T) {
	repo := newFakeRepository()
	repo.createErr = errors.New("connection refused")
	svc := NewService(repo, testLogger())

	_, err := svc.Create(context.Background(), validSubmission())
	require.ErrorIs(t, err, ErrPersistence)

	// The raw driver error never reaches the caller.
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestServiceGetByID(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, testLogger())

	created, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByID(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByID(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceListByUserOrEmail(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, testLogger())

	_, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)

	orders, err := svc.ListByUserOrEmail(context.Background(), "user-1", "")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = svc.ListByUserOrEmail(context.Background(), "", "ana@example.com")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	// Both given is an OR match: the order surfaces even when only one of
	// the two fields agrees with the stored record.
	orders, err = svc.ListByUserOrEmail(context.Background(), "user-1", "old@example.com")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = svc.ListByUserOrEmail(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrMissingQuery)
}
