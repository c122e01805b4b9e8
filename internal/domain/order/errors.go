// internal/domain/order/errors.go
package order

import "errors"

// FailureCode identifies why a submission or lookup was rejected
type FailureCode string

const (
	CodeMissingFields             FailureCode = "MissingFields"
	CodeInvalidEmail              FailureCode = "InvalidEmail"
	CodeInvalidItems              FailureCode = "InvalidItems"
	CodeInvalidPaymentMethod      FailureCode = "InvalidPaymentMethod"
	CodeInvalidDeliveryMethod     FailureCode = "InvalidDeliveryMethod"
	CodeIncompleteShippingAddress FailureCode = "IncompleteShippingAddress"
	CodeIncompletePaymentDetails  FailureCode = "IncompletePaymentDetails"
)

// ValidationError is returned by Validate with a stable code and a message
// suitable for showing to the user.
type ValidationError struct {
	Code    FailureCode
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(code FailureCode, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// AsValidationError unwraps err into a *ValidationError if it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

var (
	// ErrNotFound is returned when an order id has no matching record
	ErrNotFound = errors.New("order not found")

	// ErrMissingQuery is returned when neither userId nor email was given
	ErrMissingQuery = errors.New("userId or email query parameter is required")

	// ErrPersistence wraps storage failures; the underlying cause is logged,
	// not surfaced to callers.
	ErrPersistence = errors.New("could not persist order")
)
