package notification

import "errors"

// Sentinel errors for the pipeline stages. Handlers translate these into the
// caller-visible HTTP contract; collaborator detail stays wrapped behind them.
var (
	// ErrMissingFailureReason carries the fixed caller-visible message for the
	// conditional validation rule on FAILED notifications.
	ErrMissingFailureReason = errors.New("Failure reason is required when payment status is FAILED")

	// ErrDuplicateTransaction signals that the transaction id is already
	// recorded, whether detected by the pre-check or the unique constraint.
	ErrDuplicateTransaction = errors.New("Transaction ID already exists")

	// ErrPersistence wraps store failures on the write path.
	ErrPersistence = errors.New("failed to persist payment record")

	// ErrDispatch wraps mail collaborator failures. By the time it surfaces
	// the record has already been committed and is retained.
	ErrDispatch = errors.New("failed to send email notification")
)

// FieldError reports one invalid request field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError accumulates all structural field failures of a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string { return "Invalid input data" }
