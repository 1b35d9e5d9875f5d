package utils

import "errors"

var (
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrInsufficientCredits  = errors.New("insufficient credits")
	ErrMissingConfiguration = errors.New("missing configuration")
	ErrInvalidSubmission    = errors.New("invalid submission type")
	ErrMachineNotFound      = errors.New("machine not found")
	ErrReportNotFound       = errors.New("report not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrMalformedResponse    = errors.New("malformed upstream response")
	ErrUpstreamFailure      = errors.New("analysis failed")
	ErrSignatureMismatch    = errors.New("invalid signature")
	ErrDatabaseError        = errors.New("database error")
)

// RejectionError is not a system failure: the model classified the input as
// non-technical and the pipeline must surface its reason without persisting
// anything or touching credits.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}
