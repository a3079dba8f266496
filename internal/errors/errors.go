package errors

import (
	stderrors "errors"
	"fmt"
)

// ScanError is the standardized error shape produced by the scan
// pipeline. It mirrors the code+message+details struct the rest of the
// corpus uses for its API errors, minus the HTTP status (there is no
// HTTP surface here) plus an optional offset so callers can tell which
// probe produced a localized failure.
type ScanError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Offset  *int      `json:"offset_ms,omitempty"`
	Details string    `json:"details,omitempty"`
	Err     error     `json:"-"`
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.Offset != nil {
		return fmt.Sprintf("%s: %s (offset: %dms)", e.Code, e.Message, *e.Offset)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// WithDetails adds additional details to an error.
func (e *ScanError) WithDetails(details string) *ScanError {
	e.Details = details
	return e
}

// InvalidInput creates an INVALID_INPUT error. Fatal.
func InvalidInput(message string) *ScanError {
	return &ScanError{Code: ErrInvalidInput, Message: message}
}

// Extraction creates an EXTRACTION_ERROR for a single probe offset.
// Localized: the scan continues past it.
func Extraction(offsetMs int, cause error) *ScanError {
	return &ScanError{
		Code:    ErrExtractionError,
		Message: "fingerprint extraction failed",
		Offset:  &offsetMs,
		Err:     cause,
	}
}

// Comparison creates a COMPARISON_ERROR for a single probe offset.
// Localized: the scan continues past it.
func Comparison(offsetMs int, cause error) *ScanError {
	return &ScanError{
		Code:    ErrComparisonError,
		Message: "fingerprint comparison failed",
		Offset:  &offsetMs,
		Err:     cause,
	}
}

// ScratchIO creates a SCRATCH_IO_ERROR. Fatal.
func ScratchIO(message string, cause error) *ScanError {
	return &ScanError{Code: ErrScratchIOError, Message: message, Err: cause}
}

// Internal creates an INTERNAL_ERROR for invariant violations.
func Internal(message string) *ScanError {
	return &ScanError{Code: ErrInternalError, Message: message}
}

// IsFatal reports whether err (if it is, or wraps, a *ScanError) must
// abort the scan with no partial result.
func IsFatal(err error) bool {
	var scanErr *ScanError
	if !stderrors.As(err, &scanErr) {
		return false
	}
	return scanErr.Code.Fatal()
}
