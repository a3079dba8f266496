package errors

// ErrorCode identifies the kind of failure a scan can produce.
type ErrorCode string

const (
	// ErrInvalidInput covers duration out of [6,17], sample/size length
	// mismatches, and empty scratch-file names. Fatal: aborts the scan.
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrExtractionError means the external fingerprint tool failed for
	// one probe. Localized: the offending offset is skipped.
	ErrExtractionError ErrorCode = "EXTRACTION_ERROR"

	// ErrComparisonError means FingerprintComparer failed for one probe.
	// Localized, same policy as ErrExtractionError.
	ErrComparisonError ErrorCode = "COMPARISON_ERROR"

	// ErrScratchIOError means the scratch directory is unwritable.
	// Fatal: aborts the scan.
	ErrScratchIOError ErrorCode = "SCRATCH_IO_ERROR"

	// ErrInternalError is a catch-all for invariant violations that
	// should never happen given a correct caller.
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
)

// fatalCodes lists the codes that abort the scan with no partial
// result; everything else is localized to the offending offset.
var fatalCodes = map[ErrorCode]bool{
	ErrInvalidInput:   true,
	ErrScratchIOError: true,
}

// Fatal reports whether an error of this code aborts the scan entirely
// (true) or is localized to the offending offset (false).
func (c ErrorCode) Fatal() bool {
	return fatalCodes[c]
}
