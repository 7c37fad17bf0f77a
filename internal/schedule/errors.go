package schedule

import "errors"

var (
	// ErrFormat is returned when a value or document does not have the expected shape:
	// missing or invalid fields, malformed dates, out-of-range clock values.
	ErrFormat = errors.New("format error")

	// ErrUnknownLetter is returned for day letters outside M, R, A, B, C, E, F.
	ErrUnknownLetter = errors.New("unknown day letter")

	// ErrUnknownVariant is returned when a schedule name is not in the catalog.
	ErrUnknownVariant = errors.New("unknown schedule variant")

	// ErrInvalidCatalog is returned when a catalog entry breaks a schedule invariant.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
