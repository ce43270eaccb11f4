// File: services/extraction/normalizer.go
package extraction

import (
	"context"
	"time"
)

// EntityNormalizer turns a raw phrase into a typed value. A nil result with
// a nil error means the phrase carried no recognizable value; callers treat
// errors and "no result" identically. Implementations must be idempotent
// for the same input.
type EntityNormalizer interface {
	// ParseTime resolves phrases like "4th of October" to a point in time.
	ParseTime(ctx context.Context, text string) (*time.Time, error)
	// ParseNumber resolves phrases like "two" or "2" to a number.
	ParseNumber(ctx context.Context, text string) (*float64, error)
	// ParseDuration resolves phrases like "2 nights" to a count of days.
	ParseDuration(ctx context.Context, text string) (*float64, error)
	// ParseEmail extracts an email address from the phrase.
	ParseEmail(ctx context.Context, text string) (*string, error)
}
