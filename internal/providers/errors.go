package providers

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrProviderUnavailable is returned when no match feed is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// RateLimitError is a 429 from the match feed, carrying the quota headers that came with it.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	var b strings.Builder
	if e.Provider != "" {
		b.WriteString(e.Provider)
		b.WriteString(": ")
	}
	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		b.WriteString("match feed rate limited")
	}
	if e.StatusCode > 0 {
		fmt.Fprintf(&b, " (status=%d", e.StatusCode)
		if e.RetryAfter > 0 {
			fmt.Fprintf(&b, ", retry_after=%s", e.RetryAfter)
		}
		b.WriteString(")")
	}
	return b.String()
}

// AsRateLimitError finds a RateLimitError anywhere in err's chain.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rl *RateLimitError
	if !errors.As(err, &rl) {
		return nil, false
	}
	return rl, true
}
