package fetchers

import (
	"errors"
	"fmt"
)

// Sentinel errors used by the orchestrator to pick the right degraded
// payload. ErrNetwork covers transport failures and non-success statuses;
// ErrParse covers responses that arrived but did not decode into the
// expected block structure.
var (
	ErrNetwork = errors.New("network failure")
	ErrParse   = errors.New("parse failure")
)

// ParseError wraps a decode failure together with a short excerpt of the
// offending body for diagnosability.
type ParseError struct {
	Err     error
	Excerpt string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failure: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// excerptLen bounds the diagnostic body excerpt carried in ParseError.
const excerptLen = 120

func excerpt(body []byte) string {
	if len(body) <= excerptLen {
		return string(body)
	}
	return string(body[:excerptLen]) + "..."
}
