package redump

import (
	"fmt"
	"strings"

	"discsub/internal/services"
)

// HTTPStatusError reports a catalog response outside the 2xx range.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Location   string
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if loc := strings.TrimSpace(e.Location); loc != "" {
		return fmt.Sprintf("http %d: %s (location=%s)", e.StatusCode, e.URL, loc)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.URL)
}

// Unwrap marks status failures as transport errors.
func (e *HTTPStatusError) Unwrap() error { return services.ErrTransport }
