package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned by GitLabClient implementations. They carry GitLab's error
// taxonomy through the dispatcher untranslated; callers use errors.Is to
// classify a failed call.
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrPermission     = errors.New("permission denied")
	ErrNotFound       = errors.New("not found")
	ErrServer         = errors.New("remote server error")
	ErrNetwork        = errors.New("network error")
	ErrAPI            = errors.New("api error")
)

// RateLimitedError reports a 429 from GitLab together with the server's
// retry-after hint in seconds.
type RateLimitedError struct {
	RetryAfter int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %ds", e.RetryAfter)
}
