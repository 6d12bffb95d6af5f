package avinode

import "errors"

// Gateway error taxonomy. Callers branch on these with errors.Is:
//   - ErrAuth: fatal, never retried, surfaced immediately
//   - ErrNotFound: not retried on the same identifier form; the caller
//     decides whether an alternate form is worth trying
//   - ErrUnavailable: transient upstream/network failure, retried with
//     backoff up to the configured attempt bound before surfacing
var (
	ErrAuth        = errors.New("marketplace authentication failed")
	ErrNotFound    = errors.New("marketplace resource not found")
	ErrUnavailable = errors.New("marketplace unavailable")
)
