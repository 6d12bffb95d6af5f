package avinode

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"tripflow/internal/pkg/config"
	"tripflow/internal/pkg/errs"
)

const (
	headerAPIToken      = "X-Avinode-ApiToken"
	headerSentTimestamp = "X-Avinode-SentTimestamp"
	headerAPIVersion    = "X-Avinode-ApiVersion"
	headerProduct       = "X-Avinode-Product"
	headerActAsAccount  = "X-Avinode-ActAsAccount"

	apiVersion      = "v1.0"
	timestampFormat = "2006-01-02T15:04:05.000Z"
)

// Client is the low-level marketplace gateway. It authenticates, stamps
// the upstream's presentation headers, and retries transient failures.
// It holds no business logic and performs no caching.
type Client struct {
	cfg    config.AvinodeConfig
	http   *http.Client
	logger *slog.Logger
}

func New(cfg config.AvinodeConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (c *Client) GetTrip(ctx context.Context, id string) (*TripPayload, error) {
	var payload TripPayload
	if err := c.get(ctx, "/trips/"+url.PathEscape(id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) GetRFQ(ctx context.Context, id string) (*RFQPayload, error) {
	var payload RFQPayload
	if err := c.get(ctx, "/rfqs/"+url.PathEscape(id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) GetQuote(ctx context.Context, id string) (*QuotePayload, error) {
	query := url.Values{
		"quotebreakdown": []string{"true"},
		"taildetails":    []string{"true"},
	}
	var payload QuotePayload
	if err := c.get(ctx, "/quotes/"+url.PathEscape(id), query, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// get issues a GET with bounded retries. Only network errors and 5xx are
// retried; 401/403 and 404 surface immediately.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.cfg.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	// A misconfigured bound must not short-circuit the call entirely.
	attempts := max(1, c.cfg.MaxAttempts)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			backoff := c.cfg.RetryBackoff << (attempt - 1)
			select {
			case <-ctx.Done():
				return errs.Mark(ctx.Err(), ErrUnavailable)
			case <-time.After(backoff):
			}
			c.logger.Warn("retrying marketplace request",
				"path", path, "attempt", attempt+1, "error", lastErr.Error())
		}

		done, err := c.doOnce(ctx, endpoint, out)
		if done {
			return err
		}
		lastErr = err
	}

	return lastErr
}

// doOnce returns done=true when the outcome is final (success or a
// non-retryable failure).
func (c *Client) doOnce(ctx context.Context, endpoint string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return true, errs.Wrap(err, "failed to build marketplace request")
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, errs.Mark(errs.Wrap(err, "marketplace request failed"), ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return true, errs.Mark(errs.Wrap(err, "failed to read marketplace response"), ErrUnavailable)
		}
		return true, decodeEnvelope(body, out)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return true, errs.Mark(errs.Newf("marketplace returned %d for %s", resp.StatusCode, endpoint), ErrAuth)

	case resp.StatusCode == http.StatusNotFound:
		return true, errs.Mark(errs.Newf("marketplace returned 404 for %s", endpoint), ErrNotFound)

	case resp.StatusCode >= 500:
		return false, errs.Mark(errs.Newf("marketplace returned %d for %s", resp.StatusCode, endpoint), ErrUnavailable)

	default:
		return true, errs.Mark(errs.Newf("marketplace returned %d for %s", resp.StatusCode, endpoint), ErrUnavailable)
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.BearerToken)
	req.Header.Set(headerAPIToken, c.cfg.APIToken)
	req.Header.Set(headerSentTimestamp, time.Now().UTC().Format(timestampFormat))
	req.Header.Set(headerAPIVersion, apiVersion)
	req.Header.Set(headerProduct, c.cfg.Product)
	if c.cfg.ActAsAccount != "" {
		req.Header.Set(headerActAsAccount, c.cfg.ActAsAccount)
	}
}

// decodeEnvelope unwraps the `data` envelope; some endpoints return the
// resource at the top level instead.
func decodeEnvelope(body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 {
		body = env.Data
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode marketplace response"), ErrUnavailable)
	}
	return nil
}
