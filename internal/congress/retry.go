package congress

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds the automatic retry of idempotent GETs on 429 and 5xx
// responses. The zero value means "use library defaults"; set Disabled for a
// single attempt.
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
	Disabled        bool
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		InitialInterval: time.Second,
		MaxElapsedTime:  30 * time.Second,
	}
}

func (p RetryPolicy) newBackOff() backoff.BackOff {
	if p.Disabled {
		return &backoff.StopBackOff{}
	}

	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxElapsedTime > 0 {
		b.MaxElapsedTime = p.MaxElapsedTime
	}
	return b
}

func retryableResponse(response *http.Response) bool {
	if response == nil {
		// Transport-level failure, worth another attempt.
		return true
	}
	return response.StatusCode == http.StatusTooManyRequests || response.StatusCode >= 500
}

func (c *Client) getWithRetry(ctx context.Context, fullURL string) (json.RawMessage, error) {
	operation := func() (json.RawMessage, error) {
		var payload json.RawMessage
		response, err := c.NewGetRequest(ctx, fullURL).WriteBodyTo(&payload).Do()
		if mapped := MapResponseToError(response, err); mapped != nil {
			if retryableResponse(response) {
				return nil, mapped
			}
			return nil, backoff.Permanent(mapped)
		}
		return payload, nil
	}

	return backoff.RetryWithData(operation, backoff.WithContext(c.retry.newBackOff(), ctx))
}
