package congress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Pagination is the envelope the upstream attaches to every list response.
type Pagination struct {
	Count int    `json:"count"`
	Next  string `json:"next,omitempty"`
	Prev  string `json:"prev,omitempty"`
}

type listEnvelope struct {
	Pagination *Pagination `json:"pagination"`
}

// WalkFunc receives one page of results. Return false to stop walking.
type WalkFunc func(page json.RawMessage, pagination *Pagination) (bool, error)

// Walk fetches successive pages of a list endpoint by following
// pagination.next. The next link is not fetched verbatim; only its offset and
// limit are carried over, so the API key and base URL stay under the
// client's control.
func (c *Client) Walk(ctx context.Context, resource Resource, path string, params QueryParams, fn WalkFunc) error {
	pageParams := QueryParams{}
	for k, v := range params {
		pageParams[k] = v
	}

	for {
		payload, err := c.Get(ctx, resource, path, pageParams)
		if err != nil {
			return err
		}

		var envelope listEnvelope
		if err := json.Unmarshal(payload, &envelope); err != nil {
			return fmt.Errorf("decoding pagination envelope: %w", err)
		}

		cont, err := fn(payload, envelope.Pagination)
		if err != nil {
			return err
		}
		if !cont || envelope.Pagination == nil || envelope.Pagination.Next == "" {
			return nil
		}

		next, err := url.Parse(envelope.Pagination.Next)
		if err != nil {
			return fmt.Errorf("parsing pagination next link: %w", err)
		}

		nextQuery := next.Query()
		offset := nextQuery.Get(paramOffset)
		if offset == "" {
			return nil
		}
		pageParams[paramOffset] = offset
		if limit := nextQuery.Get(paramLimit); limit != "" {
			pageParams[paramLimit] = limit
		}
	}
}
