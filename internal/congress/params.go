package congress

import (
	"log/slog"
	"net/url"
	"strconv"
	"time"
)

// DateTimeFormat is the layout the upstream expects for fromDateTime and
// toDateTime values.
const DateTimeFormat = "2006-01-02T15:04:05Z"

// defaultLookback bounds the default search window: roughly 20 years back
// from client construction time.
const defaultLookback = 20 * 365 * 24 * time.Hour

const (
	paramFormat       = "format"
	paramOffset       = "offset"
	paramLimit        = "limit"
	paramFromDateTime = "fromDateTime"
	paramToDateTime   = "toDateTime"
	paramSort         = "sort"
)

// QueryParams carries per-call query parameter overrides. Only parameter
// names present in the defaults are forwarded; anything else is dropped with
// a warning.
type QueryParams map[string]string

func defaultQueryValues(o options) url.Values {
	now := o.now()

	from := o.from
	if from == "" {
		from = now.Add(-defaultLookback).UTC().Format(DateTimeFormat)
	}
	to := o.to
	if to == "" {
		to = now.UTC().Format(DateTimeFormat)
	}

	return url.Values{
		paramFormat:       {"json"},
		paramOffset:       {strconv.Itoa(o.offset)},
		paramLimit:        {strconv.Itoa(o.limit)},
		paramFromDateTime: {from},
		paramToDateTime:   {to},
		paramSort:         {o.sort},
	}
}

// queryValues merges per-call overrides over the client defaults. The format
// parameter is pinned to json: payloads pass through this client as raw JSON,
// so the upstream's xml rendering is not supported.
func (c *Client) queryValues(params QueryParams) url.Values {
	merged := url.Values{}
	for k, vs := range c.defaults {
		merged[k] = vs
	}

	for name, value := range params {
		if name == paramFormat {
			if value != "json" {
				slog.Warn("unsupported response format requested, keeping json", "format", value)
			}
			continue
		}
		if _, known := merged[name]; !known {
			slog.Warn("invalid parameter name supplied, using default names and values instead", "param", name)
			continue
		}
		merged.Set(name, value)
	}

	return merged
}
