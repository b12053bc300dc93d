package congress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
}

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithAPIKey("test-key"), WithClock(fixedClock)}, opts...)
	client, err := NewClient(opts...)
	require.NoError(t, err)
	return client
}

func TestQueryValues(t *testing.T) {
	r := require.New(t)

	t.Run("defaults cover the documented parameters", func(t *testing.T) {
		client := newTestClient(t)
		values := client.queryValues(nil)

		r.Equal("json", values.Get("format"))
		r.Equal("0", values.Get("offset"))
		r.Equal("25", values.Get("limit"))
		r.Equal("updateDate+desc", values.Get("sort"))
		r.Equal("2025-06-15T10:30:00Z", values.Get("toDateTime"))
		r.Equal(fixedClock().Add(-20*365*24*time.Hour).Format(DateTimeFormat), values.Get("fromDateTime"))
	})

	t.Run("known parameters override defaults", func(t *testing.T) {
		client := newTestClient(t)
		values := client.queryValues(QueryParams{
			"limit":        "250",
			"sort":         "updateDate+asc",
			"fromDateTime": "2020-01-01T00:00:00Z",
		})

		r.Equal("250", values.Get("limit"))
		r.Equal("updateDate+asc", values.Get("sort"))
		r.Equal("2020-01-01T00:00:00Z", values.Get("fromDateTime"))
		r.Equal("0", values.Get("offset"))
	})

	t.Run("unknown parameters are dropped", func(t *testing.T) {
		client := newTestClient(t)
		values := client.queryValues(QueryParams{"conference": "true"})

		r.Empty(values.Get("conference"))
	})

	t.Run("format stays pinned to json", func(t *testing.T) {
		client := newTestClient(t)
		values := client.queryValues(QueryParams{"format": "xml"})

		r.Equal("json", values.Get("format"))
	})

	t.Run("constructor options shift the defaults", func(t *testing.T) {
		client := newTestClient(t,
			WithDefaultLimit(100),
			WithDefaultOffset(50),
			WithDefaultSort("updateDate+asc"),
			WithDateWindow("2001-01-01T00:00:00Z", "2002-01-01T00:00:00Z"),
		)
		values := client.queryValues(nil)

		r.Equal("100", values.Get("limit"))
		r.Equal("50", values.Get("offset"))
		r.Equal("updateDate+asc", values.Get("sort"))
		r.Equal("2001-01-01T00:00:00Z", values.Get("fromDateTime"))
		r.Equal("2002-01-01T00:00:00Z", values.Get("toDateTime"))
	})
}
