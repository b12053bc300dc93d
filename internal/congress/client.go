package congress

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/capitolhq/congressctl/internal/lib"
)

const (
	// DefaultBaseURL is the production root of the Congress.gov API.
	DefaultBaseURL = "https://api.congress.gov/v3"

	tokenParamName = "api_key"
)

// Client is a thin wrapper over the Congress.gov API: it translates resource
// identifiers to URL paths, attaches the API key and default query
// parameters, and returns payloads verbatim.
type Client struct {
	*lib.ApiClient
	defaults url.Values
	retry    RetryPolicy
}

type options struct {
	apiKey  string
	baseURL string
	limit   int
	offset  int
	sort    string
	from    string
	to      string
	now     func() time.Time
	retry   RetryPolicy
}

type Option func(*options)

func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = key }
}

// WithBaseURL points the client at a different API root. Used by tests and
// the config file's base_url key.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

func WithDefaultLimit(limit int) Option {
	return func(o *options) { o.limit = limit }
}

func WithDefaultOffset(offset int) Option {
	return func(o *options) { o.offset = offset }
}

func WithDefaultSort(sort string) Option {
	return func(o *options) { o.sort = sort }
}

// WithDateWindow sets the default fromDateTime/toDateTime values. Empty
// strings keep the built-in window (now minus twenty years, to now). Values
// must already be in DateTimeFormat.
func WithDateWindow(from, to string) Option {
	return func(o *options) {
		o.from = from
		o.to = to
	}
}

func WithRetryPolicy(policy RetryPolicy) Option {
	return func(o *options) { o.retry = policy }
}

// WithClock pins the time source used to compute the default date window.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewClient builds a client. The API key comes from WithAPIKey or, failing
// that, the CONGRESSCTL_API_KEY and CONGRESS_API_KEY environment variables;
// without a key construction fails with ErrMissingAPIKey.
func NewClient(opts ...Option) (*Client, error) {
	o := options{
		baseURL: DefaultBaseURL,
		limit:   25,
		offset:  0,
		sort:    "updateDate+desc",
		now:     time.Now,
		retry:   DefaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	apiKey := o.apiKey
	if apiKey == "" {
		for _, envKey := range []string{lib.ApiKeyEnv, lib.NativeApiKeyEnv} {
			if value := strings.TrimSpace(os.Getenv(envKey)); value != "" {
				apiKey = value
				break
			}
		}
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	api, err := lib.NewQueryAuthApiClient(o.baseURL, tokenParamName, apiKey)
	if err != nil {
		return nil, err
	}

	return &Client{
		ApiClient: api,
		defaults:  defaultQueryValues(o),
		retry:     o.retry,
	}, nil
}

func MustNewClient(opts ...Option) *Client {
	client, err := NewClient(opts...)
	if err != nil {
		log.Fatalf("could not create congress client: %v", err)
	}
	return client
}

// Get fetches /{resource}/{path} with the merged query parameters and returns
// the raw JSON payload. path may be empty for the collection root; params may
// be nil.
func (c *Client) Get(ctx context.Context, resource Resource, path string, params QueryParams) (json.RawMessage, error) {
	resource, err := ParseResource(string(resource))
	if err != nil {
		return nil, err
	}

	fullPath := string(resource)
	if path = strings.Trim(path, "/"); path != "" {
		fullPath += "/" + path
	}

	return c.getWithRetry(ctx, c.URLWithQuery(c.queryValues(params), fullPath))
}

// Bill accesses the '/bill/...' endpoints.
func (c *Client) Bill(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceBill, path, params)
}

// Amendment accesses the '/amendment/...' endpoints.
func (c *Client) Amendment(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceAmendment, path, params)
}

// Law accesses the '/law/...' endpoints.
func (c *Client) Law(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceLaw, path, params)
}

// Summaries accesses the '/summaries/...' endpoints.
func (c *Client) Summaries(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceSummaries, path, params)
}

// Congress accesses the '/congress/...' endpoints.
func (c *Client) Congress(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceCongress, path, params)
}

// Member accesses the '/member/...' endpoints.
func (c *Client) Member(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceMember, path, params)
}

// Committee accesses the '/committee/...' endpoints.
func (c *Client) Committee(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceCommittee, path, params)
}

// CommitteeReport accesses the '/committee-report/...' endpoints.
func (c *Client) CommitteeReport(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceCommitteeReport, path, params)
}

// CommitteePrint accesses the '/committee-print/...' endpoints.
func (c *Client) CommitteePrint(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceCommitteePrint, path, params)
}

// CommitteeMeeting accesses the '/committee-meeting/...' endpoints.
func (c *Client) CommitteeMeeting(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceCommitteeMeeting, path, params)
}

// Hearing accesses the '/hearing/...' endpoints.
func (c *Client) Hearing(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceHearing, path, params)
}

// CongressionalRecord accesses the '/congressional-record/...' endpoints.
func (c *Client) CongressionalRecord(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceCongressionalRecord, path, params)
}

// DailyCongressionalRecord accesses the '/daily-congressional-record/...' endpoints.
func (c *Client) DailyCongressionalRecord(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceDailyCongressionalRecord, path, params)
}

// BoundCongressionalRecord accesses the '/bound-congressional-record/...' endpoints.
func (c *Client) BoundCongressionalRecord(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceBoundCongressionalRecord, path, params)
}

// HouseCommunication accesses the '/house-communication/...' endpoints.
func (c *Client) HouseCommunication(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceHouseCommunication, path, params)
}

// HouseRequirement accesses the '/house-requirement/...' endpoints.
func (c *Client) HouseRequirement(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceHouseRequirement, path, params)
}

// HouseVote accesses the '/house-vote/...' endpoints.
func (c *Client) HouseVote(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceHouseVote, path, params)
}

// SenateCommunication accesses the '/senate-communication/...' endpoints.
func (c *Client) SenateCommunication(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceSenateCommunication, path, params)
}

// Nomination accesses the '/nomination/...' endpoints.
func (c *Client) Nomination(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceNomination, path, params)
}

// CRSReport accesses the '/crsreport/...' endpoints.
func (c *Client) CRSReport(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceCRSReport, path, params)
}

// Treaty accesses the '/treaty/...' endpoints.
func (c *Client) Treaty(ctx context.Context, path string, params QueryParams) (json.RawMessage, error) {
	return c.Get(ctx, ResourceTreaty, path, params)
}
