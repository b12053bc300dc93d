package lib

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/AnotherFullstackDev/httpreqx"
)

type ApiClient struct {
	baseURL   *url.URL
	authQuery url.Values
	*httpreqx.HttpClient
}

// NewQueryAuthApiClient builds a client for APIs that authenticate through a
// query-string parameter rather than an Authorization header. The token is
// appended to every URL produced by the builders below.
func NewQueryAuthApiClient(baseURL, tokenParam, token string) (*ApiClient, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse base url: %w", err)
	}

	httpClient := httpreqx.NewHttpClient().
		SetBodyMarshaler(httpreqx.NewJSONBodyMarshaler()).
		SetBodyUnmarshaler(httpreqx.NewJSONBodyUnmarshaler()).
		SetHeaders(map[string]string{
			"Accept": "application/json",
		}).
		SetStackTraceEnabled(false)

	return &ApiClient{
		baseURL:    base,
		authQuery:  url.Values{tokenParam: {token}},
		HttpClient: httpClient,
	}, nil
}

func MustNewQueryAuthApiClient(baseURL, tokenParam, token string) *ApiClient {
	client, err := NewQueryAuthApiClient(baseURL, tokenParam, token)
	if err != nil {
		log.Fatalf("could not create api client: %v", err)
	}
	return client
}

func (c *ApiClient) buildUrl(path string) *url.URL {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return c.baseURL.JoinPath(segments...)
}

func (c *ApiClient) URL(path string) string {
	return c.URLWithQuery(nil, path)
}

func (c *ApiClient) URLf(format string, a ...interface{}) string {
	path := fmt.Sprintf(format, a...)
	return c.URL(path)
}

func (c *ApiClient) URLWithQuery(query url.Values, path string) string {
	u := c.buildUrl(path)

	merged := url.Values{}
	for k, vs := range query {
		merged[k] = vs
	}
	// The auth parameter always wins over caller-supplied values.
	for k, vs := range c.authQuery {
		merged[k] = vs
	}
	u.RawQuery = merged.Encode()

	return u.String()
}

func (c *ApiClient) URLWithQueryf(query url.Values, format string, a ...interface{}) string {
	path := fmt.Sprintf(format, a...)
	return c.URLWithQuery(query, path)
}
