package lookup

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const defaultAPIBase = "https://api.itbook.store/1.0"

// DefaultMaxResults caps the similar-titles list shown in the details view.
const DefaultMaxResults = 6

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client queries the itbook.store search API for titles similar to a book's.
// Every failure mode is reported as an error the caller can downgrade to a
// display state; nothing here is fatal.
type Client struct {
	apiBase    string
	maxResults int
	http       *http.Client
}

// New creates a Client. If apiBase is empty, the public itbook.store API is
// used. maxResults <= 0 falls back to DefaultMaxResults.
func New(apiBase string, timeout time.Duration, maxResults int) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	apiBase = strings.TrimRight(apiBase, "/")
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiBase:    apiBase,
		maxResults: maxResults,
		http:       &http.Client{Timeout: timeout},
	}
}

// Result is one related title from the search API. ISBN13 is the unique key.
type Result struct {
	ISBN13   string `json:"isbn13"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	URL      string `json:"url"`
}

type searchResponse struct {
	Total string   `json:"total"`
	Books []Result `json:"books"`
}

// Similar fetches up to maxResults titles related to title. The context
// bounds and cancels the request; a cancelled lookup returns ctx.Err().
func (c *Client) Similar(ctx context.Context, title string) ([]Result, error) {
	reqURL := c.apiBase + "/search/" + url.PathEscape(title)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("similar titles lookup: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("similar titles lookup: decoding response: %w", err)
	}
	if len(body.Books) > c.maxResults {
		body.Books = body.Books[:c.maxResults]
	}
	return body.Books, nil
}

// checkStatus returns a typed error for non-2xx responses.
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("similar titles lookup: status %d", resp.StatusCode)
	}
}
