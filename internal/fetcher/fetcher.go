package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// GrossesURL is the page carrying the weekly grosses figures.
	GrossesURL = "https://www.broadwayleague.com/research/grosses-broadway-nyc/"

	// UserAgent identifies a common desktop browser. The grosses page
	// returns an error page to default Go/curl identifiers.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	Timeout = 30 * time.Second
)

// TransportError reports a failed page fetch: connection failure, timeout,
// or a non-success HTTP status.
type TransportError struct {
	URL    string
	Status int // 0 when the request never completed
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: unexpected status code: %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Fetcher handles fetching the weekly grosses page
type Fetcher struct {
	client *http.Client
	url    string
}

// New creates a new Fetcher for the default grosses page
func New() *Fetcher {
	return NewForURL(GrossesURL)
}

// NewForURL creates a new Fetcher for an arbitrary URL
func NewForURL(url string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// URL returns the URL this fetcher targets.
func (f *Fetcher) URL() string {
	return f.url
}

// Fetch performs one GET against the configured URL and returns the raw
// response body.
func (f *Fetcher) Fetch() (string, error) {
	req, err := http.NewRequest("GET", f.url, nil)
	if err != nil {
		return "", &TransportError{URL: f.url, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &TransportError{URL: f.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{URL: f.url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{URL: f.url, Err: fmt.Errorf("reading body: %w", err)}
	}

	return string(body), nil
}
