package siteconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status fetching site configuration")
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) (SiteConfig, error)
}

type HTTPFetcherConfig struct {
	Client *http.Client
	Now    func() time.Time
}

/*
HTTPFetcher retrieves config.json over HTTP. Each request carries a
cache-busting query parameter so edits show up on the next page load.
*/
type HTTPFetcher struct {
	client *http.Client
	now    func() time.Time
}

func NewHTTPFetcher(config HTTPFetcherConfig) HTTPFetcher {
	if config.Client == nil {
		config.Client = http.DefaultClient
	}

	if config.Now == nil {
		config.Now = time.Now
	}

	return HTTPFetcher{
		client: config.Client,
		now:    config.Now,
	}
}

func (f HTTPFetcher) Fetch(ctx context.Context, url string) (SiteConfig, error) {
	var (
		err      error
		req      *http.Request
		response *http.Response
		body     []byte
	)

	target := CacheBust(url, f.now())

	if req, err = http.NewRequestWithContext(ctx, http.MethodGet, target, nil); err != nil {
		return Empty(), fmt.Errorf("error building request for '%s': %w", target, err)
	}

	if response, err = f.client.Do(req); err != nil {
		return Empty(), fmt.Errorf("error fetching '%s': %w", target, err)
	}

	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return Empty(), fmt.Errorf("%w: '%s' returned %s", ErrUnexpectedStatus, target, response.Status)
	}

	if body, err = io.ReadAll(response.Body); err != nil {
		return Empty(), fmt.Errorf("error reading site configuration body: %w", err)
	}

	return Parse(body)
}

/*
CacheBust appends the current time in milliseconds as a bare query
parameter.
*/
func CacheBust(url string, now time.Time) string {
	separator := "?"

	if strings.Contains(url, "?") {
		separator = "&"
	}

	return url + separator + strconv.FormatInt(now.UnixMilli(), 10)
}
