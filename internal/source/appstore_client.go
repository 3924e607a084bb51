package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// AppStoreClient reads the public customer review RSS feed.
type AppStoreClient struct {
	baseURL string
	country string
	http    HTTPDoer
}

// NewAppStoreClient returns a client for the feed served under baseURL.
func NewAppStoreClient(baseURL, country string, doer HTTPDoer) *AppStoreClient {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &AppStoreClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		country: country,
		http:    doer,
	}
}

type rssLabel struct {
	Label string `json:"label"`
}

type rssEntry struct {
	ID      rssLabel  `json:"id"`
	Updated rssLabel  `json:"updated"`
	Rating  *rssLabel `json:"im:rating"`
}

// rssEntries accepts the feed's single-object form as well as a list.
type rssEntries []rssEntry

func (e *rssEntries) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single rssEntry
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*e = rssEntries{single}
		return nil
	}
	var list []rssEntry
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return err
	}
	*e = list
	return nil
}

type rssFeed struct {
	Feed struct {
		Entry rssEntries `json:"entry"`
	} `json:"feed"`
}

func (c *AppStoreClient) pageURL(appID int64, page int) string {
	return fmt.Sprintf("%s/%s/rss/customerreviews/id=%d/page=%d/sortby=mostrecent/json", c.baseURL, c.country, appID, page)
}

// Page fetches one page of the feed.
func (c *AppStoreClient) Page(ctx context.Context, appID int64, page int) ([]rssEntry, error) {
	url := c.pageURL(appID, page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	var feed rssFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode feed page %d: %w", page, err)
	}
	return feed.Feed.Entry, nil
}
