package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	playReviewsRPC   = "UsvDTd"
	playSortNewest   = 2
	playMaxPageSize  = 199
	playXSSIPrefix   = ")]}'"
	playBatchExecute = "/_/PlayStoreUi/data/batchexecute"
)

var errMalformedPlayResponse = errors.New("malformed play response")

// PlayStoreClient lists reviews through the play store web RPC endpoint.
type PlayStoreClient struct {
	baseURL  string
	country  string
	language string
	http     HTTPDoer
}

// NewPlayStoreClient returns a client for the endpoint served under baseURL.
func NewPlayStoreClient(baseURL, country, language string, doer HTTPDoer) *PlayStoreClient {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &PlayStoreClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		country:  country,
		language: language,
		http:     doer,
	}
}

// playReview is one positional review record of the RPC payload.
type playReview []any

func (r playReview) at(i int) any {
	if i < 0 || i >= len(r) {
		return nil
	}
	return r[i]
}

func (r playReview) id() string {
	s, _ := r.at(0).(string)
	return s
}

func (r playReview) score() any {
	return r.at(2)
}

func (r playReview) epochSeconds() float64 {
	ts, ok := r.at(5).([]any)
	if !ok || len(ts) == 0 {
		return 0
	}
	s, _ := ts[0].(float64)
	return s
}

// playPage is one page of reviews plus the token of the next page.
type playPage struct {
	Reviews []playReview
	Token   string
}

func (c *PlayStoreClient) requestPayload(packageID string, count int, token string) string {
	tokenField := "null"
	if token != "" {
		tokenField = fmt.Sprintf(`\"%s\"`, token)
	}
	inner := fmt.Sprintf(`[null,null,[2,%d,[%d,null,%s],null,[]],[\"%s\",7]]`, playSortNewest, count, tokenField, packageID)
	return fmt.Sprintf(`[[["%s","%s",null,"generic"]]]`, playReviewsRPC, inner)
}

// Page fetches up to count reviews, newest first, continuing from token.
func (c *PlayStoreClient) Page(ctx context.Context, packageID string, count int, token string) (playPage, error) {
	if count <= 0 || count > playMaxPageSize {
		count = playMaxPageSize
	}
	endpoint := fmt.Sprintf("%s%s?hl=%s&gl=%s", c.baseURL, playBatchExecute, url.QueryEscape(c.language), url.QueryEscape(c.country))
	form := url.Values{"f.req": {c.requestPayload(packageID, count, token)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return playPage{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return playPage{}, fmt.Errorf("post %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return playPage{}, &StatusError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return playPage{}, fmt.Errorf("read play response: %w", err)
	}
	return decodePlayPage(body)
}

// decodePlayPage unwraps the XSSI-guarded envelope and the JSON string
// nested inside it.
func decodePlayPage(body []byte) (playPage, error) {
	body = bytes.TrimSpace(body)
	body = bytes.TrimPrefix(body, []byte(playXSSIPrefix))

	var envelope [][]any
	if err := json.Unmarshal(bytes.TrimSpace(body), &envelope); err != nil {
		return playPage{}, fmt.Errorf("%w: %w", errMalformedPlayResponse, err)
	}
	if len(envelope) == 0 || len(envelope[0]) < 3 {
		return playPage{}, fmt.Errorf("%w: empty envelope", errMalformedPlayResponse)
	}
	raw, ok := envelope[0][2].(string)
	if !ok {
		// The RPC answers with a null payload when the app has no reviews.
		return playPage{}, nil
	}

	var data []any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return playPage{}, fmt.Errorf("%w: %w", errMalformedPlayResponse, err)
	}
	if len(data) == 0 {
		return playPage{}, nil
	}

	var page playPage
	if list, ok := data[0].([]any); ok {
		page.Reviews = make([]playReview, 0, len(list))
		for _, item := range list {
			if fields, ok := item.([]any); ok {
				page.Reviews = append(page.Reviews, playReview(fields))
			}
		}
	}
	if len(data) >= 2 {
		if meta, ok := data[len(data)-2].([]any); ok && len(meta) > 0 {
			page.Token, _ = meta[len(meta)-1].(string)
		}
	}
	return page, nil
}
