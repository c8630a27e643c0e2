package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/patrickmn/go-cache"
)

// HTTPClient talks to the calendar provider's REST API. Reads are cached for a
// short TTL because the public booking page classifies every event on every
// render. Writes invalidate the cache.
type HTTPClient struct {
	baseURL    string
	token      string
	calendarID string
	client     *http.Client
	cache      *cache.Cache
}

func NewHTTPClient(baseURL, token, calendarID string) *HTTPClient {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &HTTPClient{
		baseURL:    baseURL,
		token:      token,
		calendarID: calendarID,
		client:     client,
		cache:      cache.New(30*time.Second, 5*time.Minute),
	}
}

func (c *HTTPClient) GetEvent(ctx context.Context, id string) (Event, error) {
	cacheKey := "event:" + id

	if cached, found := c.cache.Get(cacheKey); found {
		return cached.(Event), nil
	}

	eventURL, err := c.getURL("calendars", c.calendarID, "events", id)

	if err != nil {
		return Event{}, err
	}

	body, err := c.doWithRetry(ctx, http.MethodGet, eventURL, nil)

	if err != nil {
		return Event{}, err
	}

	var event Event

	if err := json.Unmarshal(body, &event); err != nil {
		return Event{}, fmt.Errorf("failed to decode event: %w", err)
	}

	c.cache.Set(cacheKey, event, cache.DefaultExpiration)

	return event, nil
}

func (c *HTTPClient) ListEvents(ctx context.Context, from, to time.Time) ([]Event, error) {
	cacheKey := fmt.Sprintf("list:%v:%v", from.Unix(), to.Unix())

	if cached, found := c.cache.Get(cacheKey); found {
		return cached.([]Event), nil
	}

	listURL, err := c.getURL("calendars", c.calendarID, "events")

	if err != nil {
		return nil, err
	}

	query := url.Values{
		"from": {from.UTC().Format(time.RFC3339)},
		"to":   {to.UTC().Format(time.RFC3339)},
	}
	listURL = listURL + "?" + query.Encode()

	body, err := c.doWithRetry(ctx, http.MethodGet, listURL, nil)

	if err != nil {
		return nil, err
	}

	var events []Event

	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}

	c.cache.Set(cacheKey, events, cache.DefaultExpiration)

	return events, nil
}

func (c *HTTPClient) PatchEvent(ctx context.Context, id string, patch EventPatch) (Event, error) {
	eventURL, err := c.getURL("calendars", c.calendarID, "events", id)

	if err != nil {
		return Event{}, err
	}

	payload, err := json.Marshal(patch)

	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal patch: %w", err)
	}

	body, err := c.doWithRetry(ctx, http.MethodPatch, eventURL, payload)

	if err != nil {
		return Event{}, err
	}

	var event Event

	if err := json.Unmarshal(body, &event); err != nil {
		return Event{}, fmt.Errorf("failed to decode patched event: %w", err)
	}

	c.invalidate(id)

	return event, nil
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, id string) error {
	eventURL, err := c.getURL("calendars", c.calendarID, "events", id)

	if err != nil {
		return err
	}

	_, err = c.doWithRetry(ctx, http.MethodDelete, eventURL, nil)

	if err != nil {
		return err
	}

	c.invalidate(id)

	return nil
}

func (c *HTTPClient) invalidate(id string) {
	c.cache.Delete("event:" + id)

	// List entries are keyed by time range, so they can't be deleted by event
	// id. Flushing is acceptable at this call rate.
	for key := range c.cache.Items() {
		if len(key) >= 5 && key[:5] == "list:" {
			c.cache.Delete(key)
		}
	}
}

// doWithRetry performs the request with bounded exponential backoff. Network
// errors and 5xx responses are retried; 4xx responses are permanent.
func (c *HTTPClient) doWithRetry(ctx context.Context, method, reqURL string, payload []byte) ([]byte, error) {
	var responseBody []byte

	operation := func() error {
		var bodyReader io.Reader = http.NoBody

		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)

		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed create new request: %w", err))
		}

		c.setHeaders(req)

		res, err := c.client.Do(req)

		if err != nil {
			return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}

		defer res.Body.Close()

		bodyBytes, readErr := io.ReadAll(res.Body)

		if res.StatusCode == http.StatusNotFound {
			return backoff.Permanent(ErrEventNotFound)
		}

		if res.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: status %v", ErrProviderUnavailable, res.StatusCode)
		}

		if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
			if readErr != nil {
				return backoff.Permanent(fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr))
			}
			return backoff.Permanent(fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes)))
		}

		if readErr != nil {
			return fmt.Errorf("failed to read body: %w", readErr)
		}

		responseBody = bodyBytes

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxElapsedTime = 5 * time.Second

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(b, 3), ctx))

	if err != nil {
		return nil, err
	}

	return responseBody, nil
}

func (c *HTTPClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
}

func (c *HTTPClient) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
