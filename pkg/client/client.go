// Package client is a Go API client for the chatty backend. It mirrors the
// web client's translation store: translations already fetched this session
// are answered locally, and quota state from the last server response is kept
// for display without an extra round-trip.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrQuotaExceeded is returned when the server reports the daily translation
// limit has been reached.
var ErrQuotaExceeded = errors.New("daily translation limit exceeded")

// APIError is any non-2xx response that is not a quota rejection.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

type TranslateResult struct {
	TranslatedText        string `json:"translatedText"`
	TargetLanguage        string `json:"targetLanguage"`
	Cached                bool   `json:"cached"`
	RemainingTranslations int    `json:"remainingTranslations"`
}

type TranslationStats struct {
	DailyTranslationCount int    `json:"dailyTranslationCount"`
	RemainingTranslations int    `json:"remainingTranslations"`
	TranslationEnabled    bool   `json:"translationEnabled"`
	PreferredLanguage     string `json:"preferredLanguage"`
}

type UserSettings struct {
	TranslationEnabled bool   `json:"translationEnabled"`
	PreferredLanguage  string `json:"preferredLanguage"`
}

type cacheKey struct {
	messageID int64
	language  string
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client

	mu        sync.Mutex
	cache     map[cacheKey]string
	lastStats *TranslationStats
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sets the session token used for authenticated requests.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		cache:   map[cacheKey]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the session token, e.g. after a login.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Translate returns the translation for the given text. When a message ID is
// supplied and this session already holds the (message, language) pair, the
// call is answered locally without touching the network or the quota.
func (c *Client) Translate(ctx context.Context, text, targetLanguage string, messageID *int64) (*TranslateResult, error) {
	if messageID != nil {
		c.mu.Lock()
		cached, ok := c.cache[cacheKey{messageID: *messageID, language: targetLanguage}]
		c.mu.Unlock()
		if ok {
			return &TranslateResult{
				TranslatedText:        cached,
				TargetLanguage:        targetLanguage,
				Cached:                true,
				RemainingTranslations: c.remaining(ctx),
			}, nil
		}
	}

	body := map[string]interface{}{
		"text":           text,
		"targetLanguage": targetLanguage,
	}
	if messageID != nil {
		body["messageId"] = *messageID
	}

	var result TranslateResult
	if err := c.do(ctx, http.MethodPost, "/api/translation/translate", body, &result); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if messageID != nil {
		c.cache[cacheKey{messageID: *messageID, language: targetLanguage}] = result.TranslatedText
	}
	if c.lastStats == nil {
		c.lastStats = &TranslationStats{}
	}
	c.lastStats.RemainingTranslations = result.RemainingTranslations
	if !result.Cached {
		c.lastStats.DailyTranslationCount++
	}
	c.mu.Unlock()

	return &result, nil
}

// Stats fetches the caller's quota state and remembers it locally.
func (c *Client) Stats(ctx context.Context) (*TranslationStats, error) {
	var stats TranslationStats
	if err := c.do(ctx, http.MethodGet, "/api/translation/stats", nil, &stats); err != nil {
		return nil, err
	}
	c.mu.Lock()
	copied := stats
	c.lastStats = &copied
	c.mu.Unlock()
	return &stats, nil
}

// UpdateSettings changes the caller's translation preferences. A preferred
// language different from the one last seen invalidates the whole local
// cache: entries for other languages are conservatively dropped too.
func (c *Client) UpdateSettings(ctx context.Context, enabled *bool, preferredLanguage *string) (*UserSettings, error) {
	body := map[string]interface{}{}
	if enabled != nil {
		body["translationEnabled"] = *enabled
	}
	if preferredLanguage != nil {
		body["preferredLanguage"] = *preferredLanguage
	}

	var settings UserSettings
	if err := c.do(ctx, http.MethodPut, "/api/translation/settings", body, &settings); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.lastStats == nil || settings.PreferredLanguage != c.lastStats.PreferredLanguage {
		c.cache = map[cacheKey]string{}
	}
	if c.lastStats != nil {
		c.lastStats.TranslationEnabled = settings.TranslationEnabled
		c.lastStats.PreferredLanguage = settings.PreferredLanguage
	}
	c.mu.Unlock()

	return &settings, nil
}

// CachedBatch fetches the server-cached translations for a conversation and
// merges them into the session cache.
func (c *Client) CachedBatch(ctx context.Context, messageIDs []int64, targetLanguage string) (map[int64]string, error) {
	body := map[string]interface{}{
		"messageIds":     messageIDs,
		"targetLanguage": targetLanguage,
	}

	var resp struct {
		Translations map[int64]string `json:"translations"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/translation/cached", body, &resp); err != nil {
		return nil, err
	}

	c.mu.Lock()
	for id, text := range resp.Translations {
		c.cache[cacheKey{messageID: id, language: targetLanguage}] = text
	}
	c.mu.Unlock()

	return resp.Translations, nil
}

// CachedLocally reports whether this session already holds the pair.
func (c *Client) CachedLocally(messageID int64, language string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	text, ok := c.cache[cacheKey{messageID: messageID, language: language}]
	return text, ok
}

// remaining returns the last remaining-quota value seen from the server. When
// no response has carried one yet, it fetches stats once so a cache hit does
// not report an exhausted quota. The fetch is best effort: on failure zero is
// reported until a later server call succeeds.
func (c *Client) remaining(ctx context.Context) int {
	c.mu.Lock()
	if c.lastStats != nil {
		known := c.lastStats.RemainingTranslations
		c.mu.Unlock()
		return known
	}
	c.mu.Unlock()
	fetched, err := c.Stats(ctx)
	if err != nil {
		return 0
	}
	return fetched.RemainingTranslations
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrQuotaExceeded
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
