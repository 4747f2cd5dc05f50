// Package breach checks candidate passwords against the haveibeenpwned.com
// range API using the k-anonymity scheme: only the first five hex characters
// of the password's SHA-1 digest ever leave the process.
package breach

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/drosado/accounts-api/internal/api/metrics"
)

const (
	// DefaultBaseURL is the public Pwned Passwords range endpoint.
	DefaultBaseURL = "https://api.pwnedpasswords.com"

	defaultTimeout = 10 * time.Second

	minPasswordLength = 8
	maxPasswordLength = 255

	prefixLength = 5
	suffixLength = 35
)

// RangeCache stores raw range-API response bodies keyed by digest prefix.
// A nil cache disables caching; cache errors degrade to a direct fetch.
type RangeCache interface {
	Get(ctx context.Context, prefix string) (string, bool, error)
	Set(ctx context.Context, prefix, body string) error
}

// Client queries the breach range API.
type Client struct {
	baseURL string
	http    *http.Client
	cache   RangeCache
	log     zerolog.Logger
}

// NewClient builds a Client. baseURL falls back to DefaultBaseURL and timeout
// to 10s; cache may be nil.
func NewClient(baseURL string, timeout time.Duration, cache RangeCache, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cache:   cache,
		log:     log,
	}
}

// CheckStrength reports whether password is acceptable: within length bounds
// and absent from the breach corpus. A non-nil error means the corpus could
// not be consulted; the caller chooses fail-open or fail-closed.
func (c *Client) CheckStrength(ctx context.Context, password string) (bool, error) {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return false, nil
	}

	sum := sha1.Sum([]byte(password))
	digest := hex.EncodeToString(sum[:])
	prefix := digest[:prefixLength]
	suffix := digest[prefixLength:]

	body, err := c.fetchRange(ctx, prefix)
	if err != nil {
		metrics.BreachChecksTotal.WithLabelValues("error").Inc()
		return false, err
	}

	if rangeContains(body, suffix) {
		metrics.BreachChecksTotal.WithLabelValues("compromised").Inc()
		return false, nil
	}

	metrics.BreachChecksTotal.WithLabelValues("clean").Inc()
	return true, nil
}

// fetchRange returns the raw range body for prefix, via the cache when possible.
func (c *Client) fetchRange(ctx context.Context, prefix string) (string, error) {
	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, prefix)
		if err != nil {
			c.log.Warn().Err(err).Msg("breach range cache read failed")
		} else if ok {
			metrics.BreachRangeCacheTotal.WithLabelValues("hit").Inc()
			return body, nil
		} else {
			metrics.BreachRangeCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/range/"+prefix, nil)
	if err != nil {
		return "", fmt.Errorf("build range request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("range lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("range lookup: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read range response: %w", err)
	}
	body := string(raw)

	if c.cache != nil {
		if err := c.cache.Set(ctx, prefix, body); err != nil {
			c.log.Warn().Err(err).Msg("breach range cache write failed")
		}
	}

	return body, nil
}

// rangeContains scans the SUFFIX:COUNT lines of a range body for suffix,
// case-insensitively.
func rangeContains(body, suffix string) bool {
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if len(line) < suffixLength {
			continue
		}
		if strings.EqualFold(line[:suffixLength], suffix) {
			return true
		}
	}
	return false
}
