// Package registry searches the hex.pm package registry.
package registry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"

	"github.com/wexinc/mixadd/internal/config"
	"github.com/wexinc/mixadd/internal/deps"
	mixerrors "github.com/wexinc/mixadd/internal/errors"
	"github.com/wexinc/mixadd/internal/logging"
)

// maxErrorBody bounds how much of a failed response is kept for error details.
const maxErrorBody = 512

// Package is one entry of the registry's package search response.
type Package struct {
	Name                string `json:"name"`
	LatestVersion       string `json:"latest_version"`
	LatestStableVersion string `json:"latest_stable_version"`
	HTMLURL             string `json:"html_url"`
	Meta                struct {
		Description string `json:"description"`
	} `json:"meta"`
}

// Version returns the version offered for installation. Registries that
// publish pre-releases may leave latest_version empty for stable-only packages.
func (p Package) Version() string {
	if p.LatestVersion != "" {
		return p.LatestVersion
	}
	return p.LatestStableVersion
}

// Client searches the package registry.
type Client struct {
	// BaseURL is the package search endpoint.
	BaseURL string
	// HTTPClient performs the request.
	HTTPClient *http.Client
	// UserAgent is sent with every request.
	UserAgent string

	logger *logging.Logger
}

// NewClient creates a registry client from the registry configuration.
func NewClient(cfg config.RegistryConfig, userAgent string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.NewNoop()
	}
	return &Client{
		BaseURL:    cfg.URL,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		UserAgent:  userAgent,
		logger:     logger.With("component", "registry"),
	}
}

// Search sends one search request for query and returns the matching
// packages in registry order. An empty result is not an error.
func (c *Client) Search(ctx context.Context, query string) ([]deps.Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, mixerrors.UsageError("search query must not be empty", "mixadd install <query>")
	}

	target, err := c.searchURL(query)
	if err != nil {
		return nil, mixerrors.RegistryUnavailable(c.BaseURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, mixerrors.RegistryUnavailable(target, zerr.Wrap(err, "failed to create request"))
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	c.logger.Debug("searching registry", "url", target)
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, mixerrors.RegistryUnavailable(target, zerr.Wrap(err, "failed to fetch packages"))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, mixerrors.RegistryRateLimited(target, retryAfter(resp.Header.Get("Retry-After")))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, mixerrors.RegistryStatus(target, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var packages []Package
	if err := json.NewDecoder(resp.Body).Decode(&packages); err != nil {
		return nil, mixerrors.RegistryUnavailable(target, zerr.Wrap(err, "failed to decode packages"))
	}

	candidates := make([]deps.Candidate, 0, len(packages))
	for _, p := range packages {
		version := p.Version()
		if p.Name == "" || version == "" {
			c.logger.Debug("skipping incomplete package", "name", p.Name)
			continue
		}
		candidates = append(candidates, deps.Candidate{
			Name:          p.Name,
			LatestVersion: version,
			Description:   p.Meta.Description,
			URL:           p.HTMLURL,
		})
	}

	c.logger.Info("registry search complete",
		"results", len(candidates),
		"duration", time.Since(start).String(),
	)
	return candidates, nil
}

func (c *Client) searchURL(query string) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "invalid registry url"), "url", c.BaseURL)
	}
	q := u.Query()
	q.Set("search", query)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// retryAfter parses a Retry-After header given in seconds or as an HTTP date.
func retryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(value); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
