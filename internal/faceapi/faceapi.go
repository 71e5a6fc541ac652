package faceapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	apiVersion     = "/face/v1.0"
	defaultTimeout = 30 * time.Second

	headerSubscriptionKey = "Ocp-Apim-Subscription-Key"
)

// regionHosts maps the short region codes to the host prefix of the
// regional Face API endpoint.
var regionHosts = map[string]string{
	"WUS":  "westus",
	"EUS2": "eastus2",
	"WCUS": "westcentralus",
	"WE":   "westeurope",
	"SA":   "southeastasia",
}

// Regions returns the supported region codes.
func Regions() []string {
	return []string{"WUS", "EUS2", "WCUS", "WE", "SA"}
}

// ResolveRegion returns the host prefix for a region code. The match is exact
// and case-sensitive.
func ResolveRegion(code string) (string, error) {
	host, ok := regionHosts[code]
	if !ok {
		return "", &ConfigurationError{Region: code}
	}
	return host, nil
}

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Face API of a single region.
type Client struct {
	apiKey     string
	parsedURL  *url.URL
	httpClient Doer
	logger     *zap.Logger
	captureDir string
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient Doer
	baseURL    string
	logger     *zap.Logger
	captureDir string
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(d Doer) Option {
	return func(o *clientOptions) { o.httpClient = d }
}

// WithBaseURL overrides the regional endpoint root. The "/face/v1.0" suffix is
// appended, so pass the scheme and host only. An empty value is ignored.
func WithBaseURL(raw string) Option {
	return func(o *clientOptions) {
		if raw != "" {
			o.baseURL = raw
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// WithCaptureDir enables saving raw API responses to dir.
func WithCaptureDir(dir string) Option {
	return func(o *clientOptions) { o.captureDir = dir }
}

// NewClient creates a Face API client for the given subscription key and
// region code. An unknown region yields a *ConfigurationError.
func NewClient(apiKey, region string, opts ...Option) (*Client, error) {
	host, err := ResolveRegion(region)
	if err != nil {
		return nil, err
	}

	o := clientOptions{
		baseURL: fmt.Sprintf("https://%s.api.cognitive.microsoft.com", host),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	parsed, err := url.Parse(strings.TrimSuffix(o.baseURL, "/") + apiVersion)
	if err != nil {
		return nil, fmt.Errorf("invalid Face API URL: %w", err)
	}

	c := &Client{
		apiKey:     apiKey,
		parsedURL:  parsed,
		httpClient: o.httpClient,
		logger:     o.logger.With(zap.String("region", region)),
	}
	if o.captureDir != "" {
		if err := os.MkdirAll(o.captureDir, 0750); err != nil {
			return nil, fmt.Errorf("could not create capture directory: %w", err)
		}
		c.captureDir = o.captureDir
	}
	return c, nil
}

// BaseURL returns the API root, e.g. https://westus.api.cognitive.microsoft.com/face/v1.0.
func (c *Client) BaseURL() string {
	return c.parsedURL.String()
}

// resolveURL builds a full URL from the API root and the given path segments.
// A query string on the last segment is split off so JoinPath only sees the
// path portion.
func (c *Client) resolveURL(pathSegments ...string) string {
	if len(pathSegments) == 0 {
		return c.parsedURL.String()
	}
	segments := make([]string, len(pathSegments))
	copy(segments, pathSegments)
	last := segments[len(segments)-1]
	if pathPart, query, ok := strings.Cut(last, "?"); ok {
		segments[len(segments)-1] = pathPart
		result := c.parsedURL.JoinPath(segments...)
		result.RawQuery = query
		return result.String()
	}
	return c.parsedURL.JoinPath(segments...).String()
}

// captureResponse saves a response body under captureDir if capturing is enabled.
func (c *Client) captureResponse(endpoint string, body []byte) {
	if c.captureDir == "" || len(body) == 0 {
		return
	}

	name, _, _ := strings.Cut(endpoint, "?")
	name = strings.TrimPrefix(strings.ReplaceAll(name, "/", "_"), "_")
	name = fmt.Sprintf("%s_%s.json", name, time.Now().Format("20060102_150405.000000"))

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err == nil {
		body = pretty.Bytes()
	}

	path := filepath.Join(c.captureDir, name)
	if err := os.WriteFile(path, body, 0600); err != nil {
		c.logger.Warn("failed to capture response", zap.String("path", path), zap.Error(err))
	}
}
