package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aurenox/aurenox/internal/logging"
)

// Service-relative paths of the content collections and the contact endpoint.
const (
	PathAbout       = "/api/about-uses"
	PathEvents      = "/api/events"
	PathFaqs        = "/api/faqs"
	PathGallery     = "/api/galeries?populate=*"
	PathShows       = "/api/shows-details?populate=*"
	PathSummaries   = "/api/shows-modals"
	PathPerformers  = "/api/hero-images?populate=*"
	PathContactForm = "/api/contact-forms"
)

// Fetcher retrieves one collection. out must point at a slice.
type Fetcher interface {
	FetchCollection(ctx context.Context, path string, out any) error
}

// HTTPClient talks to the content service over HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewHTTPClient creates a client for baseURL. Timeout applies per request.
func NewHTTPClient(baseURL string, timeout time.Duration, log *zap.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logging.OrNop(log),
	}
}

// BaseURL returns the configured base URL.
func (c *HTTPClient) BaseURL() string { return c.baseURL }

// AssetURL joins the base URL with a service-relative path.
func (c *HTTPClient) AssetURL(rel string) string { return AssetURL(c.baseURL, rel) }

// AssetURL joins base and a service-relative path by concatenation.
func AssetURL(base, rel string) string {
	if rel == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + rel
}

// FetchCollection GETs path and decodes the data array of the response into out.
func (c *HTTPClient) FetchCollection(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: http.MethodGet, Path: path, Code: resp.StatusCode}
	}

	var env envelope[json.RawMessage]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return ErrMissingData
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	c.log.Debug("collection fetched", zap.String("path", path), zap.Int("status", resp.StatusCode))
	return nil
}

// CreateContactForm POSTs a contact-form entry. Any non-2xx status is a *StatusError.
func (c *HTTPClient) CreateContactForm(ctx context.Context, form ContactForm) error {
	body, err := json.Marshal(envelope[ContactForm]{Data: form})
	if err != nil {
		return fmt.Errorf("encode contact form: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PathContactForm, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: http.MethodPost, Path: PathContactForm, Code: resp.StatusCode}
	}
	return nil
}
