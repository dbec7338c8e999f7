package htmlgen

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/componentry/htmlgen/pkg/constants"
	"github.com/componentry/htmlgen/pkg/errors"
	"github.com/componentry/htmlgen/pkg/logging"
)

// config holds the pipeline configuration.
type config struct {
	httpClient    *http.Client
	baseURL       string
	elementsURL   string
	attributesURL string
	writer        io.Writer
	logger        *zerolog.Logger
}

// defaultConfig returns the configuration used when no options are given:
// the MDN endpoints, stdout output, and a default-timeout HTTP client.
func defaultConfig() *config {
	return &config{
		httpClient:    &http.Client{Timeout: constants.DefaultHTTPTimeout},
		baseURL:       constants.MDNBaseURL,
		elementsURL:   constants.MDNElementsURL,
		attributesURL: constants.MDNAttributesURL,
		writer:        os.Stdout,
		logger:        logging.Default(),
	}
}

// Option is a function that configures a Pipeline.
type Option func(*config) error

// WithHTTPClient sets the HTTP client used for page fetches and documentation
// link checks.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) error {
		if client == nil {
			return errors.NewValidationError("httpClient", client, "must not be nil")
		}
		c.httpClient = client
		return nil
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) error {
		if timeout <= 0 {
			return errors.NewValidationError("timeout", timeout, "must be positive")
		}
		c.httpClient = &http.Client{Timeout: timeout}
		return nil
	}
}

// WithBaseURL sets the base URL that page-relative documentation routes
// resolve against.
func WithBaseURL(url string) Option {
	return func(c *config) error {
		if url == "" {
			return errors.NewValidationError("baseURL", url, "must not be empty")
		}
		c.baseURL = url
		return nil
	}
}

// WithElementsURL sets the element catalog page.
func WithElementsURL(url string) Option {
	return func(c *config) error {
		if url == "" {
			return errors.NewValidationError("elementsURL", url, "must not be empty")
		}
		c.elementsURL = url
		return nil
	}
}

// WithAttributesURL sets the attribute catalog page.
func WithAttributesURL(url string) Option {
	return func(c *config) error {
		if url == "" {
			return errors.NewValidationError("attributesURL", url, "must not be empty")
		}
		c.attributesURL = url
		return nil
	}
}

// WithWriter sets the destination for the generated module text.
func WithWriter(w io.Writer) Option {
	return func(c *config) error {
		if w == nil {
			return errors.NewValidationError("writer", w, "must not be nil")
		}
		c.writer = w
		return nil
	}
}

// WithLogger sets the logger used by all pipeline stages.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.NewValidationError("logger", logger, "must not be nil")
		}
		c.logger = logger
		return nil
	}
}
