// Package scrape retrieves the reference catalog pages and turns their HTML
// tables into rows of linked cells. It also performs the documentation link
// existence checks; an unreachable link degrades to a placeholder instead of
// failing the run.
package scrape

import (
	"context"
	"net/http"

	md "github.com/nao1215/markdown"
	"github.com/rs/zerolog"

	"github.com/componentry/htmlgen/pkg/constants"
	"github.com/componentry/htmlgen/pkg/errors"
	"github.com/componentry/htmlgen/pkg/logging"
)

// DocLinkText is the visible text of a resolved documentation link.
const DocLinkText = "MDN documentation."

// Scraper fetches catalog pages and checks documentation links.
type Scraper struct {
	http *http.Client
	base string
	log  *zerolog.Logger
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithHTTPClient sets the HTTP client used for page fetches and link checks.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) {
		if client != nil {
			s.http = client
		}
	}
}

// WithBaseURL sets the base URL page-relative doc routes resolve against.
func WithBaseURL(base string) Option {
	return func(s *Scraper) {
		if base != "" {
			s.base = base
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *zerolog.Logger) Option {
	return func(s *Scraper) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a scraper with the given options.
func New(opts ...Option) *Scraper {
	s := &Scraper{
		http: &http.Client{Timeout: constants.DefaultHTTPTimeout},
		base: constants.MDNBaseURL,
		log:  logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tables fetches the page at url and parses every HTML table in it, in
// document order.
func (s *Scraper) Tables(ctx context.Context, url string) ([]Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapFetch(url, err)
	}

	res, err := s.http.Do(req)
	if err != nil {
		return nil, errors.WrapFetch(url, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return nil, errors.NewFetchError(url, res.StatusCode, nil)
	}

	tables, err := parseTables(res.Body)
	if err != nil {
		return nil, errors.WrapParse("html", url, err)
	}

	s.log.Debug().Str("url", url).Int("tables", len(tables)).Msg("Parsed catalog page")
	return tables, nil
}

// DocLink resolves a scraped documentation route into a markdown link,
// verifying the page exists with a HEAD request. Any non-OK status, transport
// failure, or timeout downgrades the link to the missing-documentation
// placeholder; a broken reference link never aborts generation.
func (s *Scraper) DocLink(ctx context.Context, route string) string {
	if route == "" {
		return constants.MissingDocLink
	}

	url := route
	if route[0] == '/' {
		url = s.base + route
	}

	checkCtx, cancel := context.WithTimeout(ctx, constants.LinkCheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodHead, url, nil)
	if err != nil {
		s.log.Debug().Str("url", url).Err(err).Msg("Documentation link check failed")
		return constants.MissingDocLink
	}

	res, err := s.http.Do(req)
	if err != nil {
		s.log.Debug().Str("url", url).Err(err).Msg("Documentation link check failed")
		return constants.MissingDocLink
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		s.log.Debug().Str("url", url).Int("status", res.StatusCode).Msg("Documentation link unreachable")
		return constants.MissingDocLink
	}

	return md.Link(DocLinkText, url)
}
