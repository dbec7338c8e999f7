// Package htmlgen generates annotated Rust declarations for HTML elements and
// attributes by scraping the MDN reference tables, cross-linking their
// applicability relation, and rendering the result as a single source module.
//
// The pipeline is strictly sequential: fetch completes before extraction,
// extraction before cross-linking, cross-linking before rendering. Output is
// deterministic; re-running against identical source rows produces
// byte-identical text.
package htmlgen

import (
	"context"
	"fmt"

	"github.com/componentry/htmlgen/internal/catalog"
	"github.com/componentry/htmlgen/internal/crosslink"
	"github.com/componentry/htmlgen/internal/extract"
	"github.com/componentry/htmlgen/internal/render"
	"github.com/componentry/htmlgen/internal/scrape"
	"github.com/componentry/htmlgen/pkg/errors"
)

// Pipeline runs the scrape, extract, cross-link, and render stages against
// the configured catalog endpoints.
type Pipeline struct {
	config *config
}

// New creates a pipeline with the given options.
func New(opts ...Option) (*Pipeline, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}
	return &Pipeline{config: c}, nil
}

// Generate runs the full pipeline and writes the generated module to the
// configured writer. The catalog is built once, cross-linked in place, and
// frozen before rendering begins.
func (p *Pipeline) Generate(ctx context.Context) error {
	c := p.config
	log := c.logger

	scraper := scrape.New(
		scrape.WithHTTPClient(c.httpClient),
		scrape.WithBaseURL(c.baseURL),
		scrape.WithLogger(log),
	)

	log.Info().Str("url", c.elementsURL).Msg("Fetching element catalog")
	elementTables, err := scraper.Tables(ctx, c.elementsURL)
	if err != nil {
		return err
	}

	log.Info().Str("url", c.attributesURL).Msg("Fetching attribute catalog")
	attributeTables, err := scraper.Tables(ctx, c.attributesURL)
	if err != nil {
		return err
	}
	if len(attributeTables) == 0 {
		return errors.NewParseError("html", c.attributesURL, "no tables found", nil)
	}

	extractor := extract.New(scraper)
	elements, err := extractor.Elements(ctx, elementTables)
	if err != nil {
		return err
	}
	attributes, err := extractor.Attributes(ctx, attributeTables[0])
	if err != nil {
		return err
	}

	cat := catalog.New(elements, attributes)
	if err := crosslink.Apply(cat); err != nil {
		return err
	}

	if err := render.Write(c.writer, cat); err != nil {
		return err
	}

	log.Info().
		Int("elements", len(cat.Elements)).
		Int("attributes", len(cat.Attributes)).
		Msg("Generated module")
	return nil
}
