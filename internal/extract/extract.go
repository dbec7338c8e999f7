// Package extract converts raw scraped table rows into typed element and
// attribute records: identifier derivation, deprecation detection, scope
// parsing, and description normalization.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/componentry/htmlgen/internal/catalog"
	"github.com/componentry/htmlgen/internal/scrape"
	"github.com/componentry/htmlgen/pkg/constants"
	"github.com/componentry/htmlgen/pkg/errors"
	"github.com/componentry/htmlgen/pkg/logging"
)

// headingPrefix marks the compound heading row that expands to one record per
// heading level.
const headingPrefix = "<h1>"

// Extractor builds typed records from scraped tables, resolving documentation
// links as it goes.
type Extractor struct {
	scraper *scrape.Scraper
	log     *zerolog.Logger
}

// New creates an extractor backed by the given scraper.
func New(scraper *scrape.Scraper) *Extractor {
	return &Extractor{
		scraper: scraper,
		log:     logging.Default(),
	}
}

// rawElement is one element record before documentation link resolution.
type rawElement struct {
	name       string
	route      string
	desc       string
	deprecated bool
}

// Elements extracts element records from the scraped element tables. All
// tables but the last hold current elements; the last table holds deprecated
// ones, matching the reference page layout.
func (x *Extractor) Elements(ctx context.Context, tables []scrape.Table) (map[string]*catalog.Element, error) {
	if len(tables) == 0 {
		return nil, errors.NewParseError("html", "element catalog", "no tables found", nil)
	}

	out := make(map[string]*catalog.Element)
	for i, table := range tables {
		deprecated := i == len(tables)-1
		for _, row := range table.Rows {
			raws, err := elementRecords(row, deprecated)
			if err != nil {
				return nil, err
			}
			for _, raw := range raws {
				if _, exists := out[raw.name]; exists {
					return nil, errors.NewValidationError("name", raw.name, "duplicate element source name")
				}
				tag := strings.TrimSuffix(strings.TrimPrefix(raw.name, "<"), ">")
				ident := Identifier(tag)
				out[raw.name] = &catalog.Element{
					Name:        raw.name,
					Description: normalizeDescription(raw.desc),
					Deprecated:  raw.deprecated,
					DocLink:     x.scraper.DocLink(ctx, raw.route),
					Ident:       ident,
					Ref:         Ref(ident),
				}
			}
		}
	}

	x.log.Info().Int("elements", len(out)).Msg("Extracted element records")
	return out, nil
}

// elementRecords converts one element row into its records. The compound
// heading row (name cell starting with <h1>) expands to one record per level
// sharing a description template; every other row yields a single record.
func elementRecords(row scrape.Row, deprecated bool) ([]rawElement, error) {
	if len(row) < 2 {
		return nil, errors.NewParseError("html", "element catalog",
			fmt.Sprintf("element row has %d cells, want 2", len(row)), nil)
	}
	name, desc := row[0], row[1]

	if !strings.HasPrefix(name.Text, headingPrefix) {
		return []rawElement{{
			name:       name.Text,
			route:      name.Href,
			desc:       desc.Text,
			deprecated: deprecated,
		}}, nil
	}

	parts := strings.Split(name.Text, ", ")
	records := make([]rawElement, 0, len(parts))
	for i, part := range parts {
		records = append(records, rawElement{
			name:       part,
			route:      name.Href,
			desc:       fmt.Sprintf("Represents a section heading of level %d. <h1> being the highest and <h6> the lowest.", i+1),
			deprecated: deprecated,
		})
	}
	return records, nil
}

// Attributes extracts attribute records from the scraped attribute table.
func (x *Extractor) Attributes(ctx context.Context, table scrape.Table) (map[string]*catalog.Attribute, error) {
	out := make(map[string]*catalog.Attribute)
	for _, row := range table.Rows {
		if len(row) < 3 {
			return nil, errors.NewParseError("html", "attribute catalog",
				fmt.Sprintf("attribute row has %d cells, want 3", len(row)), nil)
		}

		name, deprecated := splitWarnings(row[0].Text)
		if name == constants.WildcardAttribute {
			// Custom data attributes have no fixed identifier space and are
			// intentionally unsupported.
			x.log.Debug().Str("attribute", name).Msg("Skipping wildcard attribute row")
			continue
		}
		if _, exists := out[name]; exists {
			return nil, errors.NewValidationError("name", name, "duplicate attribute source name")
		}

		elements, contentEditable := parseScope(row[1].Text)

		ident := Identifier(name)
		out[name] = &catalog.Attribute{
			Name:            name,
			Description:     normalizeDescription(row[2].Text),
			Deprecated:      deprecated,
			DocLink:         x.scraper.DocLink(ctx, row[0].Href),
			Ident:           ident,
			Ref:             Ref(ident),
			Elements:        elements,
			ContentEditable: contentEditable,
		}
	}

	x.log.Info().Int("attributes", len(out)).Msg("Extracted attribute records")
	return out, nil
}

// splitWarnings strips trailing space-separated warning tokens from a name
// cell and reports whether one of them flags deprecation.
func splitWarnings(text string) (name string, deprecated bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", false
	}
	for _, warning := range fields[1:] {
		if strings.EqualFold(warning, constants.DeprecatedToken) {
			deprecated = true
		}
	}
	return fields[0], deprecated
}

// parseScope parses an applicability cell. The global sentinel yields a nil
// list; otherwise the cell splits into element source names, with the
// contenteditable entry recorded as a flag and removed from the list.
func parseScope(text string) (elements []string, contentEditable bool) {
	if text == constants.GlobalAttributeSentinel {
		return nil, false
	}

	elements = strings.Split(text, ", ")
	for i, name := range elements {
		if name == constants.ContentEditableName {
			contentEditable = true
			elements = append(elements[:i], elements[i+1:]...)
			break
		}
	}
	return elements, contentEditable
}

// normalizeDescription collapses whitespace runs and substitutes the fixed
// placeholder for empty descriptions.
func normalizeDescription(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return constants.MissingDescription
	}
	return s
}
