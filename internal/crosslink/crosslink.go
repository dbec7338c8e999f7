// Package crosslink computes the bidirectional applicability relation between
// elements and attributes, rewrites raw source-name references into
// render-ready tokens, and imposes the deterministic order rendering depends
// on.
package crosslink

import (
	"regexp"
	"slices"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/rs/zerolog"

	"github.com/componentry/htmlgen/internal/catalog"
	"github.com/componentry/htmlgen/pkg/errors"
	"github.com/componentry/htmlgen/pkg/logging"
)

// bracketed matches inline element references in description text, e.g. <h1>.
var bracketed = regexp.MustCompile(`<(.+?)>`)

// manifestAttribute carries a markup snippet that looks like a reference but
// must render as literal text.
const (
	manifestAttribute = "manifest"
	manifestSnippet   = `<link rel="manifest">`
)

// Apply builds the applicability relation in two phases and rewrites inline
// references. The catalog is mutated in place and must not be modified after
// Apply returns.
//
// Phase 1 populates each element's attribute list from the attribute scopes:
// global attributes reach every element, scoped attributes only the listed
// ones, resolved by source name. A scope naming an unknown element is a fatal
// inconsistency; the upstream tables are assumed well-formed and a partial
// relation would silently corrupt the generated documentation.
//
// Phase 2 rewrites both sides of the relation from source names to reference
// tokens and sorts each list alphabetically.
func Apply(cat *catalog.Catalog) error {
	log := logging.Default()

	if err := linkAttributes(cat, log); err != nil {
		return err
	}
	resolveReferences(cat)
	rewriteDescriptions(cat)

	log.Info().
		Int("elements", len(cat.Elements)).
		Int("attributes", len(cat.Attributes)).
		Msg("Cross-linked catalog")
	return nil
}

// linkAttributes is phase 1: append each attribute's source name to the
// attribute lists of the elements it applies to.
func linkAttributes(cat *catalog.Catalog, log *zerolog.Logger) error {
	globals := 0
	for _, attr := range cat.Attributes {
		if attr.Global() {
			globals++
			for _, elem := range cat.Elements {
				elem.Attributes = append(elem.Attributes, attr.Name)
			}
			continue
		}
		for _, name := range attr.Elements {
			elem, ok := cat.Element(name)
			if !ok {
				return errors.NewCrossLinkError(attr.Name, "element", name)
			}
			elem.Attributes = append(elem.Attributes, attr.Name)
		}
	}

	log.Debug().Int("global_attributes", globals).Msg("Applied attribute scopes")
	return nil
}

// resolveReferences is phase 2: replace source names with reference tokens on
// both sides of the relation and sort each list. Existence was proven in
// phase 1, and element lists only ever hold names inserted by their own
// attributes, so lookups here cannot miss.
func resolveReferences(cat *catalog.Catalog) {
	for _, attr := range cat.Attributes {
		if attr.Global() {
			continue
		}
		refs := make([]string, len(attr.Elements))
		for i, name := range attr.Elements {
			refs[i] = cat.Elements[name].Ref
		}
		attr.Elements = sortedUnique(refs)
	}

	for _, elem := range cat.Elements {
		refs := make([]string, len(elem.Attributes))
		for i, name := range elem.Attributes {
			refs[i] = cat.Attributes[name].Ref
		}
		elem.Attributes = sortedUnique(refs)
	}
}

// sortedUnique sorts refs alphabetically and drops duplicates.
func sortedUnique(refs []string) []string {
	slices.Sort(refs)
	return slices.Compact(refs)
}

// rewriteDescriptions substitutes inline bracketed element references in every
// description with the element's reference token. The manifest attribute is
// special-cased: its markup snippet stays verbatim as inline code. Bracketed
// text that does not resolve to a known element is left untouched; prose
// legitimately contains markup fragments that are not references.
func rewriteDescriptions(cat *catalog.Catalog) {
	for name, attr := range cat.Attributes {
		if name == manifestAttribute {
			attr.Description = strings.ReplaceAll(attr.Description, manifestSnippet, md.Code(manifestSnippet))
			continue
		}
		attr.Description = resolveInline(cat, attr.Description)
	}
	for _, elem := range cat.Elements {
		elem.Description = resolveInline(cat, elem.Description)
	}
}

// resolveInline replaces each resolvable bracketed token with the referenced
// element's token.
func resolveInline(cat *catalog.Catalog, desc string) string {
	return bracketed.ReplaceAllStringFunc(desc, func(match string) string {
		if elem, ok := cat.Element(match); ok {
			return elem.Ref
		}
		return match
	})
}
