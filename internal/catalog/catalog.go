// Package catalog defines the record types produced by extraction and consumed
// by cross-linking and rendering: HTML elements, HTML attributes, and the
// combined catalog holding both collections.
package catalog

import (
	"sort"
	"strings"
)

// Element is one scraped HTML element record.
type Element struct {
	// Name is the original HTML name in angle brackets: <element>. It is the
	// unique key within the element collection.
	Name string

	// Description is the normalized description text.
	Description string

	// Deprecated reports whether the element is deprecated in the latest
	// standard.
	Deprecated bool

	// DocLink is a markdown link to the relevant MDN page, or a placeholder
	// message when no such page exists.
	DocLink string

	// Ident is the Rust identifier generated for this element.
	Ident string

	// Ref is the markdown reference to this element's generated identifier.
	Ref string

	// Attributes lists the attributes applicable to this element. It is
	// populated during cross-linking: first with attribute source names, then
	// rewritten to sorted reference tokens.
	Attributes []string
}

// Tag returns the element name without its angle brackets.
func (e *Element) Tag() string {
	return strings.TrimSuffix(strings.TrimPrefix(e.Name, "<"), ">")
}

// Attribute is one scraped HTML attribute record.
type Attribute struct {
	// Name is the original HTML attribute name, warning tokens stripped. It
	// is the unique key within the attribute collection.
	Name string

	// Description is the normalized description text.
	Description string

	// Deprecated reports whether the attribute is deprecated in the latest
	// standard.
	Deprecated bool

	// DocLink is a markdown link to the relevant MDN page, or a placeholder
	// message when no such page exists.
	DocLink string

	// Ident is the Rust identifier generated for this attribute.
	Ident string

	// Ref is the markdown reference to this attribute's generated identifier.
	Ref string

	// Elements lists the elements this attribute applies to. A nil list means
	// the attribute is global and applies to every element. Cross-linking
	// rewrites explicit lists from source names to sorted reference tokens.
	Elements []string

	// ContentEditable reports whether the applicability list carried the
	// special contenteditable entry, which is a flag rather than an element
	// reference.
	ContentEditable bool
}

// Global reports whether the attribute applies to every element.
func (a *Attribute) Global() bool {
	return a.Elements == nil
}

// Catalog holds both scraped collections, keyed by source name.
type Catalog struct {
	Elements   map[string]*Element
	Attributes map[string]*Attribute
}

// New creates a catalog from the two extracted collections.
func New(elements map[string]*Element, attributes map[string]*Attribute) *Catalog {
	if elements == nil {
		elements = make(map[string]*Element)
	}
	if attributes == nil {
		attributes = make(map[string]*Attribute)
	}
	return &Catalog{Elements: elements, Attributes: attributes}
}

// Element looks up an element by its bracketed source name.
func (c *Catalog) Element(name string) (*Element, bool) {
	e, ok := c.Elements[name]
	return e, ok
}

// Attribute looks up an attribute by its source name.
func (c *Catalog) Attribute(name string) (*Attribute, bool) {
	a, ok := c.Attributes[name]
	return a, ok
}

// SortedElements returns the elements ordered alphabetically by identifier.
// Rendering consumes this order so output is deterministic across runs.
func (c *Catalog) SortedElements() []*Element {
	out := make([]*Element, 0, len(c.Elements))
	for _, e := range c.Elements {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ident < out[j].Ident })
	return out
}

// SortedAttributes returns the attributes ordered alphabetically by identifier.
func (c *Catalog) SortedAttributes() []*Attribute {
	out := make([]*Attribute, 0, len(c.Attributes))
	for _, a := range c.Attributes {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ident < out[j].Ident })
	return out
}
