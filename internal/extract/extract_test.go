package extract

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/componentry/htmlgen/internal/scrape"
	"github.com/componentry/htmlgen/pkg/constants"
	"github.com/componentry/htmlgen/pkg/errors"
	"github.com/componentry/htmlgen/pkg/logging"
)

// unreachableTransport fails every request immediately, so any accidental
// network round trip in a test surfaces as the placeholder doc link.
type unreachableTransport struct{}

func (unreachableTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("no network in tests")
}

func newTestExtractor() *Extractor {
	scraper := scrape.New(
		scrape.WithHTTPClient(&http.Client{Transport: unreachableTransport{}}),
		scrape.WithLogger(&logging.Nop),
	)
	return New(scraper)
}

func TestSplitWarnings(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		expected   string
		deprecated bool
	}{
		{name: "plain name", text: "href", expected: "href"},
		{name: "deprecated token", text: "bgcolor Deprecated", expected: "bgcolor", deprecated: true},
		{name: "case insensitive match", text: "bgcolor DEPRECATED", expected: "bgcolor", deprecated: true},
		{name: "non-deprecation warning stripped", text: "inputmode Experimental", expected: "inputmode"},
		{name: "multiple warnings", text: "align Deprecated Non-standard", expected: "align", deprecated: true},
		{name: "doubled whitespace between tokens", text: "align  Deprecated", expected: "align", deprecated: true},
		{name: "empty cell", text: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, deprecated := splitWarnings(tt.text)
			assert.Equal(t, tt.expected, name)
			assert.Equal(t, tt.deprecated, deprecated)
		})
	}
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		expected        []string
		contentEditable bool
	}{
		{
			name:     "global sentinel yields nil list",
			text:     constants.GlobalAttributeSentinel,
			expected: nil,
		},
		{
			name:     "explicit list",
			text:     "<form>, <input>",
			expected: []string{"<form>", "<input>"},
		},
		{
			name:     "single element",
			text:     "<a>",
			expected: []string{"<a>"},
		},
		{
			name:            "contenteditable recorded as flag and removed",
			text:            "contenteditable, <textarea>, <input>",
			expected:        []string{"<textarea>", "<input>"},
			contentEditable: true,
		},
		{
			name:            "contenteditable only",
			text:            "contenteditable",
			expected:        []string{},
			contentEditable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements, contentEditable := parseScope(tt.text)
			assert.Equal(t, tt.expected, elements)
			assert.Equal(t, tt.contentEditable, contentEditable)
		})
	}
}

func TestNormalizeDescription(t *testing.T) {
	assert.Equal(t, "List of classes.", normalizeDescription("List  of   classes."))
	assert.Equal(t, constants.MissingDescription, normalizeDescription(""))
	assert.Equal(t, constants.MissingDescription, normalizeDescription("   "))
	assert.Equal(t, "unchanged text", normalizeDescription("unchanged text"))
}

func TestElementRecordsExpansion(t *testing.T) {
	row := scrape.Row{
		{Text: "<h1>, <h2>", Href: "/docs/heading"},
		{Text: "Heading elements."},
	}

	records, err := elementRecords(row, false)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "<h1>", records[0].name)
	assert.Equal(t, "<h2>", records[1].name)
	assert.Contains(t, records[0].desc, "level 1")
	assert.Contains(t, records[1].desc, "level 2")
	// The records differ only in the substituted level number.
	assert.Equal(t,
		records[0].desc,
		"Represents a section heading of level 1. <h1> being the highest and <h6> the lowest.")

	for _, r := range records {
		assert.Equal(t, "/docs/heading", r.route)
		assert.False(t, r.deprecated)
	}
}

func TestElementRecordsSingle(t *testing.T) {
	row := scrape.Row{
		{Text: "<div>", Href: "/docs/div"},
		{Text: "Generic container."},
	}

	records, err := elementRecords(row, true)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "<div>", records[0].name)
	assert.Equal(t, "Generic container.", records[0].desc)
	assert.True(t, records[0].deprecated)
}

func TestElementRecordsShortRow(t *testing.T) {
	_, err := elementRecords(scrape.Row{{Text: "<div>"}}, false)
	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestElements(t *testing.T) {
	x := newTestExtractor()

	tables := []scrape.Table{
		{Rows: []scrape.Row{
			{{Text: "<a>"}, {Text: "Creates a hyperlink."}},
			{{Text: "<h1>, <h2>, <h3>, <h4>, <h5>, <h6>"}, {Text: "Heading elements."}},
		}},
		{Rows: []scrape.Row{
			{{Text: "<marquee>"}, {Text: "Scrolling text."}},
		}},
	}

	elements, err := x.Elements(context.Background(), tables)
	require.NoError(t, err)
	require.Len(t, elements, 8)

	a := elements["<a>"]
	require.NotNil(t, a)
	assert.Equal(t, "A", a.Ident)
	assert.Equal(t, "[`A`]", a.Ref)
	assert.False(t, a.Deprecated)
	// No hyperlink in the source cell: no check is attempted, placeholder used.
	assert.Equal(t, constants.MissingDocLink, a.DocLink)

	h3 := elements["<h3>"]
	require.NotNil(t, h3)
	assert.Equal(t, "H3", h3.Ident)
	assert.Contains(t, h3.Description, "level 3")

	// Last table holds deprecated elements.
	marquee := elements["<marquee>"]
	require.NotNil(t, marquee)
	assert.True(t, marquee.Deprecated)
}

func TestElementsNoTables(t *testing.T) {
	x := newTestExtractor()
	_, err := x.Elements(context.Background(), nil)
	require.Error(t, err)
}

func TestElementsDuplicateName(t *testing.T) {
	x := newTestExtractor()
	tables := []scrape.Table{
		{Rows: []scrape.Row{
			{{Text: "<div>"}, {Text: "one"}},
			{{Text: "<div>"}, {Text: "two"}},
		}},
	}
	_, err := x.Elements(context.Background(), tables)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAttributes(t *testing.T) {
	x := newTestExtractor()

	table := scrape.Table{Rows: []scrape.Row{
		{{Text: "class"}, {Text: constants.GlobalAttributeSentinel}, {Text: "List of classes."}},
		{{Text: "href"}, {Text: "<a>, <link>"}, {Text: "URL of a linked resource."}},
		{{Text: "bgcolor Deprecated"}, {Text: "<body>"}, {Text: ""}},
		{{Text: "data-*"}, {Text: constants.GlobalAttributeSentinel}, {Text: "Custom data attributes."}},
		{{Text: "enterkeyhint"}, {Text: "contenteditable, <textarea>"}, {Text: "Enter key hint."}},
	}}

	attributes, err := x.Attributes(context.Background(), table)
	require.NoError(t, err)

	// The wildcard custom-data row is excluded entirely.
	assert.NotContains(t, attributes, "data-*")
	require.Len(t, attributes, 4)

	class := attributes["class"]
	require.NotNil(t, class)
	assert.True(t, class.Global())
	assert.Nil(t, class.Elements)

	href := attributes["href"]
	require.NotNil(t, href)
	assert.Equal(t, []string{"<a>", "<link>"}, href.Elements)
	assert.False(t, href.Global())

	bgcolor := attributes["bgcolor"]
	require.NotNil(t, bgcolor)
	assert.True(t, bgcolor.Deprecated)
	assert.Equal(t, "BgColor", bgcolor.Ident)
	assert.Equal(t, constants.MissingDescription, bgcolor.Description)

	hint := attributes["enterkeyhint"]
	require.NotNil(t, hint)
	assert.True(t, hint.ContentEditable)
	assert.Equal(t, []string{"<textarea>"}, hint.Elements)
	assert.False(t, hint.Global(), "a contenteditable-scoped attribute is not global")
}

func TestAttributesShortRow(t *testing.T) {
	x := newTestExtractor()
	table := scrape.Table{Rows: []scrape.Row{
		{{Text: "class"}, {Text: constants.GlobalAttributeSentinel}},
	}}
	_, err := x.Attributes(context.Background(), table)
	require.Error(t, err)
}
