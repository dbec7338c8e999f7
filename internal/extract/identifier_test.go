package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{name: "default rule uppercases first character", source: "href", expected: "Href"},
		{name: "default rule leaves remainder unchanged", source: "itemscope", expected: "Itemscope"},
		{name: "single character name", source: "p", expected: "P"},
		{name: "hyphenated override", source: "accept-charset", expected: "AcceptCharset"},
		{name: "hyphenated override http-equiv", source: "http-equiv", expected: "HttpEquiv"},
		{name: "compound override", source: "contenteditable", expected: "ContentEditable"},
		{name: "override beats default entirely", source: "value", expected: "DefaultValue"},
		{name: "already capitalized stays", source: "Foo", expected: "Foo"},
		{name: "empty name", source: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Identifier(tt.source))
		})
	}
}

func TestIdentifierStable(t *testing.T) {
	// Derivation is a pure function of the name.
	for _, name := range []string{"href", "bgcolor", "accept-charset"} {
		assert.Equal(t, Identifier(name), Identifier(name))
	}
}

func TestOverridesTotalOverDomain(t *testing.T) {
	require.NotEmpty(t, renameOverrides)
	for name, ident := range renameOverrides {
		assert.Equal(t, ident, Identifier(name), "override for %q must fully determine its identifier", name)
	}
}

func TestRef(t *testing.T) {
	assert.Equal(t, "[`Div`]", Ref("Div"))
	assert.Equal(t, "[`AcceptCharset`]", Ref("AcceptCharset"))
}
