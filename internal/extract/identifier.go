package extract

import (
	_ "embed"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	md "github.com/nao1215/markdown"
)

//go:embed overrides.yaml
var overridesYAML []byte

// renameOverrides maps source names to hand-curated identifiers, taking
// precedence over the default derivation rule. The mapping is total over its
// domain: a name listed here fully determines its identifier.
var renameOverrides map[string]string

func init() {
	if err := yaml.Unmarshal(overridesYAML, &renameOverrides); err != nil {
		panic(fmt.Sprintf("extract: decoding embedded rename overrides: %v", err))
	}
}

// Identifier derives the generated identifier for a source name: the override
// table wins, otherwise the first character is uppercased and the remainder
// left unchanged. The derivation is a pure function of the name, so
// identifiers are stable across runs.
func Identifier(name string) string {
	if override, ok := renameOverrides[name]; ok {
		return override
	}
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// Ref returns the markdown reference token for an identifier, e.g. [`Div`].
func Ref(ident string) string {
	return "[" + md.Code(ident) + "]"
}
