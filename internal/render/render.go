// Package render emits the generated Rust module from a cross-linked catalog:
// a documented attributes! block followed by a documented elements! block.
// Each block is assembled fully in memory and written atomically, so the
// closing brace is always part of the written text.
package render

import (
	"fmt"
	"io"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/componentry/htmlgen/internal/catalog"
	"github.com/componentry/htmlgen/pkg/constants"
	"github.com/componentry/htmlgen/pkg/errors"
)

// deprecation markers emitted above deprecated declarations
const (
	deprecatedAttribute = `    #[deprecated = "This HTML attribute is deprecated in the latest standard."]`
	deprecatedElement   = `    #[deprecated = "This HTML element is deprecated in the latest standard."]`
)

// header is the fixed preamble of the generated Rust file.
var header = `// Programmatically generated by htmlgen, do not edit manually.

//! HTML elements and attributes definitions.
//!
//! In this framework, [HTML elements](` + constants.MDNElementsURL + `) are replaced
//! with simple rust functions taking one or more [` + "`Attributes`" + `]
//! for input and returning a [` + "`Component`" + `].
//!
//! [HTML attributes](` + constants.MDNAttributesURL + `) are simply rust structs that implement
//! the [` + "`Attribute`" + `] trait.
//!
//! This module contains the definitions and documentation of all standard HTML
//! elements and attributes, including the deprecated and experimental ones.

use web_sys::Element;

use crate::attribute::{attributes, Attribute, Attributes};
use crate::component::{elements, Component};
use crate::signal::Value;
use crate::util::TryAsRef;
`

// Write renders the full generated module to w. Records are emitted in the
// identifier-sorted order the catalog exposes; the output is consumed verbatim
// as source text, so the write order is the sorted order.
func Write(w io.Writer, cat *catalog.Catalog) error {
	var b strings.Builder

	b.WriteString(header)
	b.WriteString("\n")

	block(&b, "attributes", func(b *strings.Builder) {
		for _, attr := range cat.SortedAttributes() {
			writeAttribute(b, attr)
		}
	})

	b.WriteString("\n")

	block(&b, "elements", func(b *strings.Builder) {
		for _, elem := range cat.SortedElements() {
			writeElement(b, elem)
		}
	})

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.WrapIO("write", "generated module", err)
	}
	return nil
}

// block emits a macro invocation around the body. The body writes only to the
// builder, so the closing brace always follows it in the assembled text.
func block(b *strings.Builder, macro string, body func(*strings.Builder)) {
	fmt.Fprintf(b, "%s! {\n", macro)
	body(b)
	b.WriteString("}\n")
}

// writeAttribute emits one attribute declaration with its documentation.
func writeAttribute(b *strings.Builder, attr *catalog.Attribute) {
	doc := []string{
		attr.Description,
		"",
		fmt.Sprintf("Corresponds to the HTML attribute: %s.", md.Code(attr.Name)),
		"",
		applicability(attr),
		"",
		attr.DocLink,
	}
	writeDoc(b, doc)

	if attr.Deprecated {
		b.WriteString(deprecatedAttribute)
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "    %s => %q,\n", attr.Ident, attr.Name)
}

// applicability phrases an attribute's scope: the explicit sorted element
// list, or the global sentence.
func applicability(attr *catalog.Attribute) string {
	if attr.Global() {
		return "Global attribute: can be applied to any HTML element."
	}
	return fmt.Sprintf("Can be applied to the following elements: %s.", strings.Join(attr.Elements, ", "))
}

// writeElement emits one element declaration with its documentation.
func writeElement(b *strings.Builder, elem *catalog.Element) {
	doc := []string{
		elem.Description,
		"",
		fmt.Sprintf("Corresponds to the HTML element: %s.", md.Code(elem.Name)),
		"",
		fmt.Sprintf("Supports the following attributes: %s", strings.Join(elem.Attributes, ", ")),
		"",
		elem.DocLink,
	}
	writeDoc(b, doc)

	if elem.Deprecated {
		b.WriteString(deprecatedElement)
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "    %s => %q,\n", elem.Ident, elem.Tag())
}

// writeDoc emits the documentation comment lines for a declaration.
func writeDoc(b *strings.Builder, lines []string) {
	for _, line := range lines {
		if line == "" {
			b.WriteString("    ///\n")
			continue
		}
		b.WriteString("    /// ")
		b.WriteString(line)
		b.WriteString("\n")
	}
}
