package scrape

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Cell is one table cell: its text content paired with the target of the
// first hyperlink inside it, if any.
type Cell struct {
	Text string
	Href string
}

// Row is an ordered sequence of cells.
type Row []Cell

// Table is an ordered sequence of data rows. Header rows are dropped during
// parsing.
type Table struct {
	Rows []Row
}

// parseTables parses an HTML document and returns every table in document
// order.
func parseTables(r io.Reader) ([]Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var tables []Table
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Table {
			tables = append(tables, parseTable(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)

	return tables, nil
}

// parseTable collects the data rows of a table node. Rows containing header
// cells are skipped.
func parseTable(table *html.Node) Table {
	var t Table

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			if row, ok := parseRow(n); ok {
				t.Rows = append(t.Rows, row)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(table)

	return t
}

// parseRow converts a tr node into a Row. It reports false for header rows.
func parseRow(tr *html.Node) (Row, bool) {
	var row Row
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Th:
			return nil, false
		case atom.Td:
			row = append(row, Cell{
				Text: cellText(c),
				Href: firstHref(c),
			})
		}
	}
	return row, len(row) > 0
}

// cellText returns the concatenated text content of a node with whitespace
// runs collapsed to single spaces.
func cellText(n *html.Node) string {
	var b strings.Builder
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// firstHref returns the href of the first anchor inside the node, or "".
func firstHref(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for _, attr := range n.Attr {
			if attr.Key == "href" {
				return attr.Val
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if href := firstHref(c); href != "" {
			return href
		}
	}
	return ""
}
