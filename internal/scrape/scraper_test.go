package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/componentry/htmlgen/pkg/constants"
	"github.com/componentry/htmlgen/pkg/errors"
	"github.com/componentry/htmlgen/pkg/logging"
)

const catalogPage = `<!DOCTYPE html>
<html><body>
<h1>Reference</h1>
<table>
  <thead>
    <tr><th>Element</th><th>Description</th></tr>
  </thead>
  <tbody>
    <tr>
      <td><a href="/docs/a">&lt;a&gt;</a></td>
      <td>Creates a
          hyperlink.</td>
    </tr>
    <tr>
      <td>&lt;wbr&gt;</td>
      <td>Word break  opportunity.</td>
    </tr>
  </tbody>
</table>
<table>
  <tr><th>Deprecated</th><th>Description</th></tr>
  <tr>
    <td><a href="/docs/marquee">&lt;marquee&gt;</a> <a href="/docs/other">extra</a></td>
    <td>Scrolling text.</td>
  </tr>
</table>
</body></html>`

func newTestScraper(srv *httptest.Server) *Scraper {
	return New(
		WithHTTPClient(srv.Client()),
		WithBaseURL(srv.URL),
		WithLogger(&logging.Nop),
	)
}

func TestTables(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(catalogPage))
	}))
	defer srv.Close()

	scraper := newTestScraper(srv)
	tables, err := scraper.Tables(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	// Header rows are skipped.
	require.Len(t, tables[0].Rows, 2)
	require.Len(t, tables[1].Rows, 1)

	first := tables[0].Rows[0]
	require.Len(t, first, 2)
	assert.Equal(t, "<a>", first[0].Text)
	assert.Equal(t, "/docs/a", first[0].Href)
	assert.Equal(t, "Creates a hyperlink.", first[1].Text, "whitespace runs collapse to single spaces")

	second := tables[0].Rows[1]
	assert.Equal(t, "<wbr>", second[0].Text)
	assert.Empty(t, second[0].Href, "cell without hyperlink yields empty target")
	assert.Equal(t, "Word break opportunity.", second[1].Text)

	// Only the first hyperlink in a cell is kept.
	deprecated := tables[1].Rows[0]
	assert.Equal(t, "/docs/marquee", deprecated[0].Href)
}

func TestTablesNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	scraper := newTestScraper(srv)
	_, err := scraper.Tables(context.Background(), srv.URL)
	require.Error(t, err)
	var fetchErr *errors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
}

func TestDocLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/docs/ok":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	scraper := newTestScraper(srv)
	ctx := context.Background()

	t.Run("reachable link renders as markdown", func(t *testing.T) {
		link := scraper.DocLink(ctx, "/docs/ok")
		assert.Equal(t, "[MDN documentation.]("+srv.URL+"/docs/ok)", link)
	})

	t.Run("non-200 status downgrades to placeholder", func(t *testing.T) {
		assert.Equal(t, constants.MissingDocLink, scraper.DocLink(ctx, "/docs/gone"))
	})

	t.Run("empty route skips the check", func(t *testing.T) {
		assert.Equal(t, constants.MissingDocLink, scraper.DocLink(ctx, ""))
	})
}

func TestDocLinkNetworkFailure(t *testing.T) {
	// A server that is already closed: connection refused, treated the same
	// as a non-OK status.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	scraper := New(WithBaseURL(url), WithLogger(&logging.Nop))
	assert.Equal(t, constants.MissingDocLink, scraper.DocLink(context.Background(), "/docs/ok"))
}

func TestParseTablesNoTables(t *testing.T) {
	tables, err := parseTables(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, tables)
}
