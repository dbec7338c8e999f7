// Package constants provides shared constants used throughout the htmlgen codebase.
// This includes timeouts, catalog endpoints, and the fixed sentinel strings the
// extraction rules key on.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the
	// reference catalog pages
	DefaultHTTPTimeout = 30 * time.Second

	// LinkCheckTimeout is the per-request timeout for documentation link
	// existence checks. A check that exceeds it is treated the same as a
	// broken link: the doc link degrades to the missing-documentation
	// placeholder and generation continues.
	LinkCheckTimeout = 10 * time.Second

	// GenerateTimeout is the default timeout for a full generation run
	GenerateTimeout = 10 * time.Minute
)

// MDN catalog endpoints
const (
	// MDNBaseURL is the root of the MDN reference site; page-relative routes
	// scraped from table cells are resolved against it
	MDNBaseURL = "https://developer.mozilla.org"

	// MDNElementsURL is the HTML element reference table page
	MDNElementsURL = MDNBaseURL + "/en-US/docs/Web/HTML/Element"

	// MDNAttributesURL is the HTML attribute reference table page
	MDNAttributesURL = MDNBaseURL + "/en-US/docs/Web/HTML/Attributes"
)

// Sentinel tokens recognized during extraction. These are static properties of
// the MDN table layout, not caller configuration.
const (
	// GlobalAttributeSentinel marks an attribute row as applicable to every
	// element rather than an enumerated list
	GlobalAttributeSentinel = "Global attribute"

	// DeprecatedToken is the warning token (matched case-insensitively) that
	// flags a name as deprecated
	DeprecatedToken = "deprecated"

	// WildcardAttribute is the custom-data attribute row that is skipped
	// entirely; it has no fixed identifier space
	WildcardAttribute = "data-*"

	// ContentEditableName is the pseudo-element entry in applicability lists
	// that is recorded as a flag instead of an element reference
	ContentEditableName = "contenteditable"
)

// Placeholder strings emitted when source data is missing or unreachable
const (
	// MissingDocLink replaces a documentation link whose existence check did
	// not return 200 OK
	MissingDocLink = "*Missing MDN documentation.*"

	// MissingDescription replaces an empty description cell
	MissingDescription = "*Missing MDN description.*"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
