// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "castlist"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is sent with every manifest request.
	UserAgent = App + "/" + Version + " (+https://github.com/castlist-cli/castlist)"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
