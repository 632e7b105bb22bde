// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Manifest Source - these keys select which catalog is loaded and how its sources are picked.
const (
	ManifestURL    = "manifest.url"
	ManifestFormat = "manifest.format"
)

// Catalog Decoding - these keys tune how item-level anomalies are handled.
const (
	CatalogStrict = "catalog.strict"
)

// Networking - these keys configure the manifest HTTP client.
const (
	NetworkTimeout = "network.timeout"
)

// History Tracking - these keys configure the remembered manifest URLs.
const (
	HistoryRemember = "history.remember"
)

// Tree Rendering - these keys define how a decoded catalog is printed.
const (
	TreeShowURLs  = "tree.show_urls"
	TreeWrapWidth = "tree.wrap_width"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application behavior.
const (
	CliColored = "cli.colored"
)
