// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 19

// Filesystem Layout - these keys anchor the working directories of a download run.
const (
	PathsWorkspace = "paths.workspace"
)

// External Tools - these keys locate and tune the downloader and the multiplexer.
const (
	DownloaderPath        = "downloader.path"
	DownloaderConcurrency = "downloader.concurrency"
	MuxerPath             = "muxer.path"
)

// Download Behavior - these keys govern how fetched streams are turned into a finished file.
const (
	DownloadStrict            = "download.strict"
	DownloadSanitizeFilenames = "download.sanitize_filenames"
)

// Network - these keys configure manifest retrieval.
const (
	NetworkTimeout        = "network.timeout"
	NetworkTLSFingerprint = "network.tls_fingerprint"
	NetworkUserAgent      = "network.user_agent"
)

// History Tracking - these keys configure the persistence of finished downloads.
const (
	HistorySave          = "history.save"
	HistorySuggestTitles = "history.suggest_titles"
)

// Iconography - these keys manage the visual rendering of status symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the interactive behavior.
const (
	CliColored      = "cli.colored"
	CliPauseOnExit  = "cli.pause_on_exit"
	CliProgress     = "cli.progress"
	CliVersionCheck = "cli.version_check"
)
