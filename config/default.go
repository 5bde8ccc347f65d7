package config

import (
	"github.com/vimeodl/vimeodl/constant"
	"github.com/vimeodl/vimeodl/key"
)

// Default maps every registered key to its field.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

var fields = []Field{
	{key.PathsWorkspace, ".", "Directory holding bin, Downloads/Temp and Downloads/Finished/Vimeo"},

	{key.DownloaderPath, "yt-dlp", "Downloader executable used to fetch each stream"},
	{key.DownloaderConcurrency, 16, "Concurrent fragment downloads passed to the downloader (-N)"},
	{key.MuxerPath, "ffmpeg", "Multiplexer executable used to combine video and audio"},

	{key.DownloadStrict, false, "Skip muxing when a stream download fails.\nBy default failures are reported and muxing is still attempted"},
	{key.DownloadSanitizeFilenames, false, "Normalize the title used in the output filename.\nPath separators are always replaced"},

	{key.NetworkTimeout, 60, "Manifest request timeout in seconds. 0 disables the timeout"},
	{key.NetworkTLSFingerprint, false, "Fetch the manifest with a Chrome TLS fingerprint"},
	{key.NetworkUserAgent, constant.UserAgent, "User-Agent header sent with the manifest request"},

	{key.HistorySave, true, "Remember finished downloads"},
	{key.HistorySuggestTitles, true, "Suggest previously used titles when prompting"},

	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},

	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},

	{key.CliColored, true, "Enable colored CLI output"},
	{key.CliPauseOnExit, true, "Wait for Enter before the process exits"},
	{key.CliProgress, true, "Show a progress bar while the manifest downloads"},
	{key.CliVersionCheck, false, "Check for a newer release when showing help or the version"},
}

func init() {
	for _, f := range fields {
		if _, exists := Default[f.Key]; exists {
			panic("duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}
