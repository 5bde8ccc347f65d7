package tool

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/key"
)

// Downloader fetches one stream URL into a local file.
type Downloader struct {
	Path        string
	Concurrency int
	Stdout      io.Writer
	Stderr      io.Writer
}

// NewDownloader configures a Downloader from downloader.* keys, attached to the terminal.
func NewDownloader() *Downloader {
	return &Downloader{
		Path:        viper.GetString(key.DownloaderPath),
		Concurrency: viper.GetInt(key.DownloaderConcurrency),
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

// Args builds the command line for a single stream.
func (d *Downloader) Args(url, output string) []string {
	return []string{
		"-N", strconv.Itoa(d.Concurrency),
		"--no-warning",
		"--no-check-certificate",
		"-o", output,
		url,
	}
}

// Download blocks until the downloader exits.
func (d *Downloader) Download(ctx context.Context, url, output string) Result {
	return run(ctx, d.Path, d.Args(url, output), d.Stdout, d.Stderr)
}
