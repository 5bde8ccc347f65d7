package manifest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/constant"
	"github.com/vimeodl/vimeodl/key"
	"github.com/vimeodl/vimeodl/log"
	"github.com/vimeodl/vimeodl/network"
	"github.com/vimeodl/vimeodl/util"
)

// maxBodySize caps the manifest body; real playlists are a few hundred kilobytes.
const maxBodySize = 64 << 20

// Fetcher downloads and parses manifests.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
	// Progress receives a byte progress bar while the body downloads. Nil hides it.
	Progress io.Writer
}

// NewFetcher builds a Fetcher from the network and cli configuration.
func NewFetcher() *Fetcher {
	f := &Fetcher{
		Client:    network.New(network.FromConfig()),
		UserAgent: viper.GetString(key.NetworkUserAgent),
	}

	if viper.GetBool(key.CliProgress) {
		f.Progress = os.Stderr
	}

	return f
}

// Fetch performs a GET on link and parses the body.
func (f *Fetcher) Fetch(ctx context.Context, link string) (*Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("create manifest request: %w", err)
	}

	userAgent := f.UserAgent
	if userAgent == "" {
		userAgent = constant.UserAgent
	}
	req.Header.Set("Accept", constant.Accept)
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := f.read(resp)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	log.Debugf("manifest received: %d bytes", len(body))

	return Parse(body)
}

func (f *Fetcher) read(resp *http.Response) ([]byte, error) {
	out := f.Progress
	if out == nil {
		out = io.Discard
	}

	bar := progressbar.NewOptions64(
		resp.ContentLength,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetVisibility(f.Progress != nil),
		progressbar.OptionSetDescription("manifest"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), io.LimitReader(resp.Body, maxBodySize)); err != nil {
		return nil, err
	}
	_ = bar.Finish()

	return buf.Bytes(), nil
}
