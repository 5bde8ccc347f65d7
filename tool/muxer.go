package tool

import (
	"context"
	"io"
	"os"

	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/key"
)

// Muxer combines a video and an audio file without re-encoding.
type Muxer struct {
	Path   string
	Stdout io.Writer
	Stderr io.Writer
}

// NewMuxer configures a Muxer from muxer.path, attached to the terminal.
func NewMuxer() *Muxer {
	return &Muxer{
		Path:   viper.GetString(key.MuxerPath),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Args builds a stream-copy command line that overwrites output.
func (m *Muxer) Args(video, audio, output string) []string {
	return []string{
		"-v", "quiet",
		"-stats",
		"-y",
		"-i", video,
		"-i", audio,
		"-c", "copy",
		output,
	}
}

// Mux blocks until the muxer exits.
func (m *Muxer) Mux(ctx context.Context, video, audio, output string) Result {
	return run(ctx, m.Path, m.Args(video, audio, output), m.Stdout, m.Stderr)
}
