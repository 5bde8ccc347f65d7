package tool

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/key"
)

// Dependency describes an executable that must answer its version flag.
type Dependency struct {
	Name        string
	Path        string
	VersionFlag string
	// Install is a short hint shown when the tool is missing.
	Install string
}

// Dependencies returns the configured downloader and muxer.
func Dependencies() []Dependency {
	return []Dependency{
		{
			Name:        "yt-dlp",
			Path:        viper.GetString(key.DownloaderPath),
			VersionFlag: "--version",
			Install:     "pip install yt-dlp",
		},
		{
			Name:        "ffmpeg",
			Path:        viper.GetString(key.MuxerPath),
			VersionFlag: "-version",
		},
	}
}

// Found is a dependency that answered, with the first line it printed.
type Found struct {
	Dependency
	Version string
}

// MissingError names the dependency that failed the probe.
type MissingError struct {
	Dependency Dependency
	Err        error
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s is not installed", e.Dependency.Name)
}

func (e *MissingError) Unwrap() []error {
	return []error{ErrDependencyMissing, e.Err}
}

// Probe runs every dependency with its version flag and stops at the first failure.
func Probe(ctx context.Context, deps ...Dependency) ([]Found, error) {
	found := make([]Found, 0, len(deps))

	for _, dep := range deps {
		var out bytes.Buffer
		cmd := exec.CommandContext(ctx, dep.Path, dep.VersionFlag)
		cmd.Stdout = &out
		cmd.Stderr = &out

		if err := cmd.Run(); err != nil {
			return found, &MissingError{Dependency: dep, Err: err}
		}

		version, _, _ := strings.Cut(strings.TrimSpace(out.String()), "\n")
		found = append(found, Found{Dependency: dep, Version: version})
	}

	return found, nil
}
