// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/constant"
	"github.com/vimeodl/vimeodl/filesystem"
	"github.com/vimeodl/vimeodl/key"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "VIMEODL_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden via the VIMEODL_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the download history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Workspace resolves the root under which downloads are staged and stored.
// It is not created; Prepare in the pipeline package owns its layout.
func Workspace() string {
	return viper.GetString(key.PathsWorkspace)
}

// Bin resolves the executables directory inside the workspace.
func Bin() string {
	return filepath.Join(Workspace(), "bin")
}

// Scratch resolves the temporary directory holding downloaded streams before muxing.
func Scratch() string {
	return filepath.Join(Workspace(), "Downloads", "Temp")
}

// Finished resolves the directory receiving muxed output files.
func Finished() string {
	return filepath.Join(Workspace(), "Downloads", "Finished", "Vimeo")
}
