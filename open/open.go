// Package open hands a file to the platform's default application.
package open

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/vimeodl/vimeodl/constant"
)

// ErrUnsupportedOS is returned on platforms without a known opener.
var ErrUnsupportedOS = errors.New("no default opener for " + runtime.GOOS)

// Command returns the command that opens target on goos.
func Command(goos, target string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", target), nil
	case constant.Darwin:
		return exec.Command("open", target), nil
	case constant.Linux:
		return exec.Command("xdg-open", target), nil
	case constant.Android:
		return exec.Command("termux-open", target), nil
	default:
		return nil, ErrUnsupportedOS
	}
}

// Start opens target without waiting for the application to exit.
func Start(target string) error {
	cmd, err := Command(runtime.GOOS, target)
	if err != nil {
		return err
	}
	return cmd.Start()
}
