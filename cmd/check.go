package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/vimeodl/vimeodl/color"
	"github.com/vimeodl/vimeodl/icon"
	"github.com/vimeodl/vimeodl/style"
	"github.com/vimeodl/vimeodl/tool"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetOut(os.Stdout)
}

// checkCmd verifies that the downloader and the muxer can be run.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that yt-dlp and ffmpeg are installed",
	Run: func(cmd *cobra.Command, args []string) {
		var failed bool

		for _, dep := range tool.Dependencies() {
			found, err := tool.Probe(context.Background(), dep)
			if err != nil {
				failed = true
				printMissingDependency(cmd.OutOrStdout(), dep)
				continue
			}

			cmd.Printf("%s %s %s\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				style.Bold(dep.Name),
				style.Faint(found[0].Version),
			)
		}

		if failed {
			handleErr(tool.ErrDependencyMissing)
		}
	},
}

// installHint returns how dep can be installed on this platform.
func installHint(dep tool.Dependency) string {
	if dep.Install != "" {
		return dep.Install
	}

	switch runtime.GOOS {
	case "darwin":
		return "brew install " + dep.Name
	case "windows":
		return "scoop install " + dep.Name
	default:
		return "your system's package manager"
	}
}

func printMissingDependency(w io.Writer, dep tool.Dependency) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s %s is not installed", icon.Get(icon.Fail), dep.Name))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The executable '%s' could not be run.", dep.Path))
	suggestion := fmt.Sprintf("Install using: %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installHint(dep)))

	fmt.Fprintln(w, box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			body,
			"",
			suggestion,
		),
	))
}
