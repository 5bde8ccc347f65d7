// Package cmd implements the command-line interface for vimeodl.
package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vimeodl/vimeodl/color"
	"github.com/vimeodl/vimeodl/constant"
	"github.com/vimeodl/vimeodl/history"
	"github.com/vimeodl/vimeodl/icon"
	"github.com/vimeodl/vimeodl/key"
	"github.com/vimeodl/vimeodl/log"
	"github.com/vimeodl/vimeodl/manifest"
	"github.com/vimeodl/vimeodl/open"
	"github.com/vimeodl/vimeodl/pipeline"
	"github.com/vimeodl/vimeodl/prompt"
	"github.com/vimeodl/vimeodl/selection"
	"github.com/vimeodl/vimeodl/style"
	"github.com/vimeodl/vimeodl/tool"
	"github.com/vimeodl/vimeodl/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().StringP("auto", "a", selection.Automatic.String(), "Pick the best streams automatically (yes) or choose them by number (no)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("auto", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return selection.Modes(), cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.Flags().StringP("link", "l", "", "The playlist.json link; asked for when omitted")
	rootCmd.Flags().StringP("title", "t", "", "Title used in the output filename; asked for when omitted")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().Bool("strict", false, "Only mux when both downloads succeeded")
	lo.Must0(viper.BindPFlag(key.DownloadStrict, rootCmd.Flags().Lookup("strict")))

	rootCmd.Flags().Bool("no-pause", false, "Exit without waiting for Enter")
	rootCmd.Flags().BoolP("open", "o", false, "Open the finished file with the default application")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd downloads one video from a playlist.json link.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Download a Vimeo video from its v2 playlist.json link",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Download a Vimeo video from its v2 playlist.json link"),
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if lo.Must(cmd.Flags().GetBool("no-pause")) {
			viper.Set(key.CliPauseOnExit, false)
		}

		mode, err := selection.ParseMode(lo.Must(cmd.Flags().GetString("auto")))
		handleErr(err)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		prompt.Banner(os.Stdout)

		options := pipeline.Options{
			Mode:          mode,
			Link:          strings.TrimSpace(lo.Must(cmd.Flags().GetString("link"))),
			Title:         lo.Must(cmd.Flags().GetString("title")),
			Strict:        viper.GetBool(key.DownloadStrict),
			SanitizeTitle: viper.GetBool(key.DownloadSanitizeFilenames),
		}

		report, err := pipeline.Run(ctx, options, defaultDeps())
		handleErr(err)
		log.Infof("finished %s", report.Output)

		if lo.Must(cmd.Flags().GetBool("open")) && report.Output != "" {
			if err := open.Start(report.Output); err != nil {
				log.Warn(err)
				prompt.Error(os.Stdout, err)
			}
		}

		prompt.Pause()
	},
}

func defaultDeps() pipeline.Deps {
	deps := pipeline.Deps{
		Layout:     pipeline.DefaultLayout(),
		Prompter:   prompt.Survey{},
		Manifests:  manifest.NewFetcher(),
		Downloader: tool.NewDownloader(),
		Muxer:      tool.NewMuxer(),
		Out:        os.Stdout,
		Probe: func(ctx context.Context) error {
			_, err := tool.Probe(ctx, tool.Dependencies()...)
			return err
		},
	}

	if viper.GetBool(key.HistorySave) {
		deps.Remember = history.Save
	}

	return deps
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	handleErr(rootCmd.Execute())
}

// reportErr logs err, prints it to w and waits for Enter when configured.
func reportErr(w io.Writer, err error) {
	log.Error(err)

	var missing *tool.MissingError
	if errors.As(err, &missing) {
		printMissingDependency(w, missing.Dependency)
	} else {
		prompt.Error(w, err)
	}

	prompt.Pause()
}

// handleErr reports a non-nil err and exits with status 1.
func handleErr(err error) {
	if err == nil {
		return
	}

	reportErr(os.Stdout, err)
	os.Exit(1)
}
