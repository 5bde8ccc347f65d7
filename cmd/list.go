package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/catalog"
	"github.com/vimeodl/vimeodl/color"
	"github.com/vimeodl/vimeodl/icon"
	"github.com/vimeodl/vimeodl/key"
	"github.com/vimeodl/vimeodl/manifest"
	"github.com/vimeodl/vimeodl/style"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("json", "j", false, "Print the ranked catalog as JSON")
	listCmd.Flags().Bool("schema", false, "Print the JSON schema of the catalog output and exit")
	listCmd.Flags().BoolP("raw", "r", false, "Print the playlist document itself, indented")
	listCmd.MarkFlagsMutuallyExclusive("json", "schema", "raw")

	listCmd.SetOut(os.Stdout)
}

// listCmd prints the streams of a playlist without downloading them.
var listCmd = &cobra.Command{
	Use:   "list <link>",
	Short: "List the streams a playlist.json link offers",
	Args: func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			schema := jsonschema.Reflect(&catalog.Catalog{})
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(schema))
			return
		}

		link := strings.TrimSpace(args[0])
		prefix, err := manifest.Prefix(link)
		handleErr(err)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		m, err := manifest.NewFetcher().Fetch(ctx, link)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("raw")) {
			cmd.Print(string(m.Pretty(viper.GetBool(key.CliColored))))
			return
		}

		c, err := catalog.Build(prefix, m)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(c))
			return
		}

		printCatalog(cmd, c)
	},
}

func printCatalog(cmd *cobra.Command, c *catalog.Catalog) {
	for _, option := range c.Options() {
		glyph := icon.Get(icon.Video)
		if option.Variant.Kind == catalog.Audio {
			glyph = icon.Get(icon.Audio)
		}

		cmd.Printf("%s %s %s\n",
			style.Fg(color.Yellow)(fmt.Sprintf("%3d", option.Index)),
			glyph,
			option.Label,
		)
		cmd.Printf("    %s\n", style.Faint(option.URL))
	}
}
