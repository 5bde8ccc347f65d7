package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vimeodl/vimeodl/color"
	"github.com/vimeodl/vimeodl/history"
	"github.com/vimeodl/vimeodl/icon"
	"github.com/vimeodl/vimeodl/style"
	"github.com/vimeodl/vimeodl/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	historyCmd.Flags().IntP("limit", "n", 0, "Show at most this many records")

	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists finished downloads, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished downloads",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.Get()
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && limit < len(records) {
			records = records[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("No downloads yet"))
			return
		}

		cmd.Println(style.Faint(util.Quantify(len(records), "download", "downloads")))
		for _, r := range records {
			cmd.Printf("\n%s %s %s\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				style.Bold(r.Title),
				style.Faint(r.SavedAt.Format("2006-01-02 15:04")),
			)
			cmd.Printf("  %s %s  %s %s\n", icon.Get(icon.Video), r.Video, icon.Get(icon.Audio), r.Audio)
			cmd.Printf("  %s\n", style.Fg(color.Yellow)(r.Output))
		}
	},
}
