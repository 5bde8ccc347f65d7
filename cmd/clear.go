package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vimeodl/vimeodl/history"
	"github.com/vimeodl/vimeodl/icon"
	"github.com/vimeodl/vimeodl/util"
	"github.com/vimeodl/vimeodl/where"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

func deleting(location func() string) func() error {
	return func() error {
		if err := util.Delete(location()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), deleting(where.Cache)},
	{"download history", "history", mo.Some("s"), history.Clear},
	{"scratch directory", "scratch", mo.Some("t"), deleting(where.Scratch)},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes cached and temporary data.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached data, history or leftover scratch files",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(target clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(target.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range selected {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			erase()
			handleErr(err)

			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
