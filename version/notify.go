package version

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/vimeodl/vimeodl/color"
	"github.com/vimeodl/vimeodl/constant"
	"github.com/vimeodl/vimeodl/icon"
	"github.com/vimeodl/vimeodl/key"
	"github.com/vimeodl/vimeodl/style"
	"github.com/vimeodl/vimeodl/util"
)

// Notify prints a notice when a newer release exists. It does nothing unless
// the version check is enabled.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf("\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/vimeodl/vimeodl/releases/tag/v"+latest),
	)
}
