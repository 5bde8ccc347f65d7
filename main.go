// Package main is the entry point for vimeodl.
package main

import (
	"github.com/samber/lo"
	"github.com/vimeodl/vimeodl/cmd"
	"github.com/vimeodl/vimeodl/config"
	"github.com/vimeodl/vimeodl/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
