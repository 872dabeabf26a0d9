// Package main is the entry point for the prism application.
package main

import (
	"github.com/samber/lo"

	"github.com/prism-cli/prism/cmd"
	"github.com/prism-cli/prism/config"
	"github.com/prism-cli/prism/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
