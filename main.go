// Package main is the entry point for castlist.
package main

import (
	"github.com/castlist-cli/castlist/cmd"
	"github.com/castlist-cli/castlist/config"
	"github.com/castlist-cli/castlist/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
