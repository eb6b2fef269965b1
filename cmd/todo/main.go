package main

import (
	"fmt"
	"os"

	"github.com/idilsaglam/tasklist/internal/cli"
	"github.com/idilsaglam/tasklist/internal/config"
	"github.com/idilsaglam/tasklist/internal/ui"
)

func main() {
	cfg, args, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ui.SetTheme(cfg.UI.Theme)

	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	os.Exit(cli.Run(args, cli.FromConfig(cfg)))
}
