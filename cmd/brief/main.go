package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/tasklist/internal/brief"
	"github.com/idilsaglam/tasklist/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printHelp()
		return 2
	}
	gen := brief.New(brief.DefaultConfig())

	switch args[0] {
	case "help", "-h", "--help":
		printHelp()
		return 0

	case "bootstrap":
		fmt.Println(gen.Bootstrap())
		return 0

	case "analyze":
		fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
		input := fs.String("input", "", "path to observations JSON")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if *input == "" {
			ui.Fail("analyze: --input is required")
			return 2
		}
		observations, err := brief.LoadObservations(*input)
		if err != nil {
			ui.Fail(err.Error())
			return 1
		}
		fmt.Println(gen.Analyze(observations))
		return 0
	}

	ui.Fail("unknown subcommand: " + args[0])
	fmt.Fprintln(os.Stderr)
	printHelp()
	return 2
}

func printHelp() {
	fmt.Printf(`brief - research brief helper

Usage:
  brief <subcommand> [args]

Subcommands:
  bootstrap              Print research scope, sources, and workflow
  analyze --input <path> Analyze a JSON list of observations

Examples:
  brief bootstrap
  brief analyze --input observations.json
`)
}
