package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"kyfoo/report"
)

// frontend is the parsed command line: the module root to resolve plus the
// diagnostics knobs (log level, render format, debug flag), grounded on the
// teacher's cmd.Execute/olive.NewCLI wiring.
type frontend struct {
	rootPath   string
	logLevel   int
	diagFormat string
	debug      bool
}

func argumentError(err error) {
	fmt.Fprintln(os.Stderr, "argument error:", err)
	os.Exit(1)
}

// frontendFromArgs builds the olive CLI description and parses os.Args
// against it. kyfoofront has no subcommands — a module root plus a handful
// of top-level options is the whole surface — so everything is added
// directly to the CLI the way the teacher adds its top-level "loglevel"
// selector directly to cli rather than to a subcommand.
func frontendFromArgs() *frontend {
	cli := olive.NewCLI("kyfoofront", "kyfoofront resolves a kyfoo module and reports its diagnostics", true)

	llArg := cli.AddSelectorArg("loglevel", "ll", "the diagnostics log level", false,
		[]string{"silent", "error", "warn", "verbose"})
	llArg.SetDefaultValue("verbose")

	dfArg := cli.AddSelectorArg("diagformat", "df", "the diagnostics render format", false,
		[]string{"text", "yaml"})
	dfArg.SetDefaultValue("text")

	cli.AddFlag("debug", "d", "whether the front end should output debug information")
	cli.AddPrimaryArg("module-path", "the path to the module root to resolve", true)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		argumentError(err)
	}

	rootArg, _ := result.PrimaryArg()
	absPath, err := filepath.Abs(rootArg)
	if err != nil {
		argumentError(fmt.Errorf("invalid module root %q: %w", rootArg, err))
	}

	fe := &frontend{
		rootPath:   absPath,
		diagFormat: result.Arguments["diagformat"].(string),
		debug:      result.HasFlag("debug"),
	}

	switch result.Arguments["loglevel"].(string) {
	case "silent":
		fe.logLevel = report.LogLevelSilent
	case "error":
		fe.logLevel = report.LogLevelError
	case "warn":
		fe.logLevel = report.LogLevelWarn
	default:
		fe.logLevel = report.LogLevelVerbose
	}

	return fe
}
