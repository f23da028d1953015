// Command kyfoofront is the thin driver that wires a parsed module's
// declarations through import linking, symbol resolution, and diagnostics
// rendering. Lexing and parsing are external collaborators: no parser is
// wired into this driver, so a Module's RootScope is still empty when
// ResolveAll runs and the module resolves trivially, which is enough to
// exercise the wiring end to end.
package main

import (
	"fmt"
	"os"

	"kyfoo/module"
	"kyfoo/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	fe := frontendFromArgs()

	reporter := report.NewReporter(fe.logLevel)
	set := module.NewSet(reporter)

	if _, err := set.NewModule(fe.rootPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := set.LinkImports(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := set.ResolveAll(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	renderDiagnostics(reporter, fe.diagFormat)

	if !reporter.ShouldProceed() {
		return 1
	}
	return 0
}

func renderDiagnostics(r *report.Reporter, format string) {
	if format == "yaml" {
		out, err := report.DumpYAML(r)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		os.Stdout.Write(out)
		return
	}
	report.Render(r)
}
