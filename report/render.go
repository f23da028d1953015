package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Render prints recorded messages to the terminal, colorized by severity,
// in the manner of the teacher's cmd driver, gated by the Reporter's log
// level: LogLevelSilent prints nothing, LogLevelError prints only errors,
// and LogLevelWarn/LogLevelVerbose print every message.  It is ambient
// console tooling, not part of the core resolution path.
func Render(r *Reporter) {
	for _, msg := range r.Messages() {
		if r.logLevel == LogLevelSilent {
			return
		}
		if r.logLevel == LogLevelError && !msg.IsError {
			continue
		}
		renderOne(msg, 0)
	}
}

func renderOne(msg *Message, indent int) {
	prefix := pterm.FgRed.Sprint("error")
	if !msg.IsError {
		prefix = pterm.FgYellow.Sprint("note")
	}

	loc := ""
	if msg.Position != nil {
		loc = fmt.Sprintf(":%d:%d", msg.Position.StartLn+1, msg.Position.StartCol+1)
	}

	pterm.Printfln("%s%s: %s: %s", msg.Module, loc, prefix, msg.Text)

	for _, see := range msg.SeeAlso {
		pterm.Printfln("    %s %s", pterm.FgGray.Sprint("see:"), see.Text)
	}
}
