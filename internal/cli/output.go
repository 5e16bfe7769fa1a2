package cli

import (
	"io"

	"github.com/fatih/color"
)

var (
	progressColor = color.New(color.FgCyan)
	errorColor    = color.New(color.FgRed, color.Bold)
)

// messages writes user facing status lines to stderr.
type messages struct {
	dest  io.Writer
	quiet bool
}

// progress prints msg unless quiet is set.
func (m messages) progress(format string, a ...any) {
	if m.quiet {
		return
	}
	progressColor.Fprint(m.dest, "--> ")
	progressColor.Fprintf(m.dest, format+"\n", a...)
}

// printError prints err, regardless of quiet.
func (m messages) printError(err error) {
	errorColor.Fprintf(m.dest, "Error: %s\n", err)
}
