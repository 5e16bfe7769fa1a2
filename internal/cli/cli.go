// Package cli implements the command-line interface
// of the people demo.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/tableview/csvtable"
	"github.com/domonda/tableview/htmltable"
	"github.com/domonda/tableview/internal/people"
	"github.com/domonda/tableview/tui"
)

// ErrInvalidFormat is returned for an unknown --format value.
var ErrInvalidFormat = errors.New("invalid format")

// Format of the rendered table.
type Format string

const (
	FormatTUI  Format = "tui"
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatCSV  Format = "csv"
)

// ParseFormat returns the Format for str.
// An empty str results in the default format
// for the passed terminal state of stdout.
func ParseFormat(str string, stdoutIsTerminal bool) (Format, error) {
	switch Format(strings.ToLower(str)) {
	case "":
		if stdoutIsTerminal {
			return FormatTUI, nil
		}
		return FormatText, nil
	case FormatTUI:
		return FormatTUI, nil
	case FormatText:
		return FormatText, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w %q (must be one of tui, text, html, csv)", ErrInvalidFormat, str)
}

// Options of the people command.
type Options struct {
	Format  string
	Output  string
	Width   int
	Charset string
	Quiet   bool
}

// version is set at build time.
var version = "development version"

// DoCLI reads the command-line arguments, runs the
// people command, and exits the process with 1 on error.
func DoCLI() {
	err := NewCommand(os.Stdout, os.Stderr).ExecuteContext(context.Background())
	if err != nil {
		messages{dest: os.Stderr}.printError(err)
		os.Exit(1)
	}
}

// NewCommand returns the root command writing to stdout and stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:           "people",
		Short:         "Show a table of people",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, stdout, messages{dest: stderr, quiet: opts.Quiet})
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().SortFlags = false
	cmd.Flags().StringVarP(
		&opts.Format, "format", "f", "", `output format ("tui", "text", "html", or "csv"), defaults to "tui" for terminals and "text" else`,
	)
	cmd.Flags().StringVarP(
		&opts.Output, "output", "o", "", "write to this file instead of stdout",
	)
	cmd.Flags().IntVar(
		&opts.Width, "width", 100, "render width in terminal cells for the text format",
	)
	cmd.Flags().StringVar(
		&opts.Charset, "charset", "UTF-8", "character set of the csv format",
	)
	cmd.Flags().BoolVarP(
		&opts.Quiet, "quiet", "q", false, "don't show progress messages",
	)
	return cmd
}

// run renders the people app as configured by opts.
func run(ctx context.Context, opts Options, stdout io.Writer, msg messages) error {
	format, err := ParseFormat(opts.Format, isTerminal(stdout))
	if err != nil {
		return err
	}
	if format == FormatTUI {
		if opts.Output != "" {
			return fmt.Errorf("%w: tui can't be written to a file", ErrInvalidFormat)
		}
		return tui.Run(ctx, people.NewApplication, tui.WithAltScreen(), tui.WithWidth(opts.Width))
	}

	var buf bytes.Buffer
	err = render(ctx, &buf, format, opts)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	file := fs.File(opts.Output)
	err = file.WriteAll(buf.Bytes())
	if err != nil {
		return fmt.Errorf("can't write %s: %w", file.LocalPath(), err)
	}
	msg.progress("wrote %s output to %s", format, file.LocalPath())
	return nil
}

func render(ctx context.Context, dest io.Writer, format Format, opts Options) error {
	app, _ := people.New()
	switch format {
	case FormatText:
		_, err := io.WriteString(dest, tui.Render(app.View(), opts.Width)+"\n")
		return err
	case FormatHTML:
		return htmltable.NewWriter().Write(ctx, dest, app.Table())
	case FormatCSV:
		writer, err := csvtable.NewWriter().WithHeaderRow(true).WithCharset(opts.Charset)
		if err != nil {
			return err
		}
		return writer.Write(ctx, dest, app.Table())
	}
	return fmt.Errorf("%w %q", ErrInvalidFormat, format)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
