// Package cli holds the bodies of the CRM commands. Both the cobra
// subcommands and the interactive shell dispatch here, so the permission
// chain in front of each operation runs exactly once per invocation.
package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/epicevents/crm/internal/app"
)

// Runner executes CRM operations against a wired App.
type Runner struct {
	app *app.App
	in  *bufio.Reader
	out io.Writer
}

// NewRunner builds a Runner reading prompts from stdin and printing to
// stdout.
func NewRunner(a *app.App) *Runner {
	return &Runner{
		app: a,
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// NewRunnerWithIO builds a Runner with explicit streams. Used by tests.
func NewRunnerWithIO(a *app.App, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		app: a,
		in:  bufio.NewReader(in),
		out: out,
	}
}
