package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"safebak/pkg/fileops"
)

// Process exit codes. Every failure is non-zero; guarded-operation failures
// get one code per error kind.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitPathResolution = 2
	ExitNotFound       = 3
	ExitWrongFileType  = 4
	ExitExtension      = 5
	ExitAlreadyExists  = 6
	ExitIO             = 7
)

// ExitCode maps an error returned by a command onto a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch fileops.KindOf(err) {
	case fileops.KindPathResolution:
		return ExitPathResolution
	case fileops.KindNotFound:
		return ExitNotFound
	case fileops.KindWrongFileType:
		return ExitWrongFileType
	case fileops.KindExtensionMismatch:
		return ExitExtension
	case fileops.KindAlreadyExists:
		return ExitAlreadyExists
	case fileops.KindIO:
		return ExitIO
	default:
		return ExitFailure
	}
}

// printError writes "Error: <message>" to w, styled when w is a terminal.
func printError(w io.Writer, err error) {
	label := "Error:"
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		style := lipgloss.NewRenderer(w).NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
		label = style.Render(label)
	}
	fmt.Fprintf(w, "%s %v\n", label, err)
}
