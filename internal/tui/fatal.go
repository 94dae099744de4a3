package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	glittererrors "glitter.dev/glitter/internal/errors"
)

// PrintFatal writes an unrecoverable error the way the operator sees it:
// a red Fatal label, the message, and for failed commands their captured output.
func PrintFatal(w io.Writer, err error) {
	var invalid *glittererrors.InvalidEnumValueError
	if errors.As(err, &invalid) {
		_, _ = fmt.Fprintf(w, "%s Argument %d did not have a valid type enum. Valid type enums are %s\n",
			FatalLabel(), invalid.Index, ColorRed(strings.Join(invalid.Allowed, ", ")))
		return
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", FatalLabel(), err.Error())

	var cmdErr *glittererrors.CommandError
	if errors.As(err, &cmdErr) {
		if out := strings.TrimRight(cmdErr.Stdout, "\n"); out != "" {
			_, _ = fmt.Fprintln(w, out)
		}
		if out := strings.TrimRight(cmdErr.Stderr, "\n"); out != "" {
			_, _ = fmt.Fprintln(w, out)
		}
	}
}
