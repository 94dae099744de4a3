package tui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Status is a single-line progress indicator for a running command.
// On a terminal it animates a spinner until one of Success, Warn or Fail is called;
// elsewhere only the final line is printed.
type Status struct {
	out   io.Writer
	term  *termenv.Output
	text  string
	frame int

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// IsTerminal reports whether a reader or writer is attached to a terminal
func IsTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StartStatus begins a status line with the given text
func (s *Splog) StartStatus(text string) *Status {
	st := &Status{
		out:  s.writer,
		text: text,
	}
	if !IsTerminal(s.writer) {
		return st
	}

	st.term = termenv.NewOutput(s.writer)
	st.stop = make(chan struct{})
	st.done = make(chan struct{})
	st.draw()
	go st.animate(spinner.MiniDot)
	return st
}

func (st *Status) animate(sp spinner.Spinner) {
	defer close(st.done)
	ticker := time.NewTicker(sp.FPS)
	defer ticker.Stop()

	for {
		select {
		case <-st.stop:
			return
		case <-ticker.C:
			st.mu.Lock()
			st.frame = (st.frame + 1) % len(sp.Frames)
			st.draw()
			st.mu.Unlock()
		}
	}
}

func (st *Status) draw() {
	st.term.ClearLine()
	_, _ = fmt.Fprintf(st.out, "\r%s%s", ColorGreen(spinner.MiniDot.Frames[st.frame]), st.text)
}

// finish stops the animation and prints the final line
func (st *Status) finish(symbol, text string) {
	if st.stop != nil {
		close(st.stop)
		<-st.done
		st.stop = nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.term != nil {
		st.term.ClearLine()
		_, _ = fmt.Fprint(st.out, "\r")
	}
	_, _ = fmt.Fprintf(st.out, "%s %s\n", symbol, text)
}

// Success completes the status line with a check mark and an optional dim suffix
func (st *Status) Success(suffix string) {
	st.finish(ColorGreen("✔"), joinSuffix(st.text, suffix))
}

// Warn completes the status line with a warning sign and an optional dim suffix
func (st *Status) Warn(suffix string) {
	st.finish(ColorYellow("⚠"), joinSuffix(st.text, suffix))
}

// Fail completes the status line with a cross followed by msg
func (st *Status) Fail(msg string) {
	st.finish(ColorRed("✖"), joinSuffix(st.text, msg))
}

func joinSuffix(text, suffix string) string {
	if suffix == "" {
		return text
	}
	return text + " " + ColorDim(suffix)
}

// FormatDuration renders an elapsed time the way status lines show it
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return d.Round(time.Second).String()
	}
}
