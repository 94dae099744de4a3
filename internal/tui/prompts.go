package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	glittererrors "glitter.dev/glitter/internal/errors"
)

// Prompter gates side effects behind an operator confirmation
type Prompter interface {
	// Confirm blocks until the operator submits a line. Any error means the flow must stop.
	Confirm(ctx context.Context, message string) error
}

// LinePrompter confirms by reading one line of input.
// When both ends are terminals the line is read through a survey prompt.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// NewStdinPrompter creates a prompter reading from stdin
func NewStdinPrompter() *LinePrompter {
	return &LinePrompter{In: os.Stdin, Out: os.Stdout}
}

// Confirm waits for a single line of input. End of input, an interrupt or a
// cancelled context abort with ErrConfirmationAborted.
func (p *LinePrompter) Confirm(ctx context.Context, message string) error {
	if in, ok := p.In.(terminal.FileReader); ok && IsTerminal(in) && IsTerminal(p.Out) {
		return p.confirmInteractive(ctx, in, message)
	}
	return p.confirmLine(ctx)
}

func (p *LinePrompter) confirmInteractive(ctx context.Context, in terminal.FileReader, message string) error {
	out, ok := p.Out.(terminal.FileWriter)
	if !ok {
		return p.confirmLine(ctx)
	}

	var answer string
	prompt := &survey.Input{Message: message}
	if err := survey.AskOne(prompt, &answer, survey.WithStdio(in, out, os.Stderr)); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return glittererrors.ErrConfirmationAborted
		}
		return fmt.Errorf("%w: %v", glittererrors.ErrConfirmationAborted, err)
	}
	return nil
}

func (p *LinePrompter) confirmLine(ctx context.Context) error {
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := bufio.NewReader(p.In).ReadString('\n')
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", glittererrors.ErrConfirmationAborted, ctx.Err())
	case res := <-ch:
		if res.err == nil || (errors.Is(res.err, io.EOF) && res.line != "") {
			return nil
		}
		if errors.Is(res.err, io.EOF) {
			return glittererrors.ErrConfirmationAborted
		}
		return fmt.Errorf("%w: %v", glittererrors.ErrConfirmationAborted, res.err)
	}
}
