package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// prompter reads values that were not given as flags from standard input.
// Labels are printed only when a person is typing; piped input is read silently.
type prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

func newPrompter(in io.Reader, out io.Writer, interactive bool) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, interactive: interactive}
}

// ask returns the next input line without its line ending. End of input
// yields an empty value so the caller reports the field as missing.
func (p *prompter) ask(label string) (string, error) {
	if p.interactive {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
