// Package prompt reads line-oriented answers from a terminal or a pipe.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	colorReset = "\033[0m"
	colorBlue  = "\033[34m"
)

type Prompter struct {
	r     *bufio.Reader
	out   io.Writer
	fd    int
	tty   bool
	color bool
}

// New returns a Prompter reading answers from in and writing labels to out.
// Masked input and colored labels are only used when in and out are terminals.
func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{r: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.tty = true
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == "" {
		p.color = true
	}
	return p
}

// Ask writes label and returns the line typed in response without its
// line terminator. End of input yields whatever was typed before it.
func (p *Prompter) Ask(label string) (string, error) {
	p.writeLabel(label)
	line, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("prompt.Ask: failed to read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskSecret behaves like Ask but does not echo when reading from a terminal.
func (p *Prompter) AskSecret(label string) (string, error) {
	// Buffered bytes mean input was pasted ahead; the raw fd would skip them.
	if !p.tty || p.r.Buffered() > 0 {
		return p.Ask(label)
	}
	p.writeLabel(label)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("prompt.AskSecret: failed to read answer: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func (p *Prompter) writeLabel(label string) {
	if p.color {
		fmt.Fprint(p.out, colorBlue+label+colorReset)
		return
	}
	fmt.Fprint(p.out, label)
}
