package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads user input one answer at a time
type Prompter interface {
	ReadLine(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
}

// LinePrompter reads newline-terminated answers from any reader. Secrets
// are read like ordinary lines.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *LinePrompter) ReadSecret(prompt string) (string, error) {
	return p.ReadLine(prompt)
}

// Console reads from a file and hides secret input when the file is a
// terminal.
type Console struct {
	*LinePrompter
	file *os.File
}

func NewConsole(in *os.File, out io.Writer) *Console {
	return &Console{LinePrompter: NewLinePrompter(in, out), file: in}
}

func (c *Console) ReadSecret(prompt string) (string, error) {
	fd := int(c.file.Fd())
	if !term.IsTerminal(fd) {
		return c.ReadLine(prompt)
	}

	fmt.Fprint(c.out, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}
