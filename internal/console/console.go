package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console implements interfaces.Console over a buffered reader and a
// writer, one line per exchange.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Prompt prints the label and reads one input line. The trailing
// newline is stripped; a final unterminated line is still returned.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Print writes one line of text.
func (c *Console) Print(text string) {
	fmt.Fprintln(c.out, text)
}

// Printf writes formatted text.
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
