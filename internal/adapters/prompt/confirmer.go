// Package prompt implements the interactive between-packages confirmer.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/autoslice/internal/core/ports"
	"go.trai.ch/zerr"
)

// Confirmer implements ports.Confirmer over an input/output pair,
// normally stdin and stderr. The reader is injected so the core loop
// stays testable without a terminal.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a new Confirmer reading answers from in and writing the
// prompt to out.
func New(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out}
}

// Continue asks whether to proceed with the named next package. An empty
// answer continues, "q" quits, anything else is invalid.
func (c *Confirmer) Continue(next string) (ports.Decision, error) {
	fmt.Fprintf(c.out, "Press ENTER to continue on %s, 'q ENTER' to quit: ", next)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return ports.DecisionQuit, zerr.Wrap(err, "failed to read confirmation")
	}

	switch strings.TrimSpace(line) {
	case "":
		return ports.DecisionContinue, nil
	case "q":
		return ports.DecisionQuit, nil
	default:
		return ports.DecisionInvalid, nil
	}
}
