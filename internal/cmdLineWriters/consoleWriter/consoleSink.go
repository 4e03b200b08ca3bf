package consolewriter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ConsoleSink prints tracker diagnostics as they happen.
type ConsoleSink struct {
	out io.Writer
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

func (s *ConsoleSink) Warn(message string) {
	fmt.Fprintf(s.out, "\n%s %s", color.YellowString("WARN:"), message)
}

func (s *ConsoleSink) Error(message string) {
	fmt.Fprintf(s.out, "\n%s %s", color.RedString("ERROR:"), message)
}
