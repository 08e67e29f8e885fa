package cli

import (
	"fmt"
	"io"
)

// IO bundles the output streams a Command writes to, so commands never touch
// os.Stdout/os.Stderr directly and stay trivially testable.
type IO struct {
	out    io.Writer
	errOut io.Writer
}

// NewIO wraps the given output and error streams.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Println writes a line to stdout.
func (o *IO) Println(a ...any) {
	fmt.Fprintln(o.out, a...)
}

// Printf writes a formatted line to stdout.
func (o *IO) Printf(format string, a ...any) {
	fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes a line to stderr.
func (o *IO) ErrPrintln(a ...any) {
	fmt.Fprintln(o.errOut, a...)
}
