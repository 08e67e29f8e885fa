package cli

import (
	"errors"
	"strings"

	"github.com/Chandram-Dutta/rusk/internal/engine"
	flag "github.com/spf13/pflag"
)

// Command defines one CLI subcommand with unified flag handling and help
// generation, following this lineage's own Command pattern: command identity
// comes from the first word of Usage, not from the FlagSet's name.
type Command struct {
	// Flags holds command-specific flags. Every command gets at least
	// -h/--help for free via pflag's own handling.
	Flags *flag.FlagSet

	// Usage is the freeform usage string shown after "rusk" in help, e.g.
	// "set <key> <value>".
	Usage string

	// Short is a one-line description of the command. The top-level usage
	// text printed by printUsage is written out separately and does not read
	// this field.
	Short string

	// Exec runs the command body against the already-open store. args are
	// the positional arguments left over after flag parsing.
	Exec func(o *IO, store *engine.Store, args []string) error
}

// Name returns the command name (the first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// Run parses flags and executes Exec against store, returning a process exit
// code. Flag- and execution-errors are printed to stderr here so every
// command produces consistently ordered output.
func (c *Command) Run(o *IO, store *engine.Store, args []string) int {
	c.Flags.SetOutput(&strings.Builder{}) // discard pflag's own usage printing

	if err := c.Flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			o.Println("Usage: rusk", c.Usage)
			return 0
		}
		o.ErrPrintln("error:", err)
		return 1
	}

	if err := c.Exec(o, store, c.Flags.Args()); err != nil {
		o.ErrPrintln(err)
		return 1
	}
	return 0
}
