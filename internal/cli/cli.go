// Package cli is the thin command-line shell over the engine package: four
// subcommands plus a maintenance command to adjust the compaction threshold,
// argument parsing, and process-exit conventions. None of the storage
// invariants live here.
package cli

import (
	"io"
	"os"

	"github.com/Chandram-Dutta/rusk/internal/config"
	"github.com/Chandram-Dutta/rusk/internal/engine"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Run is the CLI's entry point. It opens a Store rooted at the current
// working directory, dispatches args[1] (args[0] is the program name) to the
// matching Command, and returns a process exit code. stdin is accepted for symmetry with this lineage's
// Run signature but unused: every rusk subcommand is fully specified by its
// arguments.
func Run(_ io.Reader, stdout, stderr io.Writer, args []string) int {
	o := NewIO(stdout, stderr)

	if len(args) < 2 {
		printUsage(o)
		return 1
	}

	cwd, err := os.Getwd()
	if err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}

	logger := zap.NewNop().Sugar()

	cfg, err := config.Load(cwd)
	if err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}

	var opts []engine.Option
	opts = append(opts, engine.WithLogger(logger))
	if cfg.CompactionThresholdBytes > 0 {
		opts = append(opts, engine.WithCompactionThreshold(cfg.CompactionThresholdBytes))
	}

	store, err := engine.Open(cwd, opts...)
	if err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}
	defer store.Close()

	commands := allCommands()

	name := args[1]
	cmd, ok := commands[name]
	if !ok {
		o.ErrPrintln("error: unknown command:", name)
		printUsage(o)
		return 1
	}

	return cmd.Run(o, store, args[2:])
}

func allCommands() map[string]*Command {
	cmds := []*Command{
		setCommand(),
		getCommand(),
		rmCommand(),
		compactCommand(),
		setThresholdCommand(),
	}

	byName := make(map[string]*Command, len(cmds))
	for _, c := range cmds {
		byName[c.Name()] = c
	}
	return byName
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func printUsage(o *IO) {
	o.ErrPrintln("usage: rusk <command> [arguments]")
	o.ErrPrintln()
	o.ErrPrintln("commands:")
	o.ErrPrintln("  set <key> <value>      bind key to value")
	o.ErrPrintln("  get <key>              print the value bound to key")
	o.ErrPrintln("  rm <key>               remove key's binding")
	o.ErrPrintln("  compact                rewrite the log to reclaim space")
	o.ErrPrintln("  set-threshold <bytes>  override the compaction threshold")
}
