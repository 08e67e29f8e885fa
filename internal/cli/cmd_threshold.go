package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Chandram-Dutta/rusk/internal/config"
	"github.com/Chandram-Dutta/rusk/internal/engine"
)

// setThresholdCommand is a maintenance subcommand with no equivalent in the
// original distilled spec: it rewrites the store directory's config.json so
// future opens use a different compaction threshold, without touching the
// already-open store's in-memory setting for the current invocation.
func setThresholdCommand() *Command {
	return &Command{
		Flags: newFlagSet("set-threshold"),
		Usage: "set-threshold <bytes>",
		Short: "override the compaction threshold persisted in config.json",
		Exec: func(o *IO, _ *engine.Store, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: rusk set-threshold <bytes>")
			}

			bytes, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || bytes <= 0 {
				return fmt.Errorf("invalid threshold: %s", args[0])
			}

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			cfg, err := config.Load(cwd)
			if err != nil {
				return err
			}
			cfg.CompactionThresholdBytes = bytes

			if err := config.Save(cwd, cfg); err != nil {
				return err
			}

			o.Println("Threshold updated")
			return nil
		},
	}
}
