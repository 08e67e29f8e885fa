package cli

import (
	"fmt"

	"github.com/Chandram-Dutta/rusk/internal/engine"
)

func compactCommand() *Command {
	return &Command{
		Flags: newFlagSet("compact"),
		Usage: "compact",
		Short: "rewrite the log to reclaim space",
		Exec: func(o *IO, store *engine.Store, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("usage: rusk compact")
			}
			if err := store.Compact(); err != nil {
				return err
			}
			o.Println("Compaction complete")
			return nil
		},
	}
}
