package cli

import (
	"fmt"

	"github.com/Chandram-Dutta/rusk/internal/engine"
)

func rmCommand() *Command {
	return &Command{
		Flags: newFlagSet("rm"),
		Usage: "rm <key>",
		Short: "remove key's binding",
		Exec: func(_ *IO, store *engine.Store, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: rusk rm <key>")
			}
			return store.Remove(args[0])
		},
	}
}
