package cli

import (
	"fmt"

	"github.com/Chandram-Dutta/rusk/internal/engine"
)

func setCommand() *Command {
	return &Command{
		Flags: newFlagSet("set"),
		Usage: "set <key> <value>",
		Short: "bind key to value",
		Exec: func(_ *IO, store *engine.Store, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("usage: rusk set <key> <value>")
			}
			return store.Set(args[0], args[1])
		},
	}
}
