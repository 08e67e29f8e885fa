package cli

import (
	"fmt"

	"github.com/Chandram-Dutta/rusk/internal/engine"
)

func getCommand() *Command {
	return &Command{
		Flags: newFlagSet("get"),
		Usage: "get <key>",
		Short: "print the value bound to key",
		Exec: func(o *IO, store *engine.Store, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: rusk get <key>")
			}

			value, ok, err := store.Get(args[0])
			if err != nil {
				return err
			}
			if !ok {
				o.Println("Key not found")
				return nil
			}
			o.Println(value)
			return nil
		},
	}
}
