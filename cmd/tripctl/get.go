package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one trip as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	trip, err := c.GetTrip(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(trip, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
