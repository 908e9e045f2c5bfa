package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a trip's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavorite,
}

func runFavorite(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	trip, err := c.ToggleFavorite(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	state := "unfavorited"
	if trip.IsFavorite {
		state = "favorited"
	}
	fmt.Printf("%s %s: %s\n", trip.Title, trip.ID, state)
	return nil
}
