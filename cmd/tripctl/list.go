package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clemv/trip-journal/client"
)

var listFavorites bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List trips",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "Show only favorited trips")
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	trips, err := c.ListTrips(cmd.Context())
	if err != nil {
		return err
	}

	// The server has no filter surface; favorites are filtered here, the
	// same way the mobile app does it.
	if listFavorites {
		kept := trips[:0]
		for _, t := range trips {
			if t.IsFavorite {
				kept = append(kept, t)
			}
		}
		trips = kept
	}

	printTrips(trips)
	return nil
}

func printTrips(trips []client.Trip) {
	if len(trips) == 0 {
		fmt.Println("No trips found.")
		return
	}
	for _, t := range trips {
		star := " "
		if t.IsFavorite {
			star = "*"
		}
		fmt.Printf("%s %s  %s  %s → %s  (%s)\n", star, t.ID, t.Title, t.StartDate, t.EndDate, t.Destination)
	}
}
