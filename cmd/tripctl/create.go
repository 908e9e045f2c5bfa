package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clemv/trip-journal/client"
)

var (
	createTitle       string
	createDestination string
	createStart       string
	createEnd         string
	createDescription string
	createImage       string
	createPhotos      []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a trip",
	Args:  cobra.NoArgs,
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "Trip title (required)")
	createCmd.Flags().StringVar(&createDestination, "destination", "", `Destination, e.g. "Paris, France" (required)`)
	createCmd.Flags().StringVar(&createStart, "start", "", "Start date, YYYY-MM-DD (required)")
	createCmd.Flags().StringVar(&createEnd, "end", "", "End date, YYYY-MM-DD (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Free-text description")
	createCmd.Flags().StringVar(&createImage, "image", "", "Cover image URL or symbolic key")
	createCmd.Flags().StringArrayVar(&createPhotos, "photo", nil, "Photo URL (repeatable)")

	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("destination")
	_ = createCmd.MarkFlagRequired("start")
	_ = createCmd.MarkFlagRequired("end")
}

func runCreate(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	created, err := c.CreateTrip(cmd.Context(), client.NewTrip{
		Title:       createTitle,
		Destination: createDestination,
		StartDate:   createStart,
		EndDate:     createEnd,
		Description: createDescription,
		Image:       createImage,
		Photos:      createPhotos,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created trip %s\n", created.ID)
	return nil
}
