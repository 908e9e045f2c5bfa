// Command tripctl is a small CLI over the Trip Journal API, useful for
// poking at a running server without the mobile app.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var serverFlag string

var rootCmd = &cobra.Command{
	Use:   "tripctl",
	Short: "Trip Journal CLI – list, create and favorite trips from the terminal",
	Long: `tripctl drives the Trip Journal REST API.
The server URL and a saved bearer token are read from ~/.tripctl.yaml;
--server overrides the configured URL. Run "tripctl login" first to store
a token.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "server base URL (overrides config file)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(loginCmd)
}
