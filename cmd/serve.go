package cmd

import (
	"fmt"

	"github.com/fretwise/fretwise/server"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve scales, chords and the fretboard as a JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Listening on %v\n", serveAddr)
		return server.ListenAndServe(serveAddr)
	},
}
