package cmd

import (
	"fmt"

	"github.com/fretwise/fretwise/theory"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(intervalsCmd)
}

var intervalsCmd = &cobra.Command{
	Use:   "intervals",
	Short: "List the common intervals and their semitone distances",
	Run: func(cmd *cobra.Command, args []string) {
		for _, iv := range theory.Intervals {
			fmt.Printf("  %2v  %v\n", iv.Semitones, iv.Name)
		}
	},
}
