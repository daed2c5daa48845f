package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretwise",
	Short: "Guitar music theory companion",
	Long:  `Explore notes, scales, chords and progressions on a guitar fretboard from the terminal.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
