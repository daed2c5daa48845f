package cmd

import (
	"fmt"

	"github.com/fretwise/fretwise/constants"
	"github.com/fretwise/fretwise/fretboard"
	"github.com/spf13/cobra"
)

var (
	fretboardStart int
	fretboardEnd   int
	fretboardFrets int
)

func init() {
	fretboardCmd.Flags().IntVar(&fretboardStart, "start", 0, "first fret to show")
	fretboardCmd.Flags().IntVar(&fretboardEnd, "end", 12, "last fret to show")
	fretboardCmd.Flags().IntVar(&fretboardFrets, "frets", constants.DefaultFrets, "number of frets on the board")
	rootCmd.AddCommand(fretboardCmd)
}

var fretboardCmd = &cobra.Command{
	Use:   "fretboard",
	Short: "Print the fretboard in standard tuning",
	RunE: func(cmd *cobra.Command, args []string) error {
		fb := fretboard.New(fretboardFrets)
		out, err := fb.Render(fretboardStart, fretboardEnd, nil)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}
