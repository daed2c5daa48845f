package cmd

import (
	"fmt"
	"strings"

	"github.com/fretwise/fretwise/constants"
	"github.com/fretwise/fretwise/fretboard"
	"github.com/fretwise/fretwise/theory"
	"github.com/fretwise/fretwise/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <preset> <root>",
	Short: "Show a chord and where its tones sit on the fretboard",
	Long: "Show a chord and where its tones sit on the fretboard.\nPresets: " +
		strings.Join(util.SortedKeys(theory.ChordPresets), ", "),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		build, ok := theory.ChordPresets[args[0]]
		if !ok {
			return fmt.Errorf("unknown chord preset %q, try one of: %v",
				args[0], strings.Join(util.SortedKeys(theory.ChordPresets), ", "))
		}
		root, err := theory.ParseNote(args[1])
		if err != nil {
			return err
		}

		chord := build(root)
		fmt.Printf("%v Chord: %v\n\n", chord.Name, joinNoteNames(chord.Notes()))

		fb := fretboard.New(constants.DefaultFrets)
		out, err := fb.Render(0, 12, fb.Highlight(chord.Notes()))
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}
