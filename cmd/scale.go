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
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <preset> <root>",
	Short: "Show a scale and where it sits on the fretboard",
	Long: "Show a scale and where it sits on the fretboard.\nPresets: " +
		strings.Join(util.SortedKeys(theory.ScalePresets), ", "),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		build, ok := theory.ScalePresets[args[0]]
		if !ok {
			return fmt.Errorf("unknown scale preset %q, try one of: %v",
				args[0], strings.Join(util.SortedKeys(theory.ScalePresets), ", "))
		}
		root, err := theory.ParseNote(args[1])
		if err != nil {
			return err
		}

		scale := build(root)
		fmt.Printf("%v Scale: %v\n\n", scale.Name, joinNoteNames(scale.Notes()))

		fb := fretboard.New(constants.DefaultFrets)
		out, err := fb.Render(0, 12, fb.Highlight(scale.Notes()))
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func joinNoteNames(notes []theory.Note) string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.Name
	}
	return strings.Join(names, " ")
}
