package cmd

import (
	"fmt"
	"strings"

	"github.com/fretwise/fretwise/theory"
	"github.com/fretwise/fretwise/util"
	"github.com/spf13/cobra"
)

var (
	progressionKey   string
	progressionScale string
	progressionName  string
)

func init() {
	progressionCmd.Flags().StringVar(&progressionKey, "key", "C", "key to build the progression in")
	progressionCmd.Flags().StringVar(&progressionScale, "scale", "major", "scale preset the degrees come from")
	progressionCmd.Flags().StringVar(&progressionName, "name", "", "label for the progression")
	rootCmd.AddCommand(progressionCmd)
}

var progressionCmd = &cobra.Command{
	Use:   "progression <numeral>...",
	Short: "Build a chord progression from roman numerals",
	Long: `Build a chord progression from roman numerals, e.g.:

  fretwise progression I IV V --key G
  fretwise progression ii V7 I --key Bb`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		build, ok := theory.ScalePresets[progressionScale]
		if !ok {
			return fmt.Errorf("unknown scale preset %q, try one of: %v",
				progressionScale, strings.Join(util.SortedKeys(theory.ScalePresets), ", "))
		}
		key, err := theory.ParseNote(progressionKey)
		if err != nil {
			return err
		}

		name := progressionName
		if name == "" {
			name = fmt.Sprintf("%v %v", key.Name, strings.Join(args, "-"))
		}
		prog, err := theory.FromRomanNumerals(build(key), args, name)
		if err != nil {
			return err
		}

		fmt.Printf("%v Progression:\n", prog.Name)
		for i, chord := range prog.Chords {
			fmt.Printf("  %v. %v: %v\n", i+1, chord.Name, joinNoteNames(chord.Notes()))
		}
		return nil
	},
}
