package cmd

import (
	"fmt"
	"strings"

	"github.com/fretwise/fretwise/midiout"
	"github.com/fretwise/fretwise/theory"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	exportOut   string
	exportKey   string
	exportScale string
)

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOut, "out", "o", "", "output .mid path (default derived from the name)")

	exportProgressionCmd.Flags().StringVar(&exportKey, "key", "C", "key to build the progression in")
	exportProgressionCmd.Flags().StringVar(&exportScale, "scale", "major", "scale preset the degrees come from")

	exportCmd.AddCommand(exportScaleCmd)
	exportCmd.AddCommand(exportChordCmd)
	exportCmd.AddCommand(exportProgressionCmd)
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write scales, chords or progressions to a MIDI file",
}

func writeSMF(s *smf.SMF, name string) error {
	path := exportOut
	if path == "" {
		path = strings.ReplaceAll(strings.ToLower(name), " ", "-")
		path = strings.ReplaceAll(path, "#/", "")
		path += ".mid"
	}
	if err := midiout.WriteFile(s, path); err != nil {
		return err
	}
	fmt.Printf("Wrote %v\n", path)
	return nil
}

var exportScaleCmd = &cobra.Command{
	Use:   "scale <preset> <root>",
	Short: "Export a scale played one degree per beat",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		build, ok := theory.ScalePresets[args[0]]
		if !ok {
			return fmt.Errorf("unknown scale preset %q", args[0])
		}
		root, err := theory.ParseNote(args[1])
		if err != nil {
			return err
		}
		scale := build(root)
		return writeSMF(midiout.ScaleSMF(scale), scale.Name)
	},
}

var exportChordCmd = &cobra.Command{
	Use:   "chord <preset> <root>",
	Short: "Export a chord, held then arpeggiated",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		build, ok := theory.ChordPresets[args[0]]
		if !ok {
			return fmt.Errorf("unknown chord preset %q", args[0])
		}
		root, err := theory.ParseNote(args[1])
		if err != nil {
			return err
		}
		chord := build(root)
		return writeSMF(midiout.ChordSMF(chord), chord.Name)
	},
}

var exportProgressionCmd = &cobra.Command{
	Use:   "progression <numeral>...",
	Short: "Export a progression, one bar per chord",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		build, ok := theory.ScalePresets[exportScale]
		if !ok {
			return fmt.Errorf("unknown scale preset %q", exportScale)
		}
		key, err := theory.ParseNote(exportKey)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("%v %v", key.Name, strings.Join(args, "-"))
		prog, err := theory.FromRomanNumerals(build(key), args, name)
		if err != nil {
			return err
		}
		return writeSMF(midiout.ProgressionSMF(prog), prog.Name)
	},
}
