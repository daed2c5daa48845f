package cmd

import (
	"fmt"

	"github.com/fretwise/fretwise/stats"
	"github.com/fretwise/fretwise/trainer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice history",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := stats.Load()
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No practice sessions recorded yet. Try `fretwise train`.")
			return nil
		}

		sum := stats.Summarize(sessions)
		fmt.Printf("Practice sessions: %v\n\n", sum.Sessions)
		for _, kind := range trainer.Kinds {
			asked := sum.Asked[kind]
			if asked == 0 {
				continue
			}
			fmt.Printf("  %-28v %v/%v correct\n", trainer.Label(kind), sum.Correct[kind], asked)
		}
		return nil
	},
}
