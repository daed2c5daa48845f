package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fretwise/fretwise/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(trainCmd)
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Start the interactive explorer and practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := tea.NewProgram(tui.New()).Run()
		return err
	},
}
