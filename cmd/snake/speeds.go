package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var speedsCmd = &cobra.Command{
	Use:   "speeds",
	Short: "Show the score-to-speed table",
	Long:  `Shows how the pause between moves shrinks as the score rises.`,
	Args:  cobra.NoArgs,
	RunE:  runSpeeds,
}

func runSpeeds(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Speed by score:\n\n%s\n", tui.SpeedTable(nil))
	return err
}
