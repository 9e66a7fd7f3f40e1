package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/overlap/internal/engine"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Solve a fixed sample of four meetings",
	Long:  `Solve the sample [(1, 3), (4, 6), (5, 9), (10, 12)] and print each meeting's maximum overlap.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Solve(context.Background(), &engine.SolveRequest{
			Intervals: engine.DemoIntervals,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Checking meetings %v...\n", engine.DemoIntervals)
		for i, m := range result.Meetings {
			fmt.Fprintf(w, "Meeting %v has max overlap of %d\n", engine.DemoIntervals[i], m.MaxOverlap)
		}
		return nil
	},
}
