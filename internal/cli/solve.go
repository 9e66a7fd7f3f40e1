package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/overlap/internal/engine"
)

var (
	solveFile        string
	solveFormat      string
	solveTieBreak    string
	solveOut         string
	solveBreakpoints bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [start:end ...]",
	Short: "Compute the maximum overlap of each meeting",
	Long: `Compute, for every meeting, the largest number of meetings open at once
anywhere within its span, and the matching display width (1/max overlap).

Meetings are read from start:end arguments, from --file, or from stdin with
--file -. Files may be CSV (one "start,end" per line), JSON or YAML lists of
[start, end] pairs or {start, end} maps.

By default a meeting ending at T does not overlap one starting at T
(--tie-break end-first). Use --tie-break start-first to count touching
meetings as overlapping.`,
	Example: `  overlap solve 1:3 4:6 5:9 10:12
  overlap solve --file week.csv --breakpoints
  cat week.json | overlap solve --file - --json
  overlap solve --file week.yaml --out week`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		req := &engine.SolveRequest{
			Pairs:    args,
			File:     solveFile,
			Stdin:    cmd.InOrStdin(),
			Format:   solveFormat,
			TieBreak: solveTieBreak,
			Report:   solveOut,
		}

		result, err := eng.Solve(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}
		printSolveResult(cmd, result, eng.Settings().Precision, solveBreakpoints)
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Read meetings from a file (- for stdin)")
	solveCmd.Flags().StringVar(&solveFormat, "format", "", "Input format: auto, csv, json or yaml")
	solveCmd.Flags().StringVar(&solveTieBreak, "tie-break", "", "Equal-time ordering: end-first or start-first")
	solveCmd.Flags().StringVarP(&solveOut, "out", "o", "", "Write a JSON report (bare names go to the reports directory)")
	solveCmd.Flags().BoolVar(&solveBreakpoints, "breakpoints", false, "Also print the sorted breakpoints and open counts")
}

func printSolveResult(cmd *cobra.Command, result *engine.SolveResult, precision int, breakpoints bool) {
	w := cmd.OutOrStdout()

	PrintSection(w, fmt.Sprintf("Max overlap for %s from %s (%s)",
		PrintCount(len(result.Meetings), "meeting", "meetings"), result.Source, result.TieBreak))

	if len(result.Meetings) == 0 {
		PrintEmptyState(w, "No meetings to solve")
		return
	}

	rows := make([][]string, 0, len(result.Meetings))
	for i, m := range result.Meetings {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			formatTime(m.Start),
			formatTime(m.End),
			strconv.Itoa(m.MaxOverlap),
			strconv.FormatFloat(m.Width, 'f', precision, 64),
		})
	}
	PrintTable(w, []string{"MEETING", "START", "END", "MAX OVERLAP", "WIDTH"}, rows)

	if breakpoints {
		PrintSection(w, "Breakpoints")
		rows = rows[:0]
		for _, bp := range result.Breakpoints {
			rows = append(rows, []string{
				formatTime(bp.Time),
				bp.Cap,
				strconv.Itoa(bp.Source + 1),
				strconv.Itoa(bp.Open),
			})
		}
		PrintTable(w, []string{"TIME", "CAP", "MEETING", "OPEN"}, rows)
	}

	if result.ReportPath != "" {
		fmt.Fprintln(w)
		PrintSuccess(w, fmt.Sprintf("Report written to %s", result.ReportPath))
	}
}
