package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/danieljhkim/overlap/internal/engine"
	"github.com/danieljhkim/overlap/internal/sweep"
)

func TestSolveCommand_Table(t *testing.T) {
	output, err := execute(t, "", "solve", "1:3", "4:6", "5:9", "10:12")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"Max overlap for 4 meetings from arguments (end-first)",
		"MAX OVERLAP",
		"0.500",
		"1.000",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Breakpoints") {
		t.Error("breakpoints should only be printed with --breakpoints")
	}
}

func TestSolveCommand_JSON(t *testing.T) {
	output, err := execute(t, "", "solve", "--json", "--tie-break", "start-first", "1:2", "2:3")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result engine.SolveResult
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("expected valid JSON output, got error: %v, output: %q", err, output)
	}
	if got := result.MaxOverlap(); !reflect.DeepEqual(got, []int{2, 2}) {
		t.Errorf("MaxOverlap() = %v, want [2 2]", got)
	}
	if result.TieBreak != "start-first" {
		t.Errorf("TieBreak = %q", result.TieBreak)
	}
}

func TestSolveCommand_Stdin(t *testing.T) {
	output, err := execute(t, "- [0, 10]\n- [2, 3]\n- [4, 5]\n", "solve", "--file", "-", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result engine.SolveResult
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got := result.MaxOverlap(); !reflect.DeepEqual(got, []int{2, 2, 2}) {
		t.Errorf("MaxOverlap() = %v, want [2 2 2]", got)
	}
	if result.Source != "stdin" {
		t.Errorf("Source = %q, want stdin", result.Source)
	}
}

func TestSolveCommand_FileWithBreakpointsAndReport(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "week.csv")
	if err := os.WriteFile(input, []byte("start,end\n1,2\n2,3\n"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	report := filepath.Join(dir, "out", "week.json")

	output, err := execute(t, "", "solve", "--file", input, "--breakpoints", "--out", report)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Breakpoints", "OPEN", "Report written to " + report} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}

	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	var result engine.SolveResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("invalid report: %v", err)
	}
	if got := result.MaxOverlap(); !reflect.DeepEqual(got, []int{1, 1}) {
		t.Errorf("report MaxOverlap() = %v, want [1 1]", got)
	}
}

func TestSolveCommand_Empty(t *testing.T) {
	output, err := execute(t, "", "solve", "--file", "-")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(output, "No meetings to solve") {
		t.Errorf("expected empty state, got:\n%s", output)
	}
}

func TestSolveCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no input", []string{"solve"}, engine.ErrValidation},
		{"malformed interval", []string{"solve", "3:1"}, sweep.ErrInvalidInterval},
		{"missing file", []string{"solve", "--file", "/nonexistent/week.csv"}, engine.ErrNotFound},
		{"bad format", []string{"solve", "--file", "-", "--format", "xml"}, engine.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSolveCommand_ConfigFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "config.yaml"), []byte("tie_break: start-first\nprecision: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("OVERLAP_TIE_BREAK", "")
	t.Setenv("OVERLAP_FORMAT", "")
	t.Setenv("OVERLAP_PRECISION", "")
	t.Setenv("OVERLAP_ROOT", root)
	resetFlags()

	var out strings.Builder
	rootCmd.SetArgs([]string{"solve", "1:2", "2:3"})
	rootCmd.SetOut(&out)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "(start-first)") {
		t.Errorf("expected configured tie-break, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "0.5") || strings.Contains(out.String(), "0.500") {
		t.Errorf("expected one-decimal widths, got:\n%s", out.String())
	}
}

func TestDemoCommand(t *testing.T) {
	output, err := execute(t, "", "demo")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "Checking meetings [(1, 3) (4, 6) (5, 9) (10, 12)]...\n" +
		"Meeting (1, 3) has max overlap of 1\n" +
		"Meeting (4, 6) has max overlap of 2\n" +
		"Meeting (5, 9) has max overlap of 2\n" +
		"Meeting (10, 12) has max overlap of 1\n"
	if output != want {
		t.Errorf("demo output mismatch:\ngot:\n%s\nwant:\n%s", output, want)
	}
}
