package intervalio

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danieljhkim/overlap/internal/sweep"
)

func TestDecode(t *testing.T) {
	week := []sweep.Interval{{Start: 1, End: 3}, {Start: 4, End: 6.5}}

	tests := []struct {
		name   string
		input  string
		format Format
		want   []sweep.Interval
	}{
		{
			name:   "csv",
			input:  "1,3\n4,6.5\n",
			format: FormatCSV,
			want:   week,
		},
		{
			name:   "csv with header comments and blanks",
			input:  "start,end\n# morning\n1, 3\n\n4 ,6.5\n",
			format: FormatCSV,
			want:   week,
		},
		{
			name:   "csv negative times",
			input:  "-2,-1\n",
			format: FormatAuto,
			want:   []sweep.Interval{{Start: -2, End: -1}},
		},
		{
			name:   "json pairs",
			input:  `[[1, 3], [4, 6.5]]`,
			format: FormatJSON,
			want:   week,
		},
		{
			name:   "json objects",
			input:  `[{"start": 1, "end": 3}, {"end": 6.5, "start": 4}]`,
			format: FormatAuto,
			want:   week,
		},
		{
			name:   "yaml pairs",
			input:  "- [1, 3]\n- [4, 6.5]\n",
			format: FormatAuto,
			want:   week,
		},
		{
			name:   "yaml maps",
			input:  "- start: 1\n  end: 3\n- start: 4\n  end: 6.5\n",
			format: FormatYAML,
			want:   week,
		},
		{
			name:   "empty csv",
			input:  "",
			format: FormatAuto,
			want:   []sweep.Interval{},
		},
		{
			name:   "empty json",
			input:  "[]",
			format: FormatAuto,
			want:   []sweep.Interval{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"csv three fields", "1,2,3\n", FormatCSV},
		{"csv not a number", "1,3\nnoon,4\n", FormatCSV},
		{"json not a list", `{"start": 1}`, FormatJSON},
		{"json short pair", `[[1]]`, FormatJSON},
		{"json missing end", `[{"start": 1}]`, FormatJSON},
		{"json string time", `[["9am", 3]]`, FormatJSON},
		{"yaml scalar item", "- 4\n", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), tt.format)
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestDecode_UnknownFormat(t *testing.T) {
	_, err := Decode([]byte("1,2"), Format("xml"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"CSV", FormatCSV, false},
		{" json ", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"toml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"week.csv":           FormatCSV,
		"notes.TXT":          FormatCSV,
		"/tmp/meetings.json": FormatJSON,
		"cal.yml":            FormatYAML,
		"cal.yaml":           FormatYAML,
	}
	for path, want := range tests {
		got, err := DetectFormat(path)
		if err != nil {
			t.Errorf("DetectFormat(%q) error = %v", path, err)
			continue
		}
		if got != want {
			t.Errorf("DetectFormat(%q) = %q, want %q", path, got, want)
		}
	}

	if _, err := DetectFormat("calendar.ics"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestParsePairs(t *testing.T) {
	got, err := ParsePairs([]string{"1:3", "4:6", "5:9.5"})
	if err != nil {
		t.Fatalf("ParsePairs() error = %v", err)
	}
	want := []sweep.Interval{{Start: 1, End: 3}, {Start: 4, End: 6}, {Start: 5, End: 9.5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParsePairs() = %v, want %v", got, want)
	}

	for _, bad := range []string{"1-3", "a:3", "1:"} {
		if _, err := ParsePairs([]string{bad}); !errors.Is(err, ErrMalformed) {
			t.Errorf("ParsePairs(%q) expected ErrMalformed, got %v", bad, err)
		}
	}
}
