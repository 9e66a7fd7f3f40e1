// Package intervalio decodes interval batches from CSV, JSON and YAML input
// and from "start:end" command-line pairs.
//
// CSV input has one "start,end" record per line; blank lines and lines
// starting with '#' are skipped, and a non-numeric first record is treated as
// a header. JSON and YAML input is a list whose items are either two-element
// lists ([1, 3]) or maps with start and end keys.
package intervalio

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/overlap/internal/sweep"
)

var (
	// ErrMalformed indicates input that cannot be decoded into intervals.
	ErrMalformed = errors.New("malformed interval input")

	// ErrUnknownFormat indicates a format name or extension that is not supported.
	ErrUnknownFormat = errors.New("unknown input format")
)

// Format identifies an input encoding.
type Format string

const (
	FormatAuto Format = "auto"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// DetectFormat picks a format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "cannot detect format of %q", path)
	}
}

// Sniff guesses the format of data that has no file name.
func Sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return FormatCSV
	case trimmed[0] == '[' || trimmed[0] == '{':
		return FormatJSON
	case bytes.HasPrefix(trimmed, []byte("- ")) || bytes.HasPrefix(trimmed, []byte("-\n")):
		return FormatYAML
	default:
		return FormatCSV
	}
}

// Decode decodes data in the given format. FormatAuto sniffs the content.
func Decode(data []byte, format Format) ([]sweep.Interval, error) {
	if format == FormatAuto {
		format = Sniff(data)
	}
	switch format {
	case FormatCSV:
		return decodeCSV(bytes.NewReader(data))
	case FormatJSON:
		var items []any
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, errors.Wrapf(ErrMalformed, "json: %v", err)
		}
		return fromItems(items)
	case FormatYAML:
		var items []any
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, errors.Wrapf(ErrMalformed, "yaml: %v", err)
		}
		return fromItems(items)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", string(format))
	}
}

// ParsePairs parses "start:end" arguments such as "9:10.5".
func ParsePairs(args []string) ([]sweep.Interval, error) {
	intervals := make([]sweep.Interval, 0, len(args))
	for i, arg := range args {
		start, end, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, errors.Wrapf(ErrMalformed, "argument %d: %q is not start:end", i, arg)
		}
		iv, err := parseRecord(start, end)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

func decodeCSV(r io.Reader) ([]sweep.Interval, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	intervals := []sweep.Interval{}
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			return intervals, nil
		}
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "csv: %v", err)
		}

		iv, err := parseRecord(record[0], record[1])
		if err != nil {
			if line == 1 && isHeader(record) {
				continue
			}
			row, _ := reader.FieldPos(0)
			return nil, errors.Wrapf(err, "csv line %d", row)
		}
		intervals = append(intervals, iv)
	}
}

func isHeader(record []string) bool {
	for _, field := range record {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err == nil {
			return false
		}
	}
	return true
}

func parseRecord(start, end string) (sweep.Interval, error) {
	s, err := strconv.ParseFloat(strings.TrimSpace(start), 64)
	if err != nil {
		return sweep.Interval{}, errors.Wrapf(ErrMalformed, "start %q", start)
	}
	e, err := strconv.ParseFloat(strings.TrimSpace(end), 64)
	if err != nil {
		return sweep.Interval{}, errors.Wrapf(ErrMalformed, "end %q", end)
	}
	return sweep.Interval{Start: s, End: e}, nil
}

func fromItems(items []any) ([]sweep.Interval, error) {
	intervals := make([]sweep.Interval, 0, len(items))
	for i, item := range items {
		iv, err := fromItem(item)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

func fromItem(item any) (sweep.Interval, error) {
	switch v := item.(type) {
	case []any:
		if len(v) != 2 {
			return sweep.Interval{}, errors.Wrapf(ErrMalformed, "want [start, end], got %d values", len(v))
		}
		return toInterval(v[0], v[1])
	case map[string]any:
		start, ok := v["start"]
		if !ok {
			return sweep.Interval{}, errors.Wrap(ErrMalformed, "missing start")
		}
		end, ok := v["end"]
		if !ok {
			return sweep.Interval{}, errors.Wrap(ErrMalformed, "missing end")
		}
		return toInterval(start, end)
	default:
		return sweep.Interval{}, errors.Wrapf(ErrMalformed, "unexpected %T", item)
	}
}

func toInterval(start, end any) (sweep.Interval, error) {
	s, err := toFloat(start)
	if err != nil {
		return sweep.Interval{}, errors.Wrap(err, "start")
	}
	e, err := toFloat(end)
	if err != nil {
		return sweep.Interval{}, errors.Wrap(err, "end")
	}
	return sweep.Interval{Start: s, End: e}, nil
}

// toFloat accepts the numeric types produced by encoding/json and yaml.v3.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, errors.Wrapf(ErrMalformed, "%s is not a number", fmt.Sprint(v))
	}
}
