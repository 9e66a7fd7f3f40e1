package engine

import (
	"context"
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/danieljhkim/overlap/internal/intervalio"
	"github.com/danieljhkim/overlap/internal/sweep"
)

// Solve loads the requested batch, sweeps it and optionally writes a report.
func (e *Engine) Solve(ctx context.Context, req *SolveRequest) (*SolveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tbName := req.TieBreak
	if tbName == "" {
		tbName = e.settings.TieBreak
	}
	tb, err := sweep.ParseTieBreak(tbName)
	if err != nil {
		return nil, errors.Mark(err, ErrValidation)
	}

	intervals, source, err := e.load(req)
	if err != nil {
		return nil, err
	}

	sol, err := sweep.Sweep(intervals, sweep.WithTieBreak(tb))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s", source), ErrValidation)
	}

	result := newSolveResult(source, tb, sol)
	if req.Report != "" {
		path := e.paths.ReportPath(req.Report)
		if err := e.writeReport(path, result); err != nil {
			return nil, err
		}
		result.ReportPath = path
	}
	return result, nil
}

// load returns the intervals named by req and a description of their source.
func (e *Engine) load(req *SolveRequest) ([]sweep.Interval, string, error) {
	sources := 0
	if req.Intervals != nil {
		sources++
	}
	if len(req.Pairs) > 0 {
		sources++
	}
	if req.File != "" {
		sources++
	}
	switch {
	case sources == 0:
		return nil, "", errors.Wrap(ErrValidation, "no intervals given")
	case sources > 1:
		return nil, "", errors.Wrap(ErrValidation, "intervals must come from exactly one of arguments, a file or stdin")
	}

	switch {
	case req.Intervals != nil:
		return req.Intervals, "request", nil
	case len(req.Pairs) > 0:
		intervals, err := intervalio.ParsePairs(req.Pairs)
		if err != nil {
			return nil, "", errors.Mark(err, ErrValidation)
		}
		return intervals, "arguments", nil
	default:
		return e.loadFile(req)
	}
}

func (e *Engine) loadFile(req *SolveRequest) ([]sweep.Interval, string, error) {
	formatName := req.Format
	if formatName == "" {
		formatName = e.settings.Format
	}
	format, err := intervalio.ParseFormat(formatName)
	if err != nil {
		return nil, "", errors.Mark(err, ErrUnsupportedFormat)
	}

	var data []byte
	source := req.File
	if req.File == "-" {
		source = "stdin"
		if req.Stdin == nil {
			return nil, "", errors.Wrap(ErrValidation, "no stdin to read from")
		}
		if data, err = io.ReadAll(req.Stdin); err != nil {
			return nil, "", errors.Wrap(err, "failed to read stdin")
		}
	} else {
		exists, err := e.fs.Exists(req.File)
		if err != nil {
			return nil, "", errors.Wrapf(err, "failed to check %s", req.File)
		}
		if !exists {
			return nil, "", errors.Wrapf(ErrNotFound, "input file %s", req.File)
		}
		if data, err = e.fs.ReadFile(req.File); err != nil {
			return nil, "", errors.Wrapf(err, "failed to read %s", req.File)
		}
		if format == intervalio.FormatAuto {
			if detected, err := intervalio.DetectFormat(req.File); err == nil {
				format = detected
			}
		}
	}

	intervals, err := intervalio.Decode(data, format)
	switch {
	case errors.Is(err, intervalio.ErrUnknownFormat):
		return nil, "", errors.Mark(err, ErrUnsupportedFormat)
	case err != nil:
		return nil, "", errors.Mark(errors.Wrapf(err, "%s", source), ErrValidation)
	}
	return intervals, source, nil
}

func (e *Engine) writeReport(path string, result *SolveResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode report")
	}
	data = append(data, '\n')
	if err := e.fs.AtomicWrite(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write report %s", path)
	}
	return nil
}
