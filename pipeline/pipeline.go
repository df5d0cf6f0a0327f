// Package pipeline composes segmentation and conversion per text unit
// and coordinates batch execution. Units are independent: no shared
// state, so batches run on a bounded worker pool with no coordination
// beyond context cancellation.
package pipeline

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"github.com/akshara/lipi/observability"
	"github.com/akshara/lipi/scheme"
	"github.com/akshara/lipi/segment"
	"github.com/akshara/lipi/translit"
)

// TextUnit is one logical input: a file's extracted text plus the
// requested target scheme. Source identifies the unit in batch results.
type TextUnit struct {
	Source string
	Text   string
	Target scheme.Scheme
	// SourceScheme, when not Unknown, forces every non-literal run to
	// decode under that scheme instead of auto-detection.
	SourceScheme scheme.Scheme
}

// Report aggregates per-run conversion outcomes for one unit.
type Report struct {
	Exact         int `json:"exact_count"`
	Converted     int `json:"converted_count"`
	Approximate   int `json:"approximate_count"`
	Passthrough   int `json:"passthrough_count"`
	LowConfidence int `json:"low_confidence_count"`
	Unmapped      int `json:"unmapped_phonemes"`
}

// Output is the result for one unit: best-effort converted text plus the
// aggregate report. Nothing inside a unit is fatal; problem runs degrade
// to approximate or passthrough and are tallied here.
type Output struct {
	Source string `json:"source"`
	Text   string `json:"text"`
	Report Report `json:"report"`
}

type config struct {
	logger  observability.Logger
	workers int
}

// Option adjusts pipeline behavior.
type Option func(*config)

// WithLogger attaches a logger for per-unit debug reporting.
func WithLogger(l observability.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithWorkers bounds batch parallelism. Values below one reset to the
// default (GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		logger:  observability.NopLogger{},
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Process converts one unit. Empty text yields an empty output with an
// all-zero report. The call is deterministic: identical units produce
// identical outputs and reports.
func Process(unit TextUnit, opts ...Option) Output {
	cfg := newConfig(opts)
	return process(unit, cfg)
}

func process(unit TextUnit, cfg config) Output {
	out := Output{Source: unit.Source}
	if unit.Text == "" {
		return out
	}

	runs := segment.Segment(unit.Text)
	texts := make([]string, 0, len(runs))
	for _, run := range runs {
		if unit.SourceScheme != scheme.Unknown && run.Category != segment.Literal {
			run.Category = segment.CategoryOf(unit.SourceScheme)
			run.LowConfidence = false
		}
		if run.LowConfidence {
			out.Report.LowConfidence++
		}
		res := translit.Convert(run, unit.Target)
		texts = append(texts, res.Text)
		out.Report.Unmapped += res.Unmapped
		switch res.Flag {
		case translit.FlagExact:
			out.Report.Exact++
		case translit.FlagConverted:
			out.Report.Converted++
		case translit.FlagApproximate:
			out.Report.Approximate++
		default:
			out.Report.Passthrough++
		}
	}

	var sb strings.Builder
	for _, t := range texts {
		sb.WriteString(t)
	}
	out.Text = sb.String()

	cfg.logger.Debug("unit processed",
		observability.String(observability.FieldUnit, unit.Source),
		observability.String(observability.FieldTargetScheme, unit.Target.String()),
		observability.Int(observability.FieldRuns, len(runs)),
		observability.Int(observability.FieldExact, out.Report.Exact),
		observability.Int(observability.FieldConverted, out.Report.Converted),
		observability.Int(observability.FieldApproximate, out.Report.Approximate),
		observability.Int(observability.FieldPassthrough, out.Report.Passthrough),
		observability.Int(observability.FieldLowConfidence, out.Report.LowConfidence),
		observability.Int(observability.FieldUnmapped, out.Report.Unmapped),
	)
	return out
}

// ProcessBatch converts units independently on a bounded worker pool.
// Results keep the input order regardless of completion order. On
// cancellation the remaining units are abandoned, completed outputs are
// returned as-is, and ctx.Err() reports the interruption.
func ProcessBatch(ctx context.Context, units []TextUnit, opts ...Option) ([]Output, error) {
	cfg := newConfig(opts)
	if len(units) == 0 {
		return nil, nil
	}

	workers := cfg.workers
	if workers > len(units) {
		workers = len(units)
	}

	outputs := make([]Output, len(units))
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				outputs[i] = process(units[i], cfg)
			}
		}()
	}

	var err error
feed:
	for i := range units {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return outputs, err
}
