// Command lipi converts text, image, or PDF files between Indic scripts
// and romanization schemes. Image and PDF inputs are OCR'd before
// conversion.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/akshara/lipi/archive"
	"github.com/akshara/lipi/ingest"
	"github.com/akshara/lipi/observability"
	"github.com/akshara/lipi/observability/zaplog"
	"github.com/akshara/lipi/pipeline"
	"github.com/akshara/lipi/scheme"

	_ "github.com/akshara/lipi/ocr/tesseract"
)

type options struct {
	inputs   []string
	targets  []scheme.Scheme
	source   scheme.Scheme
	outPath  string
	ocrLangs []string
	dpi      int
	workers  int
	report   bool
	verbose  bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lipi: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "lipi: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: lipi [flags] <file>... (use - for stdin)\n")
		flag.PrintDefaults()
	}
	tgt := flag.String("tgt", "devanagari", "Comma-separated target schemes")
	src := flag.String("src", "auto", "Source scheme, or auto to detect per run")
	out := flag.String("out", "", "Output file (.zip packages multiple outputs); default stdout")
	ocrLang := flag.String("ocr-lang", "", "Tesseract language hints, joined with +")
	dpi := flag.Int("dpi", 0, "Scan resolution hint for OCR inputs")
	workers := flag.Int("workers", 0, "Conversion worker count (0 = GOMAXPROCS)")
	report := flag.Bool("report", false, "Print per-unit conversion reports to stderr as JSON")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return options{}, fmt.Errorf("no input files")
	}
	opts.inputs = flag.Args()

	for _, name := range strings.Split(*tgt, ",") {
		s, err := scheme.Parse(name)
		if err != nil {
			return options{}, err
		}
		opts.targets = append(opts.targets, s)
	}
	if !strings.EqualFold(*src, "auto") {
		s, err := scheme.Parse(*src)
		if err != nil {
			return options{}, err
		}
		opts.source = s
	}
	if *ocrLang != "" {
		opts.ocrLangs = strings.Split(*ocrLang, "+")
	}
	opts.outPath = *out
	opts.dpi = *dpi
	opts.workers = *workers
	opts.report = *report
	opts.verbose = *verbose
	return opts, nil
}

func run(opts options) error {
	ctx := context.Background()

	logger := observability.Logger(observability.NopLogger{})
	if opts.verbose {
		zl, err := zaplog.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = zl
	}

	ingestOpts := []ingest.Option{ingest.WithLogger(logger)}
	if len(opts.ocrLangs) > 0 {
		ingestOpts = append(ingestOpts, ingest.WithLanguages(opts.ocrLangs...))
	}
	if opts.dpi > 0 {
		ingestOpts = append(ingestOpts, ingest.WithDPI(opts.dpi))
	}

	var units []pipeline.TextUnit
	var unitTargets []scheme.Scheme
	for _, input := range opts.inputs {
		name, data, err := readInput(input)
		if err != nil {
			return err
		}
		doc, err := ingest.Extract(ctx, name, data, ingestOpts...)
		if err != nil {
			return err
		}
		for _, target := range opts.targets {
			units = append(units, pipeline.TextUnit{
				Source:       name,
				Text:         doc.Text,
				Target:       target,
				SourceScheme: opts.source,
			})
			unitTargets = append(unitTargets, target)
		}
	}

	pipeOpts := []pipeline.Option{pipeline.WithLogger(logger)}
	if opts.workers > 0 {
		pipeOpts = append(pipeOpts, pipeline.WithWorkers(opts.workers))
	}
	outputs, err := pipeline.ProcessBatch(ctx, units, pipeOpts...)
	if err != nil {
		return err
	}

	if opts.report {
		for _, out := range outputs {
			line, err := sonic.Marshal(out.Report)
			if err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			fmt.Fprintf(os.Stderr, "%s: %s\n", out.Source, line)
		}
	}
	return writeOutputs(outputs, unitTargets, opts.outPath)
}

func readInput(input string) (string, []byte, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "stdin.txt", data, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return "", nil, err
	}
	return input, data, nil
}

func writeOutputs(outputs []pipeline.Output, targets []scheme.Scheme, outPath string) error {
	switch {
	case outPath == "" && len(outputs) == 1:
		_, err := io.WriteString(os.Stdout, outputs[0].Text+"\n")
		return err
	case strings.EqualFold(filepath.Ext(outPath), ".zip"):
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		if err := archive.Write(f, outputs, targets); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case outPath != "" && len(outputs) == 1:
		return os.WriteFile(outPath, []byte(outputs[0].Text), 0o644)
	case outPath != "":
		if err := os.MkdirAll(outPath, 0o755); err != nil {
			return err
		}
		for i, out := range outputs {
			name := filepath.Join(outPath, archive.EntryName(out.Source, targets[i]))
			if err := os.WriteFile(name, []byte(out.Text), 0o644); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("multiple outputs need -out (a directory or a .zip)")
	}
}
