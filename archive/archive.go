// Package archive packages batch conversion outputs into a single zip
// for download. Each output becomes one UTF-8 text entry named after
// its source and target scheme.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/akshara/lipi/pipeline"
	"github.com/akshara/lipi/scheme"
)

// EntryName derives the zip entry name for one converted unit:
// the source name with its extension dropped, double-underscore, and
// the upper-cased target scheme.
func EntryName(source string, target scheme.Scheme) string {
	base := filepath.Base(source)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." {
		base = "output"
	}
	return fmt.Sprintf("%s__%s.txt", base, strings.ToUpper(target.String()))
}

// Write streams outputs into w as a zip archive. Entry order follows
// the slice order, so batch results stay aligned with their inputs.
func Write(w io.Writer, outputs []pipeline.Output, targets []scheme.Scheme) error {
	if len(outputs) != len(targets) {
		return fmt.Errorf("archive: %d outputs for %d targets", len(outputs), len(targets))
	}
	zw := zip.NewWriter(w)
	for i, out := range outputs {
		entry, err := zw.Create(EntryName(out.Source, targets[i]))
		if err != nil {
			return fmt.Errorf("archive entry %s: %w", out.Source, err)
		}
		if _, err := io.WriteString(entry, out.Text); err != nil {
			return fmt.Errorf("archive write %s: %w", out.Source, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("archive close: %w", err)
	}
	return nil
}
