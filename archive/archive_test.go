package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/akshara/lipi/pipeline"
	"github.com/akshara/lipi/scheme"
)

func TestEntryName(t *testing.T) {
	tests := []struct {
		source string
		target scheme.Scheme
		want   string
	}{
		{"verse.txt", scheme.Devanagari, "verse__DEVANAGARI.txt"},
		{"uploads/scan.pdf", scheme.IAST, "scan__IAST.txt"},
		{"noext", scheme.SLP1, "noext__SLP1.txt"},
		{"", scheme.ITRANS, "output__ITRANS.txt"},
	}
	for _, tc := range tests {
		if got := EntryName(tc.source, tc.target); got != tc.want {
			t.Fatalf("EntryName(%q, %v) = %q, want %q", tc.source, tc.target, got, tc.want)
		}
	}
}

func TestWrite(t *testing.T) {
	outputs := []pipeline.Output{
		{Source: "verse.txt", Text: "राम"},
		{Source: "verse.txt", Text: "raama"},
	}
	targets := []scheme.Scheme{scheme.Devanagari, scheme.ITRANS}

	var buf bytes.Buffer
	if err := Write(&buf, outputs, targets); err != nil {
		t.Fatalf("Write: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("entries = %d, want 2", len(zr.File))
	}
	wantNames := []string{"verse__DEVANAGARI.txt", "verse__ITRANS.txt"}
	wantTexts := []string{"राम", "raama"}
	for i, f := range zr.File {
		if f.Name != wantNames[i] {
			t.Fatalf("entry %d name = %q, want %q", i, f.Name, wantNames[i])
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %q: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %q: %v", f.Name, err)
		}
		if string(data) != wantTexts[i] {
			t.Fatalf("entry %q = %q, want %q", f.Name, data, wantTexts[i])
		}
	}
}

func TestWriteLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []pipeline.Output{{Source: "a.txt"}}, nil)
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}
