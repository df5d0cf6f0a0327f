package observability

import "testing"

func TestFieldConstructors(t *testing.T) {
	if f := String("scheme", "IAST"); f.Key() != "scheme" || f.Value() != "IAST" {
		t.Fatalf("unexpected string field: %s=%v", f.Key(), f.Value())
	}
	if f := Int("runs", 3); f.Key() != "runs" || f.Value() != 3 {
		t.Fatalf("unexpected int field: %s=%v", f.Key(), f.Value())
	}
	if f := Float64("score", 0.5); f.Value() != 0.5 {
		t.Fatalf("unexpected float field: %v", f.Value())
	}
	if f := Error("err", nil); f.Key() != "err" {
		t.Fatalf("unexpected error field key: %s", f.Key())
	}
}

func TestNopLoggerIsSafe(t *testing.T) {
	var l Logger = NopLogger{}
	l = l.With(String("unit", "a.txt"))
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error", Error("err", nil))
}
