package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultAnalysis(t *testing.T) {
	a := DefaultAnalysis()

	if len(a.Lexicon.Positive) == 0 || len(a.Lexicon.Negative) == 0 {
		t.Fatal("expected non-empty default lexicon")
	}
	if a.Thresholds.FrictionRatio != 0.25 {
		t.Errorf("expected default friction ratio 0.25, got %v", a.Thresholds.FrictionRatio)
	}
	if a.Thresholds.DominanceShare != 0.45 {
		t.Errorf("expected default dominance share 0.45, got %v", a.Thresholds.DominanceShare)
	}
	if a.Thresholds.OverlapRatio != 0.10 {
		t.Errorf("expected default overlap ratio 0.10, got %v", a.Thresholds.OverlapRatio)
	}
	if a.Thresholds.InterruptionGapSec != 1 {
		t.Errorf("expected default interruption gap 1s, got %ds", a.Thresholds.InterruptionGapSec)
	}
}

func TestLoadAnalysis_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.yaml")
	content := `lexicon:
  negative:
    - awful
    - rollback
thresholds:
  dominance_share: 0.6
  interruption_gap_sec: 2
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	a, err := LoadAnalysis(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a.Lexicon.Negative) != 2 || a.Lexicon.Negative[0] != "awful" {
		t.Errorf("expected negative lexicon override, got %v", a.Lexicon.Negative)
	}
	// untouched sections keep defaults
	if len(a.Lexicon.Positive) == 0 {
		t.Error("expected default positive lexicon to survive")
	}
	if a.Thresholds.DominanceShare != 0.6 {
		t.Errorf("expected dominance share 0.6, got %v", a.Thresholds.DominanceShare)
	}
	if a.Thresholds.InterruptionGapSec != 2 {
		t.Errorf("expected interruption gap 2s, got %ds", a.Thresholds.InterruptionGapSec)
	}
	if a.Thresholds.FrictionRatio != 0.25 {
		t.Errorf("expected default friction ratio to survive, got %v", a.Thresholds.FrictionRatio)
	}
}

func TestLoadAnalysis_MissingFile(t *testing.T) {
	_, err := LoadAnalysis(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadAnalysis_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.yaml")
	if err := os.WriteFile(path, []byte("lexicon: [not a map"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAnalysis(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
