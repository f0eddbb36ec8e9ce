package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Lexicon maps keyword sets to sentiment polarity. Matching is
// case-insensitive on word tokens.
type Lexicon struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// Thresholds are the named constants behind flags and takeaway notes. They
// are fixed per deployment so repeated runs stay reproducible.
type Thresholds struct {
	// FrictionRatio flags "Friction detected" when the share of negative
	// messages exceeds it.
	FrictionRatio float64 `yaml:"friction_ratio"`
	// DominanceShare flags "Dominance imbalance" when one speaker's word
	// share exceeds it.
	DominanceShare float64 `yaml:"dominance_share"`
	// OverlapRatio flags "High overlap / interruptions" when interruptions
	// per message exceed it.
	OverlapRatio float64 `yaml:"overlap_ratio"`
	// InterruptionGapSec is the longest pause in seconds between utterances
	// of different speakers still counted as a cut-in.
	InterruptionGapSec int `yaml:"interruption_gap_sec"`
}

// Analysis bundles the tunable inputs of the metrics engine.
type Analysis struct {
	Lexicon    Lexicon    `yaml:"lexicon"`
	Thresholds Thresholds `yaml:"thresholds"`
}

// DefaultAnalysis returns the compiled-in lexicon and thresholds.
func DefaultAnalysis() Analysis {
	return Analysis{
		Lexicon: Lexicon{
			Positive: []string{
				"great", "confident", "happy", "ready", "well",
				"thanks", "clear", "help", "backup",
			},
			Negative: []string{
				"bad", "delay", "risk", "risks", "blocker", "blockers",
				"disagree", "frustrated", "frustrating", "angry", "upset",
			},
		},
		Thresholds: Thresholds{
			FrictionRatio:   0.25,
			DominanceShare:  0.45,
			OverlapRatio:    0.10,
			InterruptionGapSec: 1,
		},
	}
}

// LoadAnalysis reads an analysis config file and merges it over the defaults.
// Empty sections keep their default values, so a file may override only the
// lexicon or only single thresholds.
func LoadAnalysis(path string) (Analysis, error) {
	a := DefaultAnalysis()

	f, err := os.Open(path)
	if err != nil {
		return a, fmt.Errorf("opening analysis config: %w", err)
	}
	defer f.Close()

	var file Analysis
	if err := yaml.NewDecoder(f).Decode(&file); err != nil {
		return a, fmt.Errorf("decoding analysis config %s: %w", path, err)
	}

	if len(file.Lexicon.Positive) > 0 {
		a.Lexicon.Positive = file.Lexicon.Positive
	}
	if len(file.Lexicon.Negative) > 0 {
		a.Lexicon.Negative = file.Lexicon.Negative
	}
	if file.Thresholds.FrictionRatio > 0 {
		a.Thresholds.FrictionRatio = file.Thresholds.FrictionRatio
	}
	if file.Thresholds.DominanceShare > 0 {
		a.Thresholds.DominanceShare = file.Thresholds.DominanceShare
	}
	if file.Thresholds.OverlapRatio > 0 {
		a.Thresholds.OverlapRatio = file.Thresholds.OverlapRatio
	}
	if file.Thresholds.InterruptionGapSec > 0 {
		a.Thresholds.InterruptionGapSec = file.Thresholds.InterruptionGapSec
	}

	return a, nil
}

// DurSeconds converts a threshold expressed in whole seconds to a Duration.
func DurSeconds(n int) time.Duration { return time.Duration(n) * time.Second }
