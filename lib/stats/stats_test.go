package stats

import (
	"math"
	"testing"

	"github.com/hepio/truthcaf/lib/truth"
)

func TestSummarize(t *testing.T) {
	xs := []float32{1, 2, 3, truth.NaN, float32(math.NaN()), truth.NaN}
	s := Summarize("E", xs)

	if s.Name != "E" {
		t.Errorf("Expected Name = 'E', got '%s'.", s.Name)
	}
	if s.NSet != 3 || s.NSentinel != 2 || s.NBad != 1 {
		t.Errorf("Expected counts (set, sentinel, bad) = (3, 2, 1), got "+
			"(%d, %d, %d).", s.NSet, s.NSentinel, s.NBad)
	}
	if s.Mean != 2 {
		t.Errorf("Expected mean = 2, got %g.", s.Mean)
	}
	if s.Std != 1 {
		t.Errorf("Expected std = 1, got %g.", s.Std)
	}
	if s.Min != 1 || s.Max != 3 {
		t.Errorf("Expected (min, max) = (1, 3), got (%g, %g).",
			s.Min, s.Max)
	}
}

func TestSummarizeAllSentinel(t *testing.T) {
	xs := []float32{truth.NaN, truth.NaN}
	s := Summarize("xsec", xs)

	if s.NSet != 0 || s.NSentinel != 2 || s.NBad != 0 {
		t.Errorf("Expected counts (set, sentinel, bad) = (0, 2, 0), got "+
			"(%d, %d, %d).", s.NSet, s.NSentinel, s.NBad)
	}
	if !math.IsNaN(s.Mean) || !math.IsNaN(s.Std) ||
		!math.IsNaN(s.Min) || !math.IsNaN(s.Max) {
		t.Errorf("Expected NaN summaries for a column with no set values.")
	}
}

func TestSummarizeSingleValue(t *testing.T) {
	s := Summarize("W", []float32{2.5})

	if s.NSet != 1 {
		t.Errorf("Expected 1 set value, got %d.", s.NSet)
	}
	if s.Mean != 2.5 || s.Min != 2.5 || s.Max != 2.5 {
		t.Errorf("Expected mean = min = max = 2.5, got (%g, %g, %g).",
			s.Mean, s.Min, s.Max)
	}
	if !math.IsNaN(s.Std) {
		t.Errorf("Expected std to be NaN for a single value, got %g.",
			s.Std)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize("t", nil)
	if s.NSet != 0 || s.NSentinel != 0 || s.NBad != 0 {
		t.Errorf("Expected all-zero counts for an empty column.")
	}
	if !math.IsNaN(s.Mean) {
		t.Errorf("Expected a NaN mean for an empty column, got %g.", s.Mean)
	}
}
