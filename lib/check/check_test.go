package check

import (
	"testing"

	"github.com/hepio/truthcaf/lib/truth"
)

func goodRecord() truth.Interaction {
	rec := truth.NewInteraction()
	rec.IsCC = true
	rec.Mode = truth.QE
	rec.PDG, rec.PDGOrig = 14, 14
	rec.Generator = truth.GENIE
	mu := truth.NewParticle()
	mu.PDG = 13
	pr := truth.NewParticle()
	pr.PDG = 2212
	rec.NPrim = 2
	rec.Prim = []truth.Particle{mu, pr}
	return rec
}

func TestRecordPasses(t *testing.T) {
	rec := goodRecord()
	if probs := Record(0, &rec); len(probs) != 0 {
		t.Errorf("Expected a well-formed record to pass all checks, but "+
			"got %d problems: %v.", len(probs), probs)
	}

	// A freshly constructed default record is also valid.
	def := truth.NewInteraction()
	if probs := Record(0, &def); len(probs) != 0 {
		t.Errorf("Expected a default record to pass all checks, but got "+
			"%d problems: %v.", len(probs), probs)
	}
}

func TestRecordProblems(t *testing.T) {
	tests := []struct {
		name   string
		change func(rec *truth.Interaction)
		nProbs int
	}{
		{"nprim mismatch",
			func(rec *truth.Interaction) { rec.NPrim = 5 }, 1},
		{"mode too large",
			func(rec *truth.Interaction) {
				rec.Mode = truth.ScatteringMode(14)
			}, 1},
		{"mode too small",
			func(rec *truth.Interaction) {
				rec.Mode = truth.ScatteringMode(-2)
			}, 1},
		{"generator out of range",
			func(rec *truth.Interaction) {
				rec.Generator = truth.Generator(9)
			}, 1},
		{"displaced lepton",
			func(rec *truth.Interaction) {
				rec.Prim[0], rec.Prim[1] = rec.Prim[1], rec.Prim[0]
			}, 1},
		{"everything at once",
			func(rec *truth.Interaction) {
				rec.NPrim = 5
				rec.Mode = truth.ScatteringMode(99)
				rec.Generator = truth.Generator(-3)
			}, 3},
	}

	for _, test := range tests {
		rec := goodRecord()
		test.change(&rec)
		probs := Record(0, &rec)
		if len(probs) != test.nProbs {
			t.Errorf("Expected %d problems for '%s', got %d: %v.",
				test.nProbs, test.name, len(probs), probs)
		}
	}
}

func TestLeptonFirstEitherLepton(t *testing.T) {
	// Two charged leptons: whichever one is first satisfies the
	// convention.
	rec := truth.NewInteraction()
	mu := truth.NewParticle()
	mu.PDG = 13
	e := truth.NewParticle()
	e.PDG = -11
	rec.NPrim = 2
	rec.Prim = []truth.Particle{mu, e}

	if probs := Record(0, &rec); len(probs) != 0 {
		t.Errorf("Expected a record with a lepton at index 0 to pass, "+
			"got %v.", probs)
	}
}

func TestRecords(t *testing.T) {
	good := goodRecord()
	bad := goodRecord()
	bad.NPrim = 7

	probs := Records([]truth.Interaction{good, bad})
	if len(probs) != 1 {
		t.Fatalf("Expected 1 problem across both records, got %d: %v.",
			len(probs), probs)
	}
	if probs[0].Record != 1 {
		t.Errorf("Expected the problem to name record 1, got %d.",
			probs[0].Record)
	}
}
