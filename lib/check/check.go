/*package check contains producer-side consistency tests for truth records.
None of these are enforced by the truth.Interaction type itself, which has to
stay a plain aggregate; they are the checks a well-behaved producer should
pass before its output is written to disk, and the checks the "check" CLI
mode runs over existing files.*/
package check

import (
	"fmt"

	"github.com/hepio/truthcaf/lib/truth"
)

// Problem describes one consistency violation found in a record.
type Problem struct {
	// Record is the index of the offending record in the slice passed to
	// Records.
	Record int
	// Message is a human-readable description of the violation.
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("record %d: %s", p.Record, p.Message)
}

// Records runs every consistency check over recs and returns the problems
// found, in record order. An empty return value means all checks passed.
func Records(recs []truth.Interaction) []Problem {
	var probs []Problem
	for i := range recs {
		probs = append(probs, Record(i, &recs[i])...)
	}
	return probs
}

// Record runs every consistency check over a single record. The index i is
// only used to label the returned problems.
func Record(i int, rec *truth.Interaction) []Problem {
	var probs []Problem

	if int(rec.NPrim) != len(rec.Prim) {
		probs = append(probs, Problem{i, fmt.Sprintf(
			"nprim = %d, but the daughter sequence has length %d. The "+
				"nprim field exists for consumers that don't want to "+
				"measure the sequence, so the two must agree.",
			rec.NPrim, len(rec.Prim))})
	}

	if !truth.KnownScatteringMode(rec.Mode) {
		probs = append(probs, Problem{i, fmt.Sprintf(
			"mode = %d, which is not a member of the scattering mode "+
				"enumeration. Valid values run from %d to %d.",
			int32(rec.Mode), int32(truth.UnknownMode),
			int32(truth.WeakMix))})
	}

	if !truth.KnownGenerator(rec.Generator) {
		probs = append(probs, Problem{i, fmt.Sprintf(
			"generator = %d, which is not a member of the generator "+
				"enumeration. Valid values run from %d to %d.",
			int32(rec.Generator), int32(truth.UnknownGenerator),
			int32(truth.NEUT))})
	}

	// The lepton-first convention: if any daughter is a charged lepton,
	// the one at index 0 must be.
	for k := range rec.Prim {
		if rec.Prim[k].IsChargedLepton() {
			if k != 0 && !rec.Prim[0].IsChargedLepton() {
				probs = append(probs, Problem{i, fmt.Sprintf(
					"the daughter at index %d is a charged lepton (pdg = "+
						"%d), but the daughter at index 0 is not (pdg = "+
						"%d). The charged lepton always comes first.",
					k, rec.Prim[k].PDG, rec.Prim[0].PDG)})
			}
			break
		}
	}

	return probs
}
