package cafio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/hepio/truthcaf/lib/columns"
	"github.com/hepio/truthcaf/lib/eq"
	"github.com/hepio/truthcaf/lib/truth"
)

// testRecords returns records exercising zero, one, and several daughters,
// sentinel and non-sentinel floats, and non-default enum values.
func testRecords() []truth.Interaction {
	r0 := truth.NewInteraction()

	r1 := truth.NewInteraction()
	r1.IsVtxCont, r1.IsCC = true, true
	r1.PDG, r1.PDGOrig = 14, 14
	r1.Mode = truth.QE
	r1.TargetPDG, r1.HitNuc = 1000180400, 2112
	r1.E, r1.Time = 2.5, 340.0
	r1.BjorkenX, r1.Inelasticity = 0.31, 0.16
	r1.Q2 = 0.45
	r1.Vtx = truth.Vector3{10, -20, 30}
	r1.Momentum = truth.Vector3{0, 0, 2.5}
	r1.NProton = 1
	r1.IsCharm = true
	r1.XSec, r1.GenWeight = 1.3e-10, 1.0
	r1.Generator = truth.GENIE
	r1.GenVersion = []uint32{3, 0, 6}
	r1.GenConfigString = "AR23_20i_00_000"
	mu := truth.NewParticle()
	mu.PDG, mu.TrackID = 13, 1
	mu.E = 2.1
	mu.P = truth.Vector3{0.1, -0.1, 2.0}
	pr := truth.NewParticle()
	pr.PDG, pr.TrackID, pr.ParentID = 2212, 2, 1
	r1.NPrim = 2
	r1.Prim = []truth.Particle{mu, pr}

	r2 := truth.NewInteraction()
	r2.PDG, r2.PDGOrig = -12, -14
	r2.Mode = truth.Coh
	r2.Generator = truth.NEUT
	r2.ParentDcyMode, r2.ParentPDG = 11, 211
	r2.ParentDcyE, r2.ImpWeight = 4.2, 0.93
	r2.ProdVtx = truth.Vector3{0, 0, -5000}
	e := truth.NewParticle()
	e.PDG = 11
	r2.NPrim = 1
	r2.Prim = []truth.Particle{e}

	return []truth.Interaction{r0, r1, r2}
}

func roundTrip(t *testing.T, recs []truth.Interaction,
	order binary.ByteOrder) []truth.Interaction {
	fname := filepath.Join(t.TempDir(), "test.caf")

	wr := NewWriter(fname, order)
	if err := wr.Write(recs); err != nil {
		t.Fatalf("Expected Write() to succeed, but got error '%s'.",
			err.Error())
	}
	if err := wr.Flush(); err != nil {
		t.Fatalf("Expected Flush() to succeed, but got error '%s'.",
			err.Error())
	}

	out, err := ReadFile(fname)
	if err != nil {
		t.Fatalf("Expected ReadFile() to succeed, but got error '%s'.",
			err.Error())
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	recs := testRecords()
	out := roundTrip(t, recs, binary.LittleEndian)

	if len(out) != len(recs) {
		t.Fatalf("Expected %d records back, got %d.", len(recs), len(out))
	}
	for i := range recs {
		if !truth.Equal(&recs[i], &out[i]) {
			t.Errorf("Expected record %d to survive the file round trip "+
				"bit-identically, but it changed.", i)
		}
	}

	// The unset fields must come back as the exact sentinel bit pattern,
	// not just some NaN.
	if !truth.IsSentinel(out[0].E) || !truth.IsSentinel(out[0].Vtx.Z) {
		t.Errorf("Expected unset floats to come back as the sentinel NaN.")
	}
	// Enum values must come back as their exact integers.
	if out[2].Mode != truth.Coh || int32(out[2].Mode) != 3 {
		t.Errorf("Expected mode Coh to round-trip as 3, got %d.",
			int32(out[2].Mode))
	}
	if out[2].Generator != truth.NEUT || int32(out[2].Generator) != 3 {
		t.Errorf("Expected generator NEUT to round-trip as 3, got %d.",
			int32(out[2].Generator))
	}
}

func TestRoundTripBigEndian(t *testing.T) {
	recs := testRecords()
	out := roundTrip(t, recs, binary.BigEndian)

	for i := range recs {
		if !truth.Equal(&recs[i], &out[i]) {
			t.Errorf("Expected record %d to survive a big-endian round "+
				"trip bit-identically, but it changed.", i)
		}
	}
}

func TestRoundTripNoRecords(t *testing.T) {
	out := roundTrip(t, []truth.Interaction{}, binary.LittleEndian)
	if len(out) != 0 {
		t.Errorf("Expected 0 records back, got %d.", len(out))
	}
}

func TestLeptonFirstSurvives(t *testing.T) {
	rec := truth.NewInteraction()
	rec.IsCC = true
	rec.Mode = truth.QE
	rec.PDG = 14
	rec.E = 2.5
	mu := truth.NewParticle()
	mu.PDG = 13
	rec.NPrim = 1
	rec.Prim = []truth.Particle{mu}

	out := roundTrip(t, []truth.Interaction{rec}, binary.LittleEndian)
	if len(out) != 1 {
		t.Fatalf("Expected 1 record back, got %d.", len(out))
	}
	if !out[0].IsCC || out[0].Mode != truth.QE || out[0].PDG != 14 {
		t.Errorf("Expected iscc/mode/pdg to survive the round trip.")
	}
	if !truth.EqualFloat32(out[0].E, 2.5) {
		t.Errorf("Expected E = 2.5 back, got %g.", out[0].E)
	}
	if len(out[0].Prim) != 1 || out[0].Prim[0].PDG != 13 {
		t.Errorf("Expected the muon daughter to stay at index 0.")
	}
}

func TestReadColumn(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.caf")
	if err := WriteFile(fname, testRecords()); err != nil {
		t.Fatalf("Expected WriteFile() to succeed, but got error '%s'.",
			err.Error())
	}

	rd, err := NewReader(fname)
	if err != nil {
		t.Fatalf("Expected NewReader() to succeed, but got error '%s'.",
			err.Error())
	}
	defer rd.Close()

	if rd.N != 3 || rd.NPrim != 3 {
		t.Errorf("Expected header with N = 3 and NPrim = 3, got %d and %d.",
			rd.N, rd.NPrim)
	}
	if !eq.Strings(rd.Names, columns.Names()) {
		t.Errorf("Expected the file's column names to match the schema, "+
			"got %v.", rd.Names)
	}

	col, err := rd.ReadColumn("E")
	if err != nil {
		t.Fatalf("Expected ReadColumn('E') to succeed, but got error "+
			"'%s'.", err.Error())
	}
	if !eq.Generic([]float32{truth.NaN, 2.5, truth.NaN}, col.Data()) {
		t.Errorf("Expected E column [NaN 2.5 NaN], got %v.", col.Data())
	}

	col, err = rd.ReadColumn("prim.pdg")
	if err != nil {
		t.Fatalf("Expected ReadColumn('prim.pdg') to succeed, but got "+
			"error '%s'.", err.Error())
	}
	if !eq.Generic([]int32{13, 2212, 11}, col.Data()) {
		t.Errorf("Expected prim.pdg column [13 2212 11], got %v.",
			col.Data())
	}

	if _, err := rd.ReadColumn("not_a_column"); err == nil {
		t.Errorf("Expected ReadColumn() to fail on an unknown name, but " +
			"it didn't.")
	}
}

func TestWriterMisuse(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.caf")

	wr := NewWriter(fname, binary.LittleEndian)
	if err := wr.Flush(); err == nil {
		t.Errorf("Expected Flush() before Write() to fail, but it didn't.")
	}
	if err := wr.Write(testRecords()); err != nil {
		t.Fatalf("Expected Write() to succeed, but got error '%s'.",
			err.Error())
	}
	if err := wr.Write(testRecords()); err == nil {
		t.Errorf("Expected a second Write() to fail, but it didn't.")
	}

	rec := truth.NewInteraction()
	rec.NPrim = 5
	wr = NewWriter(fname, binary.LittleEndian)
	if err := wr.Write([]truth.Interaction{rec}); err == nil {
		t.Errorf("Expected Write() to reject a record with an " +
			"inconsistent nprim, but it didn't.")
	}
}

func TestBadMagicNumber(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "junk.caf")
	err := os.WriteFile(fname, []byte("not a truth file at all"), 0666)
	if err != nil {
		t.Fatalf("Could not write test file: %s.", err.Error())
	}

	if _, err := NewReader(fname); err == nil {
		t.Errorf("Expected NewReader() to reject a file with a bad magic " +
			"number, but it didn't.")
	}
}

func TestFutureVersion(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "future.caf")

	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b[:4], MagicNumber)
	binary.LittleEndian.PutUint32(b[4:], Version+1)
	if err := os.WriteFile(fname, b, 0666); err != nil {
		t.Fatalf("Could not write test file: %s.", err.Error())
	}

	if _, err := NewReader(fname); err == nil {
		t.Errorf("Expected NewReader() to reject a file with a newer " +
			"format version, but it didn't.")
	}
}
