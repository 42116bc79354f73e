package truth

import (
	"math"
)

/* equal.go contains field-by-field record comparison. Floats are compared by
bit pattern, not by value, so that two sentinel NaNs compare equal and a
sentinel never compares equal to an ordinary NaN. This is the comparison the
round-trip confirmation path uses: a record that survives a write/read cycle
must come back bit-identical. */

// EqualFloat32 returns true if x and y have identical bit patterns. Unlike
// ==, this treats two NaNs with the same payload as equal.
func EqualFloat32(x, y float32) bool {
	return math.Float32bits(x) == math.Float32bits(y)
}

// EqualVector3 returns true if the two vectors are bit-identical
// component-by-component.
func EqualVector3(x, y Vector3) bool {
	return EqualFloat32(x.X, y.X) && EqualFloat32(x.Y, y.Y) &&
		EqualFloat32(x.Z, y.Z)
}

// EqualParticle returns true if the two particles are bit-identical
// field-by-field.
func EqualParticle(x, y *Particle) bool {
	return x.PDG == y.PDG && x.TrackID == y.TrackID &&
		x.ParentID == y.ParentID &&
		EqualFloat32(x.E, y.E) && EqualVector3(x.P, y.P) &&
		EqualVector3(x.StartPos, y.StartPos) &&
		EqualVector3(x.EndPos, y.EndPos) &&
		EqualFloat32(x.Time, y.Time)
}

// Equal returns true if the two interactions are bit-identical
// field-by-field, including every daughter particle.
func Equal(x, y *Interaction) bool {
	if x.IsVtxCont != y.IsVtxCont || x.PDG != y.PDG ||
		x.PDGOrig != y.PDGOrig || x.IsCC != y.IsCC || x.Mode != y.Mode ||
		x.TargetPDG != y.TargetPDG || x.HitNuc != y.HitNuc {
		return false
	}

	if !EqualFloat32(x.E, y.E) || !EqualVector3(x.Vtx, y.Vtx) ||
		!EqualVector3(x.Momentum, y.Momentum) ||
		!EqualVector3(x.Position, y.Position) {
		return false
	}

	if !EqualFloat32(x.Time, y.Time) || !EqualFloat32(x.BjorkenX, y.BjorkenX) ||
		!EqualFloat32(x.Inelasticity, y.Inelasticity) ||
		!EqualFloat32(x.Q2, y.Q2) || !EqualFloat32(x.Q0, y.Q0) ||
		!EqualFloat32(x.ModQ, y.ModQ) || !EqualFloat32(x.W, y.W) ||
		!EqualFloat32(x.T, y.T) || !EqualFloat32(x.Baseline, y.Baseline) {
		return false
	}

	if x.NPiPlus != y.NPiPlus || x.NPiMinus != y.NPiMinus ||
		x.NPiZero != y.NPiZero || x.NProton != y.NProton ||
		x.NNeutron != y.NNeutron {
		return false
	}

	if x.IsCharm != y.IsCharm || x.IsSeaQuark != y.IsSeaQuark ||
		x.ResNum != y.ResNum || !EqualFloat32(x.XSec, y.XSec) ||
		!EqualFloat32(x.GenWeight, y.GenWeight) {
		return false
	}

	if !EqualVector3(x.ProdVtx, y.ProdVtx) ||
		!EqualVector3(x.ParentDcyMom, y.ParentDcyMom) ||
		x.ParentDcyMode != y.ParentDcyMode || x.ParentPDG != y.ParentPDG ||
		!EqualFloat32(x.ParentDcyE, y.ParentDcyE) ||
		!EqualFloat32(x.ImpWeight, y.ImpWeight) {
		return false
	}

	if x.Generator != y.Generator ||
		x.GenConfigString != y.GenConfigString ||
		len(x.GenVersion) != len(y.GenVersion) {
		return false
	}
	for i := range x.GenVersion {
		if x.GenVersion[i] != y.GenVersion[i] {
			return false
		}
	}

	if x.NPrim != y.NPrim || len(x.Prim) != len(y.Prim) {
		return false
	}
	for i := range x.Prim {
		if !EqualParticle(&x.Prim[i], &y.Prim[i]) {
			return false
		}
	}

	return true
}
