package truth

// Particle is one final-state (daughter) particle of an Interaction, recorded
// as the generator produced it. Interaction stores these in its Prim slice;
// by convention the charged lepton, if there is one, sits at index 0.
type Particle struct {
	PDG       int32   // PDG code of the particle
	TrackID   int32   // Generator/transport track ID
	ParentID  int32   // Track ID of the parent, or 0 for primaries
	E         float32 // Total energy [GeV]
	P         Vector3 // Three-momentum [GeV/c]
	StartPos  Vector3 // Creation position in detector coord. [cm]
	EndPos    Vector3 // Final position in detector coord. [cm]
	Time      float32 // Creation time [ns]
}

// NewParticle returns a Particle with every field set to its default: zero
// for the integer codes, the sentinel NaN for floats and vectors.
func NewParticle() Particle {
	return Particle{
		E:        NaN,
		P:        NewVector3(),
		StartPos: NewVector3(),
		EndPos:   NewVector3(),
		Time:     NaN,
	}
}

// IsChargedLepton returns true if the particle's PDG code is an electron,
// muon, or tau (or one of their antiparticles).
func (p *Particle) IsChargedLepton() bool {
	abs := p.PDG
	if abs < 0 {
		abs = -abs
	}
	return abs == 11 || abs == 13 || abs == 15
}
