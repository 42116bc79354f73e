package truth

import (
	"fmt"
)

// Generator identifies the event generator that created an interaction. The
// numeric values are part of the on-disk contract shared with downstream
// analysis code and must never be renumbered.
type Generator int32

const (
	UnknownGenerator Generator = 0
	GENIE            Generator = 1
	GiBUU            Generator = 2
	NEUT             Generator = 3
)

// KnownGenerator returns true if g is a member of the closed Generator set.
func KnownGenerator(g Generator) bool {
	return g >= UnknownGenerator && g <= NEUT
}

func (g Generator) String() string {
	switch g {
	case UnknownGenerator:
		return "Unknown"
	case GENIE:
		return "GENIE"
	case GiBUU:
		return "GiBUU"
	case NEUT:
		return "NEUT"
	}
	return fmt.Sprintf("Generator(%d)", int32(g))
}

// ScatteringMode classifies the interaction channel. The values are copied
// from the standard generator-level mode encoding rather than imported from a
// physics-simulation package, so this package stays dependency-free; they are
// part of the on-disk contract and must never be renumbered.
type ScatteringMode int32

const (
	UnknownMode        ScatteringMode = -1
	QE                 ScatteringMode = 0
	Res                ScatteringMode = 1
	DIS                ScatteringMode = 2
	Coh                ScatteringMode = 3
	CohElastic         ScatteringMode = 4
	ElectronScattering ScatteringMode = 5
	IMDAnnihilation    ScatteringMode = 6
	InverseBetaDecay   ScatteringMode = 7
	GlashowResonance   ScatteringMode = 8
	AMNuGamma          ScatteringMode = 9
	MEC                ScatteringMode = 10
	Diffractive        ScatteringMode = 11
	EM                 ScatteringMode = 12
	WeakMix            ScatteringMode = 13
)

// KnownScatteringMode returns true if m is a member of the closed
// ScatteringMode set.
func KnownScatteringMode(m ScatteringMode) bool {
	return m >= UnknownMode && m <= WeakMix
}

func (m ScatteringMode) String() string {
	switch m {
	case UnknownMode:
		return "Unknown"
	case QE:
		return "QE"
	case Res:
		return "Res"
	case DIS:
		return "DIS"
	case Coh:
		return "Coh"
	case CohElastic:
		return "CohElastic"
	case ElectronScattering:
		return "ElectronScattering"
	case IMDAnnihilation:
		return "IMDAnnihilation"
	case InverseBetaDecay:
		return "InverseBetaDecay"
	case GlashowResonance:
		return "GlashowResonance"
	case AMNuGamma:
		return "AMNuGamma"
	case MEC:
		return "MEC"
	case Diffractive:
		return "Diffractive"
	case EM:
		return "EM"
	case WeakMix:
		return "WeakMix"
	}
	return fmt.Sprintf("ScatteringMode(%d)", int32(m))
}

// Interaction is the true interaction of a probe particle (usually a
// neutrino, occasionally a cosmic ray) with the detector. Producers fill the
// fields in directly; there are no setters and no enforced invariants, since
// the columnar file layer needs a flat, introspectable field list. The one
// consistency requirement on producers is that NPrim equal len(Prim): the
// count is a denormalization kept for consumers that read the nprim column
// without the daughter columns, and lib/columns refuses to flatten a record
// that violates it.
type Interaction struct {
	IsVtxCont bool // Is the true vertex inside the fiducial volume?

	PDG     int32 // PDG code of the probe particle
	PDGOrig int32 // Unoscillated PDG code; differs from PDG only in swap files

	IsCC      bool           // CC (true) or NC/interference (false)
	Mode      ScatteringMode // Interaction mode
	TargetPDG int32          // PDG code of the struck target

	// PDG code of the struck nucleon, or, for MEC, the struck
	// nucleon-nucleon pair: 2000000200 nn, 2000000201 np, 2000000202 pp.
	HitNuc int32

	E        float32 // True probe energy [GeV]
	Vtx      Vector3 // Interaction vertex position in detector coord. [cm]
	Momentum Vector3 // Probe three-momentum
	Position Vector3 // Probe position

	Time         float32 // True interaction time
	BjorkenX     float32 // Bjorken x = (k-k')^2 / (2*p.q)
	Inelasticity float32 // Inelasticity y = (p.q) / (k.p) = q0 / E
	Q2           float32 // Four-momentum transfer to the nuclear system
	Q0           float32 // Energy transfer in the lab frame
	ModQ         float32 // |q|, three-momentum transfer in the lab frame
	W            float32 // Hadronic invariant mass [GeV^2]
	T            float32 // Kinematic t
	Baseline     float32 // Distance from probe production to interaction [m]

	NPiPlus  uint32 // pi+ count after the reaction, before FSI
	NPiMinus uint32 // pi- count after the reaction, before FSI
	NPiZero  uint32 // pi0 count after the reaction, before FSI
	NProton  uint32 // proton count after the reaction, before FSI
	NNeutron uint32 // neutron count after the reaction, before FSI

	IsCharm    bool    // Is there a charm quark in the interaction?
	IsSeaQuark bool    // Did the probe scatter off a sea quark?
	ResNum     int32   // Resonance number, straight from the generator
	XSec       float32 // Cross section of the thrown interaction [1/GeV^2]
	GenWeight  float32 // Weight assigned by the generator, if any

	ProdVtx       Vector3 // Probe production vertex [cm; beam coordinates]
	ParentDcyMom  Vector3 // Parent momentum at decay [GeV; beam coordinates]
	ParentDcyMode int32   // Parent hadron/muon decay mode, -1 if unset
	ParentPDG     int32   // PDG code of the parent particle
	ParentDcyE    float32 // Parent energy at decay [GeV]
	ImpWeight     float32 // Importance weight from the flux simulation

	Generator       Generator // Generator that created this interaction
	GenVersion      []uint32  // Version of that generator
	GenConfigString string    // Generator configuration string

	NPrim int32      // Number of primary daughters; must equal len(Prim)
	Prim  []Particle // Primary daughters. The lepton always comes first.
}

// NewInteraction returns an Interaction with every field set to its
// documented default: sentinel NaN for floats and vectors, zero for counts
// and codes, -1 for ParentDcyMode, the Unknown variant for both enums, and
// empty GenVersion and Prim sequences.
func NewInteraction() Interaction {
	return Interaction{
		Mode:          UnknownMode,
		E:             NaN,
		Vtx:           NewVector3(),
		Momentum:      NewVector3(),
		Position:      NewVector3(),
		Time:          NaN,
		BjorkenX:      NaN,
		Inelasticity:  NaN,
		Q2:            NaN,
		Q0:            NaN,
		ModQ:          NaN,
		W:             NaN,
		T:             NaN,
		Baseline:      NaN,
		XSec:          NaN,
		GenWeight:     NaN,
		ProdVtx:       NewVector3(),
		ParentDcyMom:  NewVector3(),
		ParentDcyMode: -1,
		ParentDcyE:    NaN,
		ImpWeight:     NaN,
		Generator:     UnknownGenerator,
	}
}
