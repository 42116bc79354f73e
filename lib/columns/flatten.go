package columns

/* flatten.go converts between []truth.Interaction and Columns. The column
names below are the stable on-disk names: changing any of them breaks every
existing truth file. */

import (
	"fmt"

	"github.com/hepio/truthcaf/lib/truth"
)

// schema lists every column in its canonical order, along with its type code.
// Record-level columns come first, then the "prim.*" daughter columns.
var schema = []struct {
	name, code string
}{
	{"isvtxcont", BoolCode},
	{"pdg", Int32Code},
	{"pdgorig", Int32Code},
	{"iscc", BoolCode},
	{"mode", Int32Code},
	{"targetPDG", Int32Code},
	{"hitnuc", Int32Code},
	{"E", Float32Code},
	{"vtx", Vec32Code},
	{"momentum", Vec32Code},
	{"position", Vec32Code},
	{"time", Float32Code},
	{"bjorkenX", Float32Code},
	{"inelasticity", Float32Code},
	{"Q2", Float32Code},
	{"q0", Float32Code},
	{"modq", Float32Code},
	{"W", Float32Code},
	{"t", Float32Code},
	{"baseline", Float32Code},
	{"npiplus", Uint32Code},
	{"npiminus", Uint32Code},
	{"npizero", Uint32Code},
	{"nproton", Uint32Code},
	{"nneutron", Uint32Code},
	{"ischarm", BoolCode},
	{"isseaquark", BoolCode},
	{"resnum", Int32Code},
	{"xsec", Float32Code},
	{"genweight", Float32Code},
	{"prod_vtx", Vec32Code},
	{"parent_dcy_mom", Vec32Code},
	{"parent_dcy_mode", Int32Code},
	{"parent_pdg", Int32Code},
	{"parent_dcy_E", Float32Code},
	{"imp_weight", Float32Code},
	{"generator", Int32Code},
	{"genVersion", Uint32SeqCode},
	{"genConfigString", StringCode},
	{"nprim", Int32Code},
	{"prim.pdg", Int32Code},
	{"prim.trkid", Int32Code},
	{"prim.parent", Int32Code},
	{"prim.E", Float32Code},
	{"prim.p", Vec32Code},
	{"prim.start_pos", Vec32Code},
	{"prim.end_pos", Vec32Code},
	{"prim.time", Float32Code},
}

// Names returns the names of every column in canonical order.
func Names() []string {
	names := make([]string, len(schema))
	for i := range schema {
		names[i] = schema[i].name
	}
	return names
}

// TypeOf returns the type code of the named column and an error if no such
// column exists.
func TypeOf(name string) (string, error) {
	for i := range schema {
		if schema[i].name == name {
			return schema[i].code, nil
		}
	}
	return "", fmt.Errorf("There is no column named '%s'. The valid column "+
		"names are %s.", name, Names())
}

// IsPrim returns true if the named column is a per-daughter column rather
// than a per-record column.
func IsPrim(name string) bool {
	return len(name) > 5 && name[:5] == "prim."
}

// Flatten converts a slice of interactions into Columns. It returns an error
// if any record's NPrim disagrees with the length of its Prim slice, since
// the nprim column is what tells a reader how to slice the prim.* columns
// back into records.
func Flatten(recs []truth.Interaction) (Columns, error) {
	nPrim := 0
	for i := range recs {
		if int(recs[i].NPrim) != len(recs[i].Prim) {
			return nil, fmt.Errorf("Record %d has nprim = %d, but its "+
				"daughter sequence has length %d. The two must agree before "+
				"the record can be flattened.",
				i, recs[i].NPrim, len(recs[i].Prim))
		}
		nPrim += len(recs[i].Prim)
	}

	n := len(recs)
	isvtxcont, iscc := make([]bool, n), make([]bool, n)
	ischarm, isseaquark := make([]bool, n), make([]bool, n)
	pdg, pdgorig := make([]int32, n), make([]int32, n)
	mode, targetPDG, hitnuc := make([]int32, n), make([]int32, n),
		make([]int32, n)
	resnum := make([]int32, n)
	parentDcyMode, parentPDG := make([]int32, n), make([]int32, n)
	generator, nprim := make([]int32, n), make([]int32, n)
	e := make([]float32, n)
	time, bjorkenX, inelasticity := make([]float32, n), make([]float32, n),
		make([]float32, n)
	q2, q0, modq := make([]float32, n), make([]float32, n), make([]float32, n)
	w, t, baseline := make([]float32, n), make([]float32, n),
		make([]float32, n)
	xsec, genweight := make([]float32, n), make([]float32, n)
	parentDcyE, impWeight := make([]float32, n), make([]float32, n)
	npiplus, npiminus, npizero := make([]uint32, n), make([]uint32, n),
		make([]uint32, n)
	nproton, nneutron := make([]uint32, n), make([]uint32, n)
	vtx, momentum, position := make([][3]float32, n), make([][3]float32, n),
		make([][3]float32, n)
	prodVtx, parentDcyMom := make([][3]float32, n), make([][3]float32, n)
	genVersion := make([][]uint32, n)
	genConfigString := make([]string, n)

	primPDG, primTrkID := make([]int32, nPrim), make([]int32, nPrim)
	primParent := make([]int32, nPrim)
	primE, primTime := make([]float32, nPrim), make([]float32, nPrim)
	primP := make([][3]float32, nPrim)
	primStart, primEnd := make([][3]float32, nPrim), make([][3]float32, nPrim)

	j := 0
	for i := range recs {
		rec := &recs[i]

		isvtxcont[i], iscc[i] = rec.IsVtxCont, rec.IsCC
		ischarm[i], isseaquark[i] = rec.IsCharm, rec.IsSeaQuark
		pdg[i], pdgorig[i] = rec.PDG, rec.PDGOrig
		mode[i] = int32(rec.Mode)
		targetPDG[i], hitnuc[i] = rec.TargetPDG, rec.HitNuc
		resnum[i] = rec.ResNum
		parentDcyMode[i], parentPDG[i] = rec.ParentDcyMode, rec.ParentPDG
		generator[i] = int32(rec.Generator)
		nprim[i] = rec.NPrim

		e[i] = rec.E
		time[i], bjorkenX[i] = rec.Time, rec.BjorkenX
		inelasticity[i] = rec.Inelasticity
		q2[i], q0[i], modq[i] = rec.Q2, rec.Q0, rec.ModQ
		w[i], t[i], baseline[i] = rec.W, rec.T, rec.Baseline
		xsec[i], genweight[i] = rec.XSec, rec.GenWeight
		parentDcyE[i], impWeight[i] = rec.ParentDcyE, rec.ImpWeight

		npiplus[i], npiminus[i], npizero[i] = rec.NPiPlus, rec.NPiMinus,
			rec.NPiZero
		nproton[i], nneutron[i] = rec.NProton, rec.NNeutron

		vtx[i] = rec.Vtx.Array()
		momentum[i] = rec.Momentum.Array()
		position[i] = rec.Position.Array()
		prodVtx[i] = rec.ProdVtx.Array()
		parentDcyMom[i] = rec.ParentDcyMom.Array()

		genVersion[i] = rec.GenVersion
		genConfigString[i] = rec.GenConfigString

		for k := range rec.Prim {
			p := &rec.Prim[k]
			primPDG[j], primTrkID[j] = p.PDG, p.TrackID
			primParent[j] = p.ParentID
			primE[j], primTime[j] = p.E, p.Time
			primP[j] = p.P.Array()
			primStart[j], primEnd[j] = p.StartPos.Array(), p.EndPos.Array()
			j++
		}
	}

	cols := Columns{}
	add := func(col Column) { cols[col.Name()] = col }

	add(NewBool("isvtxcont", isvtxcont))
	add(NewInt32("pdg", pdg))
	add(NewInt32("pdgorig", pdgorig))
	add(NewBool("iscc", iscc))
	add(NewInt32("mode", mode))
	add(NewInt32("targetPDG", targetPDG))
	add(NewInt32("hitnuc", hitnuc))
	add(NewFloat32("E", e))
	add(NewVec32("vtx", vtx))
	add(NewVec32("momentum", momentum))
	add(NewVec32("position", position))
	add(NewFloat32("time", time))
	add(NewFloat32("bjorkenX", bjorkenX))
	add(NewFloat32("inelasticity", inelasticity))
	add(NewFloat32("Q2", q2))
	add(NewFloat32("q0", q0))
	add(NewFloat32("modq", modq))
	add(NewFloat32("W", w))
	add(NewFloat32("t", t))
	add(NewFloat32("baseline", baseline))
	add(NewUint32("npiplus", npiplus))
	add(NewUint32("npiminus", npiminus))
	add(NewUint32("npizero", npizero))
	add(NewUint32("nproton", nproton))
	add(NewUint32("nneutron", nneutron))
	add(NewBool("ischarm", ischarm))
	add(NewBool("isseaquark", isseaquark))
	add(NewInt32("resnum", resnum))
	add(NewFloat32("xsec", xsec))
	add(NewFloat32("genweight", genweight))
	add(NewVec32("prod_vtx", prodVtx))
	add(NewVec32("parent_dcy_mom", parentDcyMom))
	add(NewInt32("parent_dcy_mode", parentDcyMode))
	add(NewInt32("parent_pdg", parentPDG))
	add(NewFloat32("parent_dcy_E", parentDcyE))
	add(NewFloat32("imp_weight", impWeight))
	add(NewInt32("generator", generator))
	add(NewUint32Seq("genVersion", genVersion))
	add(NewString("genConfigString", genConfigString))
	add(NewInt32("nprim", nprim))
	add(NewInt32("prim.pdg", primPDG))
	add(NewInt32("prim.trkid", primTrkID))
	add(NewInt32("prim.parent", primParent))
	add(NewFloat32("prim.E", primE))
	add(NewVec32("prim.p", primP))
	add(NewVec32("prim.start_pos", primStart))
	add(NewVec32("prim.end_pos", primEnd))
	add(NewFloat32("prim.time", primTime))

	return cols, nil
}

// Unflatten converts Columns back into a slice of interactions. It is the
// exact inverse of Flatten: the reconstructed records are bit-identical to
// the ones that were flattened. An error is returned if a column is missing,
// has the wrong type, or has a length inconsistent with the others.
func Unflatten(cols Columns) ([]truth.Interaction, error) {
	isvtxcont, err := boolData(cols, "isvtxcont")
	if err != nil {
		return nil, err
	}
	n := len(isvtxcont)

	iscc, err := boolData(cols, "iscc")
	if err != nil {
		return nil, err
	}
	ischarm, err := boolData(cols, "ischarm")
	if err != nil {
		return nil, err
	}
	isseaquark, err := boolData(cols, "isseaquark")
	if err != nil {
		return nil, err
	}

	i32 := map[string][]int32{}
	for _, name := range []string{"pdg", "pdgorig", "mode", "targetPDG",
		"hitnuc", "resnum", "parent_dcy_mode", "parent_pdg", "generator",
		"nprim", "prim.pdg", "prim.trkid", "prim.parent"} {
		if i32[name], err = int32Data(cols, name); err != nil {
			return nil, err
		}
	}

	f32 := map[string][]float32{}
	for _, name := range []string{"E", "time", "bjorkenX", "inelasticity",
		"Q2", "q0", "modq", "W", "t", "baseline", "xsec", "genweight",
		"parent_dcy_E", "imp_weight", "prim.E", "prim.time"} {
		if f32[name], err = float32Data(cols, name); err != nil {
			return nil, err
		}
	}

	u32 := map[string][]uint32{}
	for _, name := range []string{"npiplus", "npiminus", "npizero",
		"nproton", "nneutron"} {
		if u32[name], err = uint32Data(cols, name); err != nil {
			return nil, err
		}
	}

	v32 := map[string][][3]float32{}
	for _, name := range []string{"vtx", "momentum", "position", "prod_vtx",
		"parent_dcy_mom", "prim.p", "prim.start_pos", "prim.end_pos"} {
		if v32[name], err = vec32Data(cols, name); err != nil {
			return nil, err
		}
	}

	genVersion, err := uint32SeqData(cols, "genVersion")
	if err != nil {
		return nil, err
	}
	genConfigString, err := stringData(cols, "genConfigString")
	if err != nil {
		return nil, err
	}

	// Every record-level column must have one entry per record.
	for _, name := range Names() {
		if IsPrim(name) {
			continue
		}
		col := cols[name]
		if col.Len() != n {
			return nil, fmt.Errorf("The column '%s' has %d entries, but "+
				"'isvtxcont' has %d. All record-level columns must have one "+
				"entry per record.", name, col.Len(), n)
		}
	}

	// The prim.* columns must together hold exactly sum(nprim) daughters.
	nprim := i32["nprim"]
	nPrimTot := 0
	for i := range nprim {
		if nprim[i] < 0 {
			return nil, fmt.Errorf("Record %d has nprim = %d. Daughter "+
				"counts cannot be negative.", i, nprim[i])
		}
		nPrimTot += int(nprim[i])
	}
	for _, name := range Names() {
		if !IsPrim(name) {
			continue
		}
		col := cols[name]
		if col.Len() != nPrimTot {
			return nil, fmt.Errorf("The column '%s' has %d entries, but the "+
				"'nprim' column implies %d total daughters.",
				name, col.Len(), nPrimTot)
		}
	}

	recs := make([]truth.Interaction, n)
	j := 0
	for i := range recs {
		rec := truth.NewInteraction()

		rec.IsVtxCont, rec.IsCC = isvtxcont[i], iscc[i]
		rec.IsCharm, rec.IsSeaQuark = ischarm[i], isseaquark[i]
		rec.PDG, rec.PDGOrig = i32["pdg"][i], i32["pdgorig"][i]
		rec.Mode = truth.ScatteringMode(i32["mode"][i])
		rec.TargetPDG, rec.HitNuc = i32["targetPDG"][i], i32["hitnuc"][i]
		rec.ResNum = i32["resnum"][i]
		rec.ParentDcyMode = i32["parent_dcy_mode"][i]
		rec.ParentPDG = i32["parent_pdg"][i]
		rec.Generator = truth.Generator(i32["generator"][i])
		rec.NPrim = nprim[i]

		rec.E = f32["E"][i]
		rec.Time, rec.BjorkenX = f32["time"][i], f32["bjorkenX"][i]
		rec.Inelasticity = f32["inelasticity"][i]
		rec.Q2, rec.Q0, rec.ModQ = f32["Q2"][i], f32["q0"][i], f32["modq"][i]
		rec.W, rec.T = f32["W"][i], f32["t"][i]
		rec.Baseline = f32["baseline"][i]
		rec.XSec, rec.GenWeight = f32["xsec"][i], f32["genweight"][i]
		rec.ParentDcyE = f32["parent_dcy_E"][i]
		rec.ImpWeight = f32["imp_weight"][i]

		rec.NPiPlus, rec.NPiMinus = u32["npiplus"][i], u32["npiminus"][i]
		rec.NPiZero = u32["npizero"][i]
		rec.NProton, rec.NNeutron = u32["nproton"][i], u32["nneutron"][i]

		rec.Vtx.FromArray(v32["vtx"][i])
		rec.Momentum.FromArray(v32["momentum"][i])
		rec.Position.FromArray(v32["position"][i])
		rec.ProdVtx.FromArray(v32["prod_vtx"][i])
		rec.ParentDcyMom.FromArray(v32["parent_dcy_mom"][i])

		rec.GenVersion = genVersion[i]
		rec.GenConfigString = genConfigString[i]

		if nprim[i] > 0 {
			rec.Prim = make([]truth.Particle, nprim[i])
			for k := range rec.Prim {
				p := truth.NewParticle()
				p.PDG, p.TrackID = i32["prim.pdg"][j], i32["prim.trkid"][j]
				p.ParentID = i32["prim.parent"][j]
				p.E, p.Time = f32["prim.E"][j], f32["prim.time"][j]
				p.P.FromArray(v32["prim.p"][j])
				p.StartPos.FromArray(v32["prim.start_pos"][j])
				p.EndPos.FromArray(v32["prim.end_pos"][j])
				rec.Prim[k] = p
				j++
			}
		}

		recs[i] = rec
	}

	return recs, nil
}

func boolData(cols Columns, name string) ([]bool, error) {
	col, err := cols.Get(name)
	if err != nil {
		return nil, err
	}
	x, ok := col.Data().([]bool)
	if !ok {
		return nil, typeError(name, BoolCode, col)
	}
	return x, nil
}

func int32Data(cols Columns, name string) ([]int32, error) {
	col, err := cols.Get(name)
	if err != nil {
		return nil, err
	}
	x, ok := col.Data().([]int32)
	if !ok {
		return nil, typeError(name, Int32Code, col)
	}
	return x, nil
}

func uint32Data(cols Columns, name string) ([]uint32, error) {
	col, err := cols.Get(name)
	if err != nil {
		return nil, err
	}
	x, ok := col.Data().([]uint32)
	if !ok {
		return nil, typeError(name, Uint32Code, col)
	}
	return x, nil
}

func float32Data(cols Columns, name string) ([]float32, error) {
	col, err := cols.Get(name)
	if err != nil {
		return nil, err
	}
	x, ok := col.Data().([]float32)
	if !ok {
		return nil, typeError(name, Float32Code, col)
	}
	return x, nil
}

func vec32Data(cols Columns, name string) ([][3]float32, error) {
	col, err := cols.Get(name)
	if err != nil {
		return nil, err
	}
	x, ok := col.Data().([][3]float32)
	if !ok {
		return nil, typeError(name, Vec32Code, col)
	}
	return x, nil
}

func stringData(cols Columns, name string) ([]string, error) {
	col, err := cols.Get(name)
	if err != nil {
		return nil, err
	}
	x, ok := col.Data().([]string)
	if !ok {
		return nil, typeError(name, StringCode, col)
	}
	return x, nil
}

func uint32SeqData(cols Columns, name string) ([][]uint32, error) {
	col, err := cols.Get(name)
	if err != nil {
		return nil, err
	}
	x, ok := col.Data().([][]uint32)
	if !ok {
		return nil, typeError(name, Uint32SeqCode, col)
	}
	return x, nil
}

func typeError(name, want string, col Column) error {
	return fmt.Errorf("The column '%s' should have type '%s', but has type "+
		"'%s'.", name, want, col.Type())
}
