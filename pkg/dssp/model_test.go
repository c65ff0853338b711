package dssp_test

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/andrew-torda/ssdssp/pdb/cmmn"
)

// fakeRes and fakeModel stand in for a structure read from a file.
type fakeRes struct {
	name  string
	chain int
	atoms map[string]cmmn.Xyz
}

type fakeModel struct {
	res  []fakeRes
	ss   []cmmn.SSType
	nSet []int // how often each residue was labelled
}

func newFakeModel(res []fakeRes) *fakeModel {
	return &fakeModel{res: res, ss: make([]cmmn.SSType, len(res)), nSet: make([]int, len(res))}
}

func (m *fakeModel) Len() int                   { return len(m.res) }
func (m *fakeModel) ChainIndex(i int) int       { return m.res[i].chain }
func (m *fakeModel) ResName(i int) string       { return m.res[i].name }
func (m *fakeModel) SetSS(i int, s cmmn.SSType) { m.ss[i] = s; m.nSet[i]++ }
func (m *fakeModel) Coord(i int, atom string) (cmmn.Xyz, bool) {
	x, ok := m.res[i].atoms[atom]
	return x, ok
}

func (m *fakeModel) codes() string {
	b := make([]byte, len(m.ss))
	for i, s := range m.ss {
		b[i] = s.Code()
	}
	return string(b)
}

type fakeStructure struct {
	models []*fakeModel
	src    cmmn.SSSrc
}

func (s *fakeStructure) NModel() int             { return len(s.models) }
func (s *fakeStructure) Model(i int) cmmn.Model  { return s.models[i] }
func (s *fakeStructure) SetSSSrc(src cmmn.SSSrc) { s.src = src }

const deg = math.Pi / 180

func toXyz(v r3.Vec) cmmn.Xyz { return cmmn.Xyz{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)} }

// place puts atom d at distance l from c, with angle theta at c and
// torsion tau about b-c (NeRF).
func place(a, b, c r3.Vec, l, theta, tau float64) r3.Vec {
	bc := r3.Unit(r3.Sub(c, b))
	n := r3.Unit(r3.Cross(r3.Sub(b, a), bc))
	m := r3.Cross(n, bc)
	d := r3.Scale(-l*math.Cos(theta), bc)
	d = r3.Add(d, r3.Scale(l*math.Sin(theta)*math.Cos(tau), m))
	d = r3.Add(d, r3.Scale(l*math.Sin(theta)*math.Sin(tau), n))
	return r3.Add(c, d)
}

type backbone struct{ n, ca, c, o r3.Vec }

// buildChain makes nres residues from ideal bond lengths and angles with
// the same phi and psi everywhere.
func buildChain(nres int, phi, psi float64) []backbone {
	const omega = 180.
	n := r3.Vec{}
	ca := r3.Vec{X: 1.458}
	a := 111.2 * deg
	c := r3.Add(ca, r3.Vec{X: -1.525 * math.Cos(a), Y: 1.525 * math.Sin(a)})
	var bb []backbone
	for k := 0; k < nres; k++ {
		o := place(n, ca, c, 1.231, 120.5*deg, (psi+180)*deg)
		bb = append(bb, backbone{n, ca, c, o})
		n2 := place(n, ca, c, 1.329, 116.2*deg, psi*deg)
		ca2 := place(ca, c, n2, 1.458, 121.7*deg, omega*deg)
		c2 := place(c, n2, ca2, 1.525, 111.2*deg, phi*deg)
		n, ca, c = n2, ca2, c2
	}
	return bb
}

func toRes(bb []backbone, chain int) []fakeRes {
	res := make([]fakeRes, len(bb))
	for i, b := range bb {
		res[i] = fakeRes{name: "ALA", chain: chain, atoms: map[string]cmmn.Xyz{
			"N": toXyz(b.n), "CA": toXyz(b.ca), "C": toXyz(b.c), "O": toXyz(b.o)}}
	}
	return res
}

// alphaHelix is an ideal right handed helix.
func alphaHelix(nres int) *fakeModel {
	return newFakeModel(toRes(buildChain(nres, -57.8, -47), 0))
}

// strandPair is two antiparallel strands on different chains. The second
// is the first turned 180 degrees about the sheet normal through a point
// dist/2 out from CA of residue mid, so residue mid pairs with its copy.
func strandPair(nres, mid int, dist float64) *fakeModel {
	a := buildChain(nres, -139, 135)
	x := r3.Unit(r3.Sub(a[nres-1].ca, a[0].ca))
	co := r3.Sub(a[mid].o, a[mid].c)
	y := r3.Unit(r3.Sub(co, r3.Scale(r3.Dot(co, x), x)))
	nrm := r3.Cross(x, y)
	p := r3.Add(a[mid].ca, r3.Scale(dist/2, y))
	rot := func(v r3.Vec) r3.Vec {
		d := r3.Sub(v, p)
		return r3.Add(p, r3.Sub(r3.Scale(2*r3.Dot(nrm, d), nrm), d))
	}
	b := make([]backbone, nres)
	for i, r := range a {
		b[i] = backbone{rot(r.n), rot(r.ca), rot(r.c), rot(r.o)}
	}
	return newFakeModel(append(toRes(a, 0), toRes(b, 1)...))
}
