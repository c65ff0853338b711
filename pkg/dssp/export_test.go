package dssp

import (
	"github.com/andrew-torda/ssdssp/pdb/cmmn"
)

var Bent = bent

// HBond is one stored bond, keyed by the residue it is stored under.
type HBond struct {
	Key, Partner int
	E            float64
}

type HBondSet = hbondSet

func NewHBondSet(n int) HBondSet { return make(hbondSet, n) }

func (hb hbondSet) Store(r1, r2 int, e float64)     { hb.store(r1, r2, e) }
func (hb hbondSet) Bonded(donor, acceptor int) bool { return hb.bonded(donor, acceptor) }

func (hb hbondSet) List() []HBond {
	var l []HBond
	for i, b := range hb {
		if b.set {
			l = append(l, HBond{i, b.partner, b.e})
		}
	}
	return l
}

// HBonds runs the calculation up to the hydrogen bonds. Keys and
// partners are host residue indices.
func HBonds(m cmmn.Model, cfg *Config) ([]HBond, error) {
	res := filterResidues(m, staticSrc{m}, cfg)
	if _, err := assignH(res); err != nil {
		return nil, err
	}
	var l []HBond
	for _, b := range findHBonds(res, cfg).List() {
		l = append(l, HBond{res[b.Key].ires, res[b.Partner].ires, b.E})
	}
	return l, nil
}

// NearPairs returns the pairs seen by the brute force loop and by the tree.
func NearPairs(m cmmn.Model, cfg *Config) (brute, tree [][2]int) {
	res := filterResidues(m, staticSrc{m}, cfg)
	eachNearPair(res, cfg.MinCADist2, func(i, j int) { brute = append(brute, [2]int{i, j}) })
	eachNearPairTree(res, cfg.MinCADist2, func(i, j int) { tree = append(tree, [2]int{i, j}) })
	return brute, tree
}

// LabelBonds labels a chain with complete backbones from a made up set of
// bonds, donor -> acceptor. Bends are not looked for.
func LabelBonds(chains []int, bonds map[int]int) string {
	res := make([]bbRes, len(chains))
	hb := make(hbondSet, len(chains))
	for i, c := range chains {
		res[i] = bbRes{ires: i, chain: c, ok: true}
	}
	for d, a := range bonds {
		hb[d] = hbond{partner: a, e: -1, set: true}
	}
	ss := make([]cmmn.SSType, len(res))
	labelLadders(mergeBulges(res, findLadders(res, hb)), ss)
	flags := findHelixFlags(res, hb)
	labelHelices(flags, ss)
	labelTurns(res, flags, make([]bool, len(res)), ss)
	return Codes(ss)
}

// Ladder is a ladder with the type spelt out, for tests.
type Ladder struct {
	Anti bool
	I, J []int
}

// Ladders returns the ladders from a made up set of bonds before and
// after bulges are merged.
func Ladders(chains []int, bonds map[int]int) (before, after []Ladder) {
	res := make([]bbRes, len(chains))
	hb := make(hbondSet, len(chains))
	for i, c := range chains {
		res[i] = bbRes{ires: i, chain: c, ok: true}
	}
	for d, a := range bonds {
		hb[d] = hbond{partner: a, e: -1, set: true}
	}
	conv := func(ls []*ladder) []Ladder {
		var out []Ladder
		for _, l := range ls {
			out = append(out, Ladder{l.typ == antiparallel,
				append([]int(nil), l.i...), append([]int(nil), l.j...)})
		}
		return out
	}
	ls := findLadders(res, hb)
	before = conv(ls)
	after = conv(mergeBulges(res, ls))
	return before, after
}

// Codes turns labels into a string of DSSP letters.
func Codes(ss []cmmn.SSType) string {
	b := make([]byte, len(ss))
	for i, s := range ss {
		b[i] = s.Code()
	}
	return string(b)
}
