// 3 Mar 2021

package dssp

import (
	"strings"

	"golang.org/x/text/cases"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/andrew-torda/ssdssp/pdb/cmmn"
	"github.com/andrew-torda/ssdssp/pdb/geom"
)

// bbRes is a residue as the calculation sees it. Coordinates are in
// Angstrom.
type bbRes struct {
	ires  int  // index in the host model
	chain int  // chain index from the host
	ok    bool // N, CA, C and O are all present
	pro   bool // proline cannot donate
	hasH  bool // an amide hydrogen could be placed
	n     r3.Vec
	ca    r3.Vec
	c     r3.Vec
	o     r3.Vec
	h     r3.Vec
}

// load reads the four backbone atoms. NT is accepted in place of N
// since some coarse grained force fields call it that.
func (r *bbRes) load(src coordSrc, i int) bool {
	n, okN := src.coord(i, "N")
	if !okN {
		n, okN = src.coord(i, "NT")
	}
	ca, okCA := src.coord(i, "CA")
	c, okC := src.coord(i, "C")
	o, okO := src.coord(i, "O")
	if !(okN && okCA && okC && okO) {
		return false
	}
	r.n, r.ca, r.c, r.o = geom.Vec(n), geom.Vec(ca), geom.Vec(c), geom.Vec(o)
	return true
}

// filterResidues walks over a model and returns everything that is not
// solvent, in order.
func filterResidues(m cmmn.Model, src coordSrc, cfg *Config) []bbRes {
	fold := cases.Fold()
	solvent := cfg.solventSet(fold)
	pro := fold.String("PRO")
	res := make([]bbRes, 0, m.Len())
	for i := 0; i < m.Len(); i++ {
		name := fold.String(strings.TrimSpace(m.ResName(i)))
		if solvent[name] {
			continue
		}
		r := bbRes{ires: i, chain: m.ChainIndex(i), pro: strings.HasPrefix(name, pro)}
		r.ok = r.load(src, i)
		res = append(res, r)
	}
	return res
}

// assignH places the amide hydrogens and returns the number of
// residues with a full backbone.
// The first residue of a chain gets its hydrogen on top of the nitrogen.
// Otherwise the N-H bond is taken parallel to the previous C=O, so a
// residue after a broken one gets no hydrogen and cannot donate.
func assignH(res []bbRes) (int, error) {
	nOk := 0
	for k := range res {
		r := &res[k]
		if !r.ok {
			continue
		}
		nOk++
		if k == 0 || res[k-1].chain != r.chain {
			r.h, r.hasH = r.n, true
			continue
		}
		prev := &res[k-1]
		if !prev.ok {
			continue
		}
		co := r3.Sub(prev.c, prev.o)
		if r3.Norm2(co) == 0 {
			continue
		}
		r.h = r3.Add(r.n, r3.Unit(co))
		r.hasH = true
	}
	if nOk < 3 {
		return nOk, ErrTooFew
	}
	return nOk, nil
}
