// 11 Mar 2021

package dssp

import (
	"github.com/andrew-torda/ssdssp/pdb/cmmn"
	"github.com/andrew-torda/ssdssp/pdb/geom"
)

// bent is true when kappa (radians) is strictly over limit (degrees).
func bent(kappa, limit float64) bool { return kappa > limit*geom.Deg2Rad }

// findBends returns kappa in degrees for each residue, geom.NoAngle where
// it cannot be calculated, and whether the residue is a bend.
// Kappa at i is the angle between CA(i-2)->CA(i) and CA(i)->CA(i+2).
func findBends(res []bbRes, cfg *Config) (kappa []float64, bend []bool) {
	n := len(res)
	kappa = make([]float64, n)
	bend = make([]bool, n)
	for i := range kappa {
		kappa[i] = geom.NoAngle
	}
	for i := 2; i < n-2; i++ {
		a, b, c := &res[i-2], &res[i], &res[i+2]
		if a.chain != c.chain || !a.ok || !b.ok || !c.ok {
			continue
		}
		k, err := geom.VecKappa(a.ca, b.ca, c.ca)
		if err != nil {
			continue
		}
		kappa[i] = k * geom.Rad2Deg
		bend[i] = bent(k, cfg.BendAngle)
	}
	return kappa, bend
}

// isTurn is true if an n-turn of any stride starts in the s-1 residues
// before i.
func isTurn(flags []helixFlags, i int) bool {
	for s := 3; s <= 5; s++ {
		for k := 1; k < s; k++ {
			if i >= k && flags[i-k][s].starts() {
				return true
			}
		}
	}
	return false
}

// labelTurns fills the residues that are still coil with turns and then
// bends.
func labelTurns(res []bbRes, flags []helixFlags, bend []bool, ss []cmmn.SSType) {
	for i := 1; i < len(ss)-1; i++ {
		if ss[i] != cmmn.Coil || !res[i].ok {
			continue
		}
		switch {
		case isTurn(flags, i):
			ss[i] = cmmn.Turn
		case bend[i]:
			ss[i] = cmmn.Bend
		}
	}
}
