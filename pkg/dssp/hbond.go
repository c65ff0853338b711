// 4 Mar 2021
// Kabsch and Sander electrostatic hydrogen bond energies.

package dssp

import (
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	ang2nm = 0.1
	// coupling is 332 kcal A/mol times the partial charges 0.42 e (C=O)
	// and 0.20 e (N-H), divided by 10 since distances are in nm.
	coupling = 332 * 0.42 * 0.20 / 10
)

// hbond is the one bond we keep for a residue. The residue it is stored
// under is usually the donor, but see store().
type hbond struct {
	partner int
	e       float64
	set     bool
}

// hbondSet is indexed by position in the filtered residue list.
type hbondSet []hbond

// store keeps a new bond from donor r1 to acceptor r2 with energy e.
// The bond goes under the donor if it is better than what the donor has.
// If not, it goes under the acceptor, pointing back at the donor, if it
// beats the acceptor's bond. Only one bond per residue survives.
func (hb hbondSet) store(r1, r2 int, e float64) {
	if !hb[r1].set || e < hb[r1].e {
		hb[r1] = hbond{partner: r2, e: e, set: true}
	} else if !hb[r2].set || e < hb[r2].e {
		hb[r2] = hbond{partner: r1, e: e, set: true}
	}
}

// bonded says if there is a bond stored under donor pointing at acceptor.
func (hb hbondSet) bonded(donor, acceptor int) bool {
	if donor < 0 || donor >= len(hb) {
		return false
	}
	return hb[donor].set && hb[donor].partner == acceptor
}

// count is the number of residues with a stored bond.
func (hb hbondSet) count() (n int) {
	for _, b := range hb {
		if b.set {
			n++
		}
	}
	return n
}

// energy is the Kabsch-Sander energy for the N-H of don and C=O of acc,
// in kcal/mol. ok is false if the donor has no hydrogen or two atoms
// sit on top of each other.
func (cfg *Config) energy(don, acc *bbRes) (e float64, ok bool) {
	if !don.hasH {
		return 0, false
	}
	n := r3.Scale(ang2nm, don.n)
	h := r3.Scale(ang2nm, don.h)
	c := r3.Scale(ang2nm, acc.c)
	o := r3.Scale(ang2nm, acc.o)
	dHO := r3.Norm(r3.Sub(h, o))
	dHC := r3.Norm(r3.Sub(h, c))
	dNC := r3.Norm(r3.Sub(n, c))
	dNO := r3.Norm(r3.Sub(n, o))
	if dHO == 0 || dHC == 0 || dNC == 0 || dNO == 0 {
		return 0, false
	}
	e = coupling * (1/dNO + 1/dHC - 1/dHO - 1/dNC)
	if e < cfg.EnergyFloor {
		e = cfg.EnergyFloor
	}
	return e, true
}

// accept returns the energy of a bond from don to acc and whether it is
// good enough to keep. Prolines do not donate.
func (cfg *Config) accept(don, acc *bbRes) (float64, bool) {
	if don.pro {
		return 0, false
	}
	e, ok := cfg.energy(don, acc)
	if !ok || e >= cfg.HBondCutoff {
		return 0, false
	}
	return e, true
}

// caDist2 is the squared CA-CA distance in nm^2.
func caDist2(a, b *bbRes) float64 {
	return r3.Norm2(r3.Scale(ang2nm, r3.Sub(a.ca, b.ca)))
}

// eachNearPair calls fn for every i < j where both residues are complete
// and the CA's are close, going through i then j in increasing order.
func eachNearPair(res []bbRes, cut2 float64, fn func(i, j int)) {
	for i := range res {
		if !res[i].ok {
			continue
		}
		for j := i + 1; j < len(res); j++ {
			if res[j].ok && caDist2(&res[i], &res[j]) < cut2 {
				fn(i, j)
			}
		}
	}
}

// findHBonds tries both directions for each close pair. Neighbours in
// sequence are only tried with the earlier residue as donor.
// The order of calls to store() matters, so the k-d tree must visit
// pairs in the same order as the double loop.
func findHBonds(res []bbRes, cfg *Config) hbondSet {
	hb := make(hbondSet, len(res))
	visit := func(i, j int) {
		if e, ok := cfg.accept(&res[i], &res[j]); ok {
			hb.store(i, j, e)
		}
		if j != i+1 {
			if e, ok := cfg.accept(&res[j], &res[i]); ok {
				hb.store(j, i, e)
			}
		}
	}
	if cfg.SpatialIndex {
		eachNearPairTree(res, cfg.MinCADist2, visit)
	} else {
		eachNearPair(res, cfg.MinCADist2, visit)
	}
	return hb
}
