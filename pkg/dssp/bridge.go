// 10 Mar 2021
// Beta bridges, ladders and bulges.

package dssp

import (
	"sort"

	"github.com/andrew-torda/ssdssp/pdb/cmmn"
)

type bridgeType byte

const (
	noBridge bridgeType = iota
	parallel
	antiparallel
)

func (b bridgeType) String() string {
	switch b {
	case parallel:
		return "parallel"
	case antiparallel:
		return "antiparallel"
	}
	return "none"
}

// ladder is a run of bridges of one type. i and j are the residues on the
// two strands. For an antiparallel ladder, j runs backwards relative to i,
// so it is kept in increasing order by prepending.
type ladder struct {
	typ    bridgeType
	chainI int
	chainJ int
	i, j   []int
}

func (l *ladder) ib() int { return l.i[0] }
func (l *ladder) ie() int { return l.i[len(l.i)-1] }
func (l *ladder) jb() int { return l.j[0] }
func (l *ladder) je() int { return l.j[len(l.j)-1] }

// sameChain says if residues a-1 and a+1 exist and are on one chain.
func sameChain(res []bbRes, a int) bool {
	return a-1 >= 0 && a+1 < len(res) && res[a-1].chain == res[a+1].chain
}

// testBridge looks at the bonds around i and j.
func testBridge(res []bbRes, hb hbondSet, i, j int) bridgeType {
	if !sameChain(res, i) || !sameChain(res, j) {
		return noBridge
	}
	if (hb.bonded(i+1, j) && hb.bonded(j, i-1)) ||
		(hb.bonded(j+1, i) && hb.bonded(i, j-1)) {
		return parallel
	}
	if (hb.bonded(i+1, j-1) && hb.bonded(j+1, i-1)) ||
		(hb.bonded(j, i) && hb.bonded(i, j)) {
		return antiparallel
	}
	return noBridge
}

// extend tries to add bridge (i, j) to the end of an existing ladder.
func extend(ladders []*ladder, typ bridgeType, i, j int) bool {
	for _, l := range ladders {
		if l.typ != typ || l.ie()+1 != i {
			continue
		}
		switch {
		case typ == parallel && l.je()+1 == j:
			l.i = append(l.i, i)
			l.j = append(l.j, j)
			return true
		case typ == antiparallel && l.jb()-1 == j:
			l.i = append(l.i, i)
			l.j = append([]int{j}, l.j...)
			return true
		}
	}
	return false
}

// findLadders collects bridges into ladders, sorted by chain and then by
// first residue.
func findLadders(res []bbRes, hb hbondSet) []*ladder {
	var ladders []*ladder
	n := len(res)
	for i := 1; i < n-4; i++ {
		for j := i + 3; j < n; j++ {
			typ := testBridge(res, hb, i, j)
			if typ == noBridge || !res[i].ok || !res[j].ok {
				continue
			}
			if !extend(ladders, typ, i, j) {
				ladders = append(ladders, &ladder{
					typ: typ, chainI: res[i].chain, chainJ: res[j].chain,
					i: []int{i}, j: []int{j},
				})
			}
		}
	}
	sort.SliceStable(ladders, func(a, b int) bool {
		la, lb := ladders[a], ladders[b]
		if la.chainI != lb.chainI {
			return la.chainI < lb.chainI
		}
		return la.ib() < lb.ib()
	})
	return ladders
}

// isBulge says if ladder y can be joined onto ladder x across a
// beta bulge.
func isBulge(res []bbRes, x, y *ladder) bool {
	ibx, iex, jbx, jex := x.ib(), x.ie(), x.jb(), x.je()
	iby, iey, jby, jey := y.ib(), y.ie(), y.jb(), y.je()
	if x.typ != y.typ ||
		res[min(ibx, iby)].chain != res[max(iex, iey)].chain ||
		res[min(jbx, jby)].chain != res[max(jex, jey)].chain ||
		iby-iex >= 6 ||
		(iex >= iby && ibx <= iey) {
		return false
	}
	if x.typ == parallel {
		return jby > jbx && ((jby-jex < 6 && iby-iex < 3) || jby-jex < 3)
	}
	return jby < jbx && ((jbx-jey < 6 && iby-iex < 3) || jbx-jey < 3)
}

// mergeBulges joins ladders separated by bulges. After a merge the ladder
// that slid into the removed one's place is tested against the same x.
func mergeBulges(res []bbRes, ladders []*ladder) []*ladder {
	for a := 0; a < len(ladders); a++ {
		for b := a + 1; b < len(ladders); b++ {
			x, y := ladders[a], ladders[b]
			if !isBulge(res, x, y) {
				continue
			}
			x.i = append(x.i, y.i...)
			if x.typ == parallel {
				x.j = append(x.j, y.j...)
			} else {
				x.j = append(append([]int{}, y.j...), x.j...)
			}
			ladders = append(ladders[:b], ladders[b+1:]...)
			b--
		}
	}
	return ladders
}

// labelLadders marks ladders of more than one residue as Strand and the
// rest as Bridge. A residue once marked Strand stays that way.
func labelLadders(ladders []*ladder, ss []cmmn.SSType) {
	for _, l := range ladders {
		lbl := cmmn.Bridge
		if len(l.i) > 1 {
			lbl = cmmn.Strand
		}
		for _, side := range [][]int{l.i, l.j} {
			for _, k := range side {
				if ss[k] != cmmn.Strand {
					ss[k] = lbl
				}
			}
		}
	}
}
