// 11 Mar 2021

package dssp

import (
	"github.com/andrew-torda/ssdssp/pdb/cmmn"
)

type helixFlag byte

const (
	hNone helixFlag = iota
	hStart
	hEnd
	hStartEnd
	hMiddle
)

func (f helixFlag) starts() bool { return f == hStart || f == hStartEnd }

// helixFlags holds a flag for each of the strides 3, 4 and 5. Indices 0 to
// 2 are not used so the stride can be the index.
type helixFlags [6]helixFlag

// findHelixFlags marks n-turns, i -> i+s, for s = 3, 4, 5 wherever the
// N-H of i+s is bonded to the C=O of i.
func findHelixFlags(res []bbRes, hb hbondSet) []helixFlags {
	n := len(res)
	flags := make([]helixFlags, n)
	for s := 3; s <= 5; s++ {
		for i := 0; i+s < n; i++ {
			if res[i].chain != res[i+s].chain || !hb.bonded(i+s, i) {
				continue
			}
			flags[i+s][s] = hEnd
			for k := i + 1; k < i+s; k++ {
				if flags[k][s] == hNone {
					flags[k][s] = hMiddle
				}
			}
			if flags[i][s] == hEnd {
				flags[i][s] = hStartEnd
			} else {
				flags[i][s] = hStart
			}
		}
	}
	return flags
}

// twoStarts is true when turns of stride s start at both i-1 and i.
func twoStarts(flags []helixFlags, i, s int) bool {
	return flags[i][s].starts() && flags[i-1][s].starts()
}

// allOf says if every label in ss[from:to] is one of ok.
func allOf(ss []cmmn.SSType, from, to int, ok ...cmmn.SSType) bool {
	for k := from; k < to; k++ {
		found := false
		for _, t := range ok {
			if ss[k] == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// labelHelices writes alpha, then 3-10, then pi helices. Alpha helices
// leave strand and bridge residues alone. 3-10 and pi helices only go where
// there is nothing more important.
func labelHelices(flags []helixFlags, ss []cmmn.SSType) {
	n := len(ss)
	for i := 1; i < n-4; i++ {
		if !twoStarts(flags, i, 4) {
			continue
		}
		for k := i; k <= i+3; k++ {
			if ss[k] != cmmn.Strand && ss[k] != cmmn.Bridge {
				ss[k] = cmmn.Helix
			}
		}
	}
	for i := 1; i < n-3; i++ {
		if twoStarts(flags, i, 3) && allOf(ss, i, i+3, cmmn.Coil, cmmn.Helix3) {
			for k := i; k <= i+2; k++ {
				ss[k] = cmmn.Helix3
			}
		}
	}
	for i := 1; i < n-5; i++ {
		if twoStarts(flags, i, 5) && allOf(ss, i, i+5, cmmn.Coil, cmmn.Helix5, cmmn.Helix) {
			for k := i; k <= i+4; k++ {
				ss[k] = cmmn.Helix5
			}
		}
	}
}
