// 2 Mar 2021

package cmmn

// SSType is a secondary structure label for one residue.
type SSType byte

const (
	Coil   SSType = iota // default, nothing found
	Turn                 // hydrogen bonded turn
	Bend                 // high curvature
	Bridge               // isolated beta bridge
	Strand               // ladder, more than one bridge
	Helix                // alpha, i -> i+4
	Helix3               // 3-10, i -> i+3
	Helix5               // pi, i -> i+5
	NSSType
)

var ssNames = [NSSType]string{
	Coil:   "coil",
	Turn:   "turn",
	Bend:   "bend",
	Bridge: "bridge",
	Strand: "strand",
	Helix:  "helix",
	Helix3: "helix_3_10",
	Helix5: "helix_pi",
}

// The usual one letter codes from the DSSP program.
var ssCodes = [NSSType]byte{
	Coil:   '-',
	Turn:   'T',
	Bend:   'S',
	Bridge: 'B',
	Strand: 'E',
	Helix:  'H',
	Helix3: 'G',
	Helix5: 'I',
}

func (s SSType) String() string {
	if s >= NSSType {
		return "unknown"
	}
	return ssNames[s]
}

// Code returns the one letter DSSP code.
func (s SSType) Code() byte {
	if s >= NSSType {
		return '?'
	}
	return ssCodes[s]
}

// Simple is the label as a molecular viewer draws it. Turns, bends and
// isolated bridges are drawn as coil.
func (s SSType) Simple() SSType {
	switch s {
	case Turn, Bend, Bridge:
		return Coil
	}
	return s
}

// IsHelix is true for any of the three helix types.
func (s SSType) IsHelix() bool { return s == Helix || s == Helix3 || s == Helix5 }

// SSFromCode goes from a one letter code back to the label. Unknown
// letters and blanks are coil.
func SSFromCode(c byte) SSType {
	for i, code := range ssCodes {
		if code == c {
			return SSType(i)
		}
	}
	return Coil
}
