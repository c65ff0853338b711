// 15 Mar 2021
// Fixed column records from old format PDB files.

package pdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrew-torda/ssdssp/pdb/cmmn"
)

// ErrShort is for a record that stops before the columns we need.
const ErrShort = Error("record too short")

// col returns columns [from:to) of a line, trimmed, without going off the end.
func col(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	return strings.TrimSpace(line[from:min(to, len(line))])
}

// colByte is a single column, blank if the line is short.
func colByte(line string, i int) byte {
	if i >= len(line) {
		return ' '
	}
	return line[i]
}

func atoi(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", what, s, err)
	}
	return n, nil
}

func atof32(s string) (float32, error) {
	x, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("bad coordinate %q: %w", s, err)
	}
	return float32(x), nil
}

// atomRec is what we keep from an ATOM or HETATM line.
type atomRec struct {
	name    string
	altLoc  byte
	resName string
	chainID byte
	resNum  int
	iCode   byte
	xyz     cmmn.Xyz
}

// parseAtom reads the columns of an ATOM or HETATM line. Residue names
// are allowed to run into column 21, as some simulation programs write
// four letter names like TIP3.
func parseAtom(line string) (atomRec, error) {
	var a atomRec
	if len(line) < 54 {
		return a, ErrShort
	}
	a.name = col(line, 12, 16)
	a.altLoc = line[16]
	a.resName = col(line, 17, 21)
	a.chainID = line[21]
	var err error
	if a.resNum, err = atoi(col(line, 22, 26), "residue number"); err != nil {
		return a, err
	}
	a.iCode = line[26]
	if a.xyz.X, err = atof32(col(line, 30, 38)); err != nil {
		return a, err
	}
	if a.xyz.Y, err = atof32(col(line, 38, 46)); err != nil {
		return a, err
	}
	if a.xyz.Z, err = atof32(col(line, 46, 54)); err != nil {
		return a, err
	}
	return a, nil
}

// parseHelix reads a HELIX record.
func parseHelix(line string) (fileSS, error) {
	var h fileSS
	if len(line) < 38 {
		return h, ErrShort
	}
	var err error
	h.chain1, h.icode1 = line[19], colByte(line, 25)
	h.chain2, h.icode2 = line[31], colByte(line, 37)
	if h.num1, err = atoi(col(line, 21, 25), "helix start"); err != nil {
		return h, err
	}
	if h.num2, err = atoi(col(line, 33, 37), "helix end"); err != nil {
		return h, err
	}
	h.ss = cmmn.Helix
	if c := col(line, 38, 40); c != "" {
		class, err := atoi(c, "helix class")
		if err != nil {
			return h, err
		}
		h.ss = helixClass(class)
	}
	return h, nil
}

// parseSheet reads a SHEET record.
func parseSheet(line string) (fileSS, error) {
	var s fileSS
	if len(line) < 37 {
		return s, ErrShort
	}
	var err error
	s.chain1, s.icode1 = line[21], colByte(line, 26)
	s.chain2, s.icode2 = line[32], colByte(line, 37)
	if s.num1, err = atoi(col(line, 22, 26), "strand start"); err != nil {
		return s, err
	}
	if s.num2, err = atoi(col(line, 33, 37), "strand end"); err != nil {
		return s, err
	}
	s.ss = cmmn.Strand
	return s, nil
}

// builder collects models and residues as lines arrive.
type builder struct {
	models   []*Model
	cur      *Model
	chainIdx int
	newChain bool // after TER the next atom starts a chain
	ss       []fileSS
	done     bool
}

func (b *builder) model() *Model {
	if b.cur == nil {
		b.cur = &Model{Num: len(b.models) + 1}
		b.models = append(b.models, b.cur)
		b.chainIdx, b.newChain = 0, false
	}
	return b.cur
}

// addAtom puts an atom in the current residue or starts a new one.
// Only the first of several alternative positions is kept.
func (b *builder) addAtom(a atomRec) {
	m := b.model()
	var last *Residue
	if n := len(m.Res); n > 0 {
		last = &m.Res[n-1]
	}
	if last == nil || b.newChain || last.ChainID != a.chainID ||
		last.Num != a.resNum || last.ICode != a.iCode || last.Name != a.resName {
		chain := 0
		if last != nil {
			chain = last.Chain
			if b.newChain || last.ChainID != a.chainID {
				chain++
			}
		}
		b.newChain = false
		m.Res = append(m.Res, Residue{
			Name: a.resName, Num: a.resNum, ICode: a.iCode,
			ChainID: a.chainID, Chain: chain,
		})
		last = &m.Res[len(m.Res)-1]
	}
	if _, dup := last.Coord(a.name); dup {
		return
	}
	last.Atoms = append(last.Atoms, Atom{Name: a.name, Xyz: a.xyz})
}

// line deals with one line of the file.
func (b *builder) line(line string) error {
	rec := line
	if len(rec) > 6 {
		rec = rec[:6]
	}
	switch strings.TrimSpace(rec) {
	case "ATOM", "HETATM":
		a, err := parseAtom(line)
		if err != nil {
			return err
		}
		b.addAtom(a)
	case "TER":
		b.newChain = true
	case "MODEL":
		num, err := atoi(col(line, 10, 14), "model number")
		if err != nil {
			num = len(b.models) + 1
		}
		b.cur = nil
		b.model().Num = num
	case "ENDMDL":
		b.cur = nil
	case "END":
		b.done = true
	case "HELIX":
		h, err := parseHelix(line)
		if err != nil {
			return err
		}
		b.ss = append(b.ss, h)
	case "SHEET":
		s, err := parseSheet(line)
		if err != nil {
			return err
		}
		b.ss = append(b.ss, s)
	}
	return nil
}

// structure finishes off. Empty models, like one opened by a MODEL
// record at the end of a file, are dropped.
func (b *builder) structure() (*Structure, error) {
	s := &Structure{}
	for _, m := range b.models {
		if len(m.Res) > 0 {
			s.Models = append(s.Models, m)
		}
	}
	if len(s.Models) == 0 {
		return nil, ErrNoAtoms
	}
	return s, nil
}
