// 15 Mar 2021

package pdb

import (
	"fmt"

	"github.com/andrew-torda/ssdssp/pdb/cmmn"
	"github.com/andrew-torda/ssdssp/pkg/dssp"
)

// Atom is one coordinate with its name.
type Atom struct {
	Name string
	Xyz  cmmn.Xyz
}

// Residue is a group of atoms with the same chain, residue number,
// insertion code and name.
type Residue struct {
	Name    string
	Num     int  // residue number from the file
	ICode   byte // insertion code, ' ' if none
	ChainID byte // chain letter from the file
	Chain   int  // chain index, counting from zero within the model
	Atoms   []Atom
	SS      cmmn.SSType
}

// Coord finds an atom by name.
func (r *Residue) Coord(name string) (cmmn.Xyz, bool) {
	for _, a := range r.Atoms {
		if a.Name == name {
			return a.Xyz, true
		}
	}
	return cmmn.BrokenXyz, false
}

// Label is how a residue is written in messages, like A17 or A17B.
func (r *Residue) Label() string {
	s := fmt.Sprintf("%c%d", r.ChainID, r.Num)
	if r.ICode != ' ' {
		s += string(r.ICode)
	}
	return s
}

// Model is one MODEL from a file. It satisfies cmmn.Model.
type Model struct {
	Num int // from the MODEL record, 1 if there was none
	Res []Residue
}

func (m *Model) Len() int                                  { return len(m.Res) }
func (m *Model) ChainIndex(i int) int                      { return m.Res[i].Chain }
func (m *Model) ResName(i int) string                      { return m.Res[i].Name }
func (m *Model) Coord(i int, atom string) (cmmn.Xyz, bool) { return m.Res[i].Coord(atom) }
func (m *Model) SetSS(i int, ss cmmn.SSType)               { m.Res[i].SS = ss }

// NChain is the number of chains.
func (m *Model) NChain() int {
	if len(m.Res) == 0 {
		return 0
	}
	return m.Res[len(m.Res)-1].Chain + 1
}

// find returns the index of a residue, or -1.
func (m *Model) find(chainID byte, num int, icode byte) int {
	for i := range m.Res {
		r := &m.Res[i]
		if r.ChainID == chainID && r.Num == num && r.ICode == icode {
			return i
		}
	}
	return -1
}

// Structure is everything read from one file. It satisfies
// cmmn.Structure.
type Structure struct {
	Fname  string
	Models []*Model
	ssSrc  cmmn.SSSrc
}

func (s *Structure) NModel() int             { return len(s.Models) }
func (s *Structure) Model(i int) cmmn.Model  { return s.Models[i] }
func (s *Structure) SetSSSrc(src cmmn.SSSrc) { s.ssSrc = src }
func (s *Structure) SSSrc() cmmn.SSSrc       { return s.ssSrc }

// Errors from treating models as frames.
const (
	ErrNoFrame  = Error("no such model")
	ErrMismatch = Error("model does not match the first model")
)

// Frame takes model k and makes it a frame of the first model, so a
// multi-model file can be treated as a trajectory. The models must
// have the same residues in the same order.
func (s *Structure) Frame(k int) (*dssp.Frame, error) {
	if k < 0 || k >= len(s.Models) {
		return nil, fmt.Errorf("frame %d of %d: %w", k, len(s.Models), ErrNoFrame)
	}
	ref, m := s.Models[0], s.Models[k]
	if len(ref.Res) != len(m.Res) {
		return nil, fmt.Errorf("model %d has %d residues, first has %d: %w",
			m.Num, len(m.Res), len(ref.Res), ErrMismatch)
	}
	natom := 0
	for i := range m.Res {
		if m.Res[i].Name != ref.Res[i].Name {
			return nil, fmt.Errorf("model %d residue %d is %s, first model has %s: %w",
				m.Num, i, m.Res[i].Name, ref.Res[i].Name, ErrMismatch)
		}
		natom += len(m.Res[i].Atoms)
	}
	f := dssp.NewFrame(natom)
	slot := 0
	for i := range m.Res {
		for _, a := range m.Res[i].Atoms {
			f.Slot[dssp.AtomKey{Res: i, Atom: a.Name}] = slot
			f.Set(slot, a.Xyz)
			slot++
		}
	}
	return f, nil
}

// fileSS is one HELIX or SHEET record.
type fileSS struct {
	ss             cmmn.SSType
	chain1, chain2 byte
	num1, num2     int
	icode1, icode2 byte
}

// helixClass maps the PDB helix class to a label.
func helixClass(class int) cmmn.SSType {
	switch class {
	case 3:
		return cmmn.Helix5
	case 5:
		return cmmn.Helix3
	}
	return cmmn.Helix
}

// applyFileSS puts HELIX and SHEET ranges onto every model. It returns
// the number of records that could not be found in a model.
func (s *Structure) applyFileSS(recs []fileSS) (nMissing int) {
	for _, m := range s.Models {
		for _, rec := range recs {
			from := m.find(rec.chain1, rec.num1, rec.icode1)
			to := m.find(rec.chain2, rec.num2, rec.icode2)
			if from < 0 || to < from {
				nMissing++
				continue
			}
			for i := from; i <= to; i++ {
				m.Res[i].SS = rec.ss
			}
		}
	}
	if len(recs) > 0 {
		s.ssSrc = cmmn.SrcFile
	}
	return nMissing
}
