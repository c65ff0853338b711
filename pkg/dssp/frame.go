package dssp

import (
	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/ssdssp/pdb/cmmn"
)

// coordSrc is where backbone coordinates are read from. It is either the
// model itself or one frame of a trajectory.
type coordSrc interface {
	coord(ires int, atom string) (cmmn.Xyz, bool)
}

type staticSrc struct{ m cmmn.Model }

func (s staticSrc) coord(i int, atom string) (cmmn.Xyz, bool) { return s.m.Coord(i, atom) }

// AtomKey names one atom by the residue's index in the model and the
// atom name.
type AtomKey struct {
	Res  int
	Atom string
}

// Frame is one set of coordinates from a trajectory. Slot says which
// row of Coords belongs to an atom. Coords has three columns, x, y and z.
// A row holding cmmn.BrokenXyz is a missing atom.
type Frame struct {
	Slot   map[AtomKey]int
	Coords *matrix.FMatrix2d
}

// NewFrame allocates a frame for nslot atoms with an empty slot map.
func NewFrame(nslot int) *Frame {
	return &Frame{
		Slot:   make(map[AtomKey]int, nslot),
		Coords: matrix.NewFMatrix2d(nslot, 3),
	}
}

// Set stores a coordinate in a slot.
func (f *Frame) Set(slot int, x cmmn.Xyz) {
	row := f.Coords.Mat[slot]
	row[0], row[1], row[2] = x.X, x.Y, x.Z
}

func (f *Frame) coord(ires int, atom string) (cmmn.Xyz, bool) {
	slot, ok := f.Slot[AtomKey{ires, atom}]
	if !ok {
		return cmmn.BrokenXyz, false
	}
	if nrow, _ := f.Coords.Size(); slot < 0 || slot >= nrow {
		return cmmn.BrokenXyz, false
	}
	row := f.Coords.Mat[slot]
	x := cmmn.Xyz{X: row[0], Y: row[1], Z: row[2]}
	return x, x.Ok()
}
