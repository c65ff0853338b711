// Package pdb/cmmn has common definitions for coordinates, secondary
// structure labels and the view of a structure that the secondary
// structure code needs.
package cmmn

import (
	"math"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

type Xyz struct{ X, Y, Z float32 }
type XyzSl []Xyz // xyz's are coordinates

var BrokenXyz = Xyz{math.MaxFloat32, 0, -math.MaxFloat32}

func (xyz *Xyz) Ok() bool {
	if *xyz != BrokenXyz {
		return true
	}
	return false
}

// SSSrc says where the secondary structure labels of a structure
// came from.
type SSSrc byte

const (
	SrcNone     SSSrc = iota // nobody has labelled anything
	SrcFile                  // HELIX / SHEET records
	SrcComputed              // hydrogen bond calculation
)

func (s SSSrc) String() string {
	switch s {
	case SrcFile:
		return "file"
	case SrcComputed:
		return "computed"
	}
	return "none"
}

// Model is one model (conformer) of a structure, seen as a flat list of
// residues over all chains in file order. ChainIndex numbers the chains
// from zero in the order they appear.
type Model interface {
	Len() int
	ChainIndex(i int) int
	ResName(i int) string
	Coord(i int, atom string) (Xyz, bool)
	SetSS(i int, ss SSType)
}

// Structure is a set of independent models.
type Structure interface {
	NModel() int
	Model(i int) Model
	SetSSSrc(src SSSrc)
}
