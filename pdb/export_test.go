package pdb

const (
	OldFmt   = oldFmt
	MmcifFmt = mmcifFmt
	UnkFmt   = unkFmt
)

var NameFormat = nameFormat
