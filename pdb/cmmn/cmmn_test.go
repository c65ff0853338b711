package cmmn_test

import (
	"testing"

	. "github.com/andrew-torda/ssdssp/pdb/cmmn"
)

func TestXyzOk(t *testing.T) {
	var xyz Xyz
	xyz = BrokenXyz
	if xyz.Ok() {
		t.Error("cannot even check if a value is OK")
	}
	xyz = Xyz{1, 1, 1}
	if !xyz.Ok() {
		t.Error("OK should be true")
	}
}

func TestSSCodes(t *testing.T) {
	seen := make(map[byte]bool)
	for s := Coil; s < NSSType; s++ {
		c := s.Code()
		if seen[c] {
			t.Errorf("code %c used twice", c)
		}
		seen[c] = true
		if back := SSFromCode(c); back != s {
			t.Errorf("%v -> %c -> %v", s, c, back)
		}
	}
	if SSFromCode(' ') != Coil {
		t.Error("blank should be coil")
	}
	if NSSType.Code() != '?' || NSSType.String() != "unknown" {
		t.Error("out of range label not caught")
	}
}

func TestSimple(t *testing.T) {
	tests := []struct {
		in, want SSType
	}{
		{Coil, Coil}, {Turn, Coil}, {Bend, Coil}, {Bridge, Coil},
		{Strand, Strand}, {Helix, Helix}, {Helix3, Helix3}, {Helix5, Helix5},
	}
	for _, tt := range tests {
		if got := tt.in.Simple(); got != tt.want {
			t.Errorf("%v.Simple() got %v want %v", tt.in, got, tt.want)
		}
	}
	if !Helix5.IsHelix() || Strand.IsHelix() {
		t.Error("IsHelix broken")
	}
}
