package ssassign

import (
	"bufio"
	"strings"

	"github.com/andrew-torda/ssdssp/pdb/cmmn"
)

// Codes formats labels the way they are printed.
func Codes(ss []cmmn.SSType, colour, simple bool) string {
	var sb strings.Builder
	p := printer{w: bufio.NewWriter(&sb), colour: colour, simple: simple}
	p.codes(ss)
	p.w.Flush()
	return sb.String()
}
