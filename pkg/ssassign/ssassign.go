// 16 Mar 2021
// Read a PDB file, assign secondary structure and write a table and
// label strings. Optionally draw a picture.

package ssassign

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/andrew-torda/ssdssp/pdb"
	"github.com/andrew-torda/ssdssp/pdb/cmmn"
	"github.com/andrew-torda/ssdssp/pdb/geom"
	"github.com/andrew-torda/ssdssp/pkg/dssp"
	"github.com/andrew-torda/ssdssp/pkg/ssplot"
)

type CmdFlag struct {
	Brief    bool   // only label strings, no table per residue
	Colour   string // "auto", "always" or "never"
	Force    bool   // recalculate, even if the file has HELIX / SHEET
	KdTree   bool   // find close residues with a k-d tree
	LogFile  string // "" for nothing, "stdout" or a file name
	NWorker  int    // models calculated at once
	PlotFile string // write a png strip plot here
	Simple   bool   // turns, bends and bridges shown as coil
	Solvent  string // more solvent names, comma separated
	Time     bool   // print run time
	Traj     bool   // models after the first are frames of the first
}

// ErrColour is for a -c value we do not know.
var ErrColour = errors.New(`colour must be "auto", "always" or "never"`)

// ansi escapes for labels on a terminal. Coil is left plain.
var ansi = [cmmn.NSSType]string{
	cmmn.Turn:   "\x1b[34m",
	cmmn.Bend:   "\x1b[32m",
	cmmn.Bridge: "\x1b[36m",
	cmmn.Strand: "\x1b[33m",
	cmmn.Helix:  "\x1b[31m",
	cmmn.Helix3: "\x1b[35m",
	cmmn.Helix5: "\x1b[91m",
}

const ansiReset = "\x1b[0m"

// printer knows how labels should look.
type printer struct {
	w      *bufio.Writer
	colour bool
	simple bool
}

func (p *printer) label(s cmmn.SSType) cmmn.SSType {
	if p.simple {
		return s.Simple()
	}
	return s
}

// codes writes a string of one letter codes, with colour if wanted.
func (p *printer) codes(ss []cmmn.SSType) {
	prev := cmmn.Coil
	for _, s := range ss {
		s = p.label(s)
		if p.colour && s != prev {
			if prev != cmmn.Coil {
				p.w.WriteString(ansiReset)
			}
			p.w.WriteString(ansi[s])
			prev = s
		}
		p.w.WriteByte(s.Code())
	}
	if p.colour && prev != cmmn.Coil {
		p.w.WriteString(ansiReset)
	}
}

// angle formats radians as degrees, or NoAngle.
func angle(a float64, ok bool) float64 {
	if !ok {
		return geom.NoAngle
	}
	return a * geom.Rad2Deg
}

// phiPsi calculates backbone torsions for residue i.
func phiPsi(m *pdb.Model, i int) (phi, psi float64) {
	r := &m.Res[i]
	n, okN := r.Coord("N")
	ca, okCA := r.Coord("CA")
	c, okC := r.Coord("C")
	var okPhi, okPsi bool
	if i > 0 && m.Res[i-1].Chain == r.Chain {
		if cPrev, ok := m.Res[i-1].Coord("C"); ok && okN && okCA && okC {
			phi, okPhi = geom.XyzDhdrl(cPrev, n, ca, c), true
		}
	}
	if i+1 < len(m.Res) && m.Res[i+1].Chain == r.Chain {
		if nNext, ok := m.Res[i+1].Coord("N"); ok && okN && okCA && okC {
			psi, okPsi = geom.XyzDhdrl(n, ca, c, nNext), true
		}
	}
	return angle(phi, okPhi), angle(psi, okPsi)
}

// chainRuns splits a model into chains, returning the first residue of
// each and one past the end.
func chainRuns(m *pdb.Model) []int {
	var starts []int
	for i := range m.Res {
		if i == 0 || m.Res[i].Chain != m.Res[i-1].Chain {
			starts = append(starts, i)
		}
	}
	return append(starts, len(m.Res))
}

func modelSS(m *pdb.Model) []cmmn.SSType {
	ss := make([]cmmn.SSType, len(m.Res))
	for i := range m.Res {
		ss[i] = m.Res[i].SS
	}
	return ss
}

// table writes one line per residue.
func (p *printer) table(m *pdb.Model, kappa []float64) {
	fmt.Fprintf(p.w, "#%5s %5s %6s %4s %2s %7s %7s %7s\n",
		"n", "chain", "resnum", "name", "ss", "kappa", "phi", "psi")
	for i := range m.Res {
		r := &m.Res[i]
		k := geom.NoAngle
		if kappa != nil {
			k = kappa[i]
		}
		phi, psi := phiPsi(m, i)
		fmt.Fprintf(p.w, "%6d %5c %5d%c %4s %2c %7.1f %7.1f %7.1f\n",
			i+1, r.ChainID, r.Num, r.ICode, r.Name, p.label(r.SS).Code(), k, phi, psi)
	}
}

// chains writes a label string for each chain.
func (p *printer) chains(m *pdb.Model) {
	runs := chainRuns(m)
	ss := modelSS(m)
	for k := 0; k+1 < len(runs); k++ {
		from, to := runs[k], runs[k+1]
		fmt.Fprintf(p.w, "%c ", m.Res[from].ChainID)
		p.codes(ss[from:to])
		p.w.WriteByte('\n')
	}
}

func (p *printer) counts(m *pdb.Model) {
	var n [cmmn.NSSType]int
	for i := range m.Res {
		n[p.label(m.Res[i].SS)]++
	}
	p.w.WriteString("# counts")
	for t, c := range n {
		if c > 0 {
			fmt.Fprintf(p.w, " %s %d", cmmn.SSType(t), c)
		}
	}
	p.w.WriteByte('\n')
}

// wantColour decides about escape codes.
func wantColour(how string, w io.Writer) (bool, error) {
	switch how {
	case "", "auto":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, ErrColour
}

// newConfig turns command line flags into dssp settings.
func newConfig(flags *CmdFlag, lg *log.Logger) *dssp.Config {
	cfg := dssp.NewConfig()
	cfg.SpatialIndex = flags.KdTree
	if flags.NWorker > 0 {
		cfg.NWorker = flags.NWorker
	}
	if flags.Solvent != "" {
		cfg.AddSolvent(strings.Split(flags.Solvent, ",")...)
	}
	cfg.Log = lg
	return cfg
}

// doModels labels each model, unless the file came with labels and we
// are not forced. It returns plot rows, one per chain.
func doModels(s *pdb.Structure, flags *CmdFlag, cfg *dssp.Config, p *printer) ([]ssplot.Row, error) {
	var results []dssp.Result
	var err error
	if s.SSSrc() == cmmn.SrcFile && !flags.Force {
		cfg.Log.Println(s.Fname, "keeping labels from file, use -f to recalculate")
	} else {
		results, err = dssp.Assign(s, cfg)
		if err != nil {
			cfg.Log.Println(err)
			fmt.Fprintln(os.Stderr, "warning:", err)
		}
	}
	var rows []ssplot.Row
	nFail := 0
	for im, m := range s.Models {
		var kappa []float64
		if results != nil {
			kappa = results[im].Kappa
			if results[im].Err != nil {
				nFail++
			}
		}
		fmt.Fprintf(p.w, "# %s model %d labels %s\n", s.Fname, m.Num, s.SSSrc())
		if !flags.Brief {
			p.table(m, kappa)
		}
		p.chains(m)
		p.counts(m)
		runs := chainRuns(m)
		ss := modelSS(m)
		for k := 0; k+1 < len(runs); k++ {
			rows = append(rows, ssplot.Row{
				Caption: fmt.Sprintf("%d %c", m.Num, m.Res[runs[k]].ChainID),
				SS:      p.simplify(ss[runs[k]:runs[k+1]]),
			})
		}
	}
	if nFail == len(s.Models) {
		return rows, err
	}
	return rows, nil
}

func (p *printer) simplify(ss []cmmn.SSType) []cmmn.SSType {
	out := make([]cmmn.SSType, len(ss))
	for i, s := range ss {
		out[i] = p.label(s)
	}
	return out
}

// doTraj treats every model as a frame of the first and writes one
// label string per frame.
func doTraj(s *pdb.Structure, cfg *dssp.Config, p *printer) ([]ssplot.Row, error) {
	ref := s.Models[0]
	var rows []ssplot.Row
	fmt.Fprintf(p.w, "# %s %d frames of %d residues\n", s.Fname, len(s.Models), ref.Len())
	for k := range s.Models {
		f, err := s.Frame(k)
		if err != nil {
			return nil, err
		}
		r := dssp.AssignFrame(ref, k, f, cfg)
		if r.Err != nil {
			return nil, fmt.Errorf("frame %d: %w", k+1, r.Err)
		}
		fmt.Fprintf(p.w, "%5d ", k+1)
		p.codes(r.SS)
		p.w.WriteByte('\n')
		rows = append(rows, ssplot.Row{Caption: fmt.Sprint(k + 1), SS: p.simplify(r.SS)})
	}
	s.SetSSSrc(cmmn.SrcComputed)
	return rows, nil
}

func writePlot(fname string, rows []ssplot.Row) error {
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("plot file %v: %w", fname, err)
	}
	if err := ssplot.WritePNG(fp, rows, ssplot.DefaultOptions()); err != nil {
		fp.Close()
		return fmt.Errorf("plot file %v: %w", fname, err)
	}
	return fp.Close()
}

// Mymain reads infile and writes to outfile, or standard output if
// outfile is "" or "-".
func Mymain(flags *CmdFlag, infile, outfile string) error {
	if flags.Time {
		startTime := time.Now()
		end := func() {
			fmt.Fprintln(os.Stderr, "finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}
	lg, err := pdb.LogWhere(flags.LogFile)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	s, err := pdb.ReadCoord(infile, lg)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outfile != "" && outfile != "-" {
		fp, err := os.Create(outfile)
		if err != nil {
			return fmt.Errorf("output file %v: %w", outfile, err)
		}
		defer fp.Close()
		out = fp
	}
	colour, err := wantColour(flags.Colour, out)
	if err != nil {
		return err
	}
	p := &printer{w: bufio.NewWriter(out), colour: colour, simple: flags.Simple}

	cfg := newConfig(flags, lg)
	var rows []ssplot.Row
	if flags.Traj {
		rows, err = doTraj(s, cfg, p)
	} else {
		rows, err = doModels(s, flags, cfg, p)
	}
	if e := p.w.Flush(); err == nil {
		err = e
	}
	if err != nil {
		return err
	}
	if flags.PlotFile != "" {
		return writePlot(flags.PlotFile, rows)
	}
	return nil
}
