// Package dssp assigns secondary structure from backbone coordinates
// with the Kabsch and Sander hydrogen bond energy. It is a cut down
// DSSP without solvent accessibility.
// The structure comes from somewhere else, through the interfaces in
// pdb/cmmn. Labels are written back with Model.SetSS.
package dssp

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/ssdssp/pdb/cmmn"
	"github.com/andrew-torda/ssdssp/pdb/geom"
)

// State is how far the calculation on one model has got.
type State byte

const (
	Unprocessed State = iota
	ResiduesFiltered
	BondsComputed
	BridgesResolved
	HelicesResolved
	BendsResolved
	Labeled
)

var stateNames = [...]string{
	"unprocessed", "residues filtered", "bonds computed", "bridges resolved",
	"helices resolved", "bends resolved", "labeled"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// Result is what happened to one model. SS and Kappa have one entry per
// residue in the host model, solvent included.
type Result struct {
	Model   int
	State   State // Labeled unless something went wrong
	NRes    int   // residues in the model
	NUsed   int   // residues with a complete backbone
	NHBond  int
	NLadder int
	SS      []cmmn.SSType
	Kappa   []float64 // degrees, geom.NoAngle if not defined
	Count   [cmmn.NSSType]int
	Err     error
}

// run carries one model through the states.
type run struct {
	cfg    *Config
	imodel int
	res    Result
}

func (r *run) advance(next State) {
	if next != r.res.State+1 {
		panic(fmt.Sprintf("model %d: jump from %s to %s", r.imodel, r.res.State, next))
	}
	r.res.State = next
	r.cfg.logger().Printf("model %d: %s", r.imodel, next)
}

// writeBack puts labels on every host residue. Residues we dropped or
// could not use are coil.
func (r *run) writeBack(m cmmn.Model, res []bbRes, ss []cmmn.SSType, kappa []float64) {
	n := m.Len()
	r.res.SS = make([]cmmn.SSType, n)
	r.res.Kappa = make([]float64, n)
	for i := range r.res.Kappa {
		r.res.Kappa[i] = geom.NoAngle
	}
	for k := range res {
		if !res[k].ok {
			continue
		}
		if ss != nil {
			r.res.SS[res[k].ires] = ss[k]
		}
		if kappa != nil {
			r.res.Kappa[res[k].ires] = kappa[k]
		}
	}
	r.res.Count = [cmmn.NSSType]int{}
	for i, t := range r.res.SS {
		m.SetSS(i, t)
		r.res.Count[t]++
	}
}

// classify does the whole calculation for one model, reading coordinates
// from src.
func classify(m cmmn.Model, src coordSrc, cfg *Config, imodel int) Result {
	r := run{cfg: cfg, imodel: imodel}
	r.res.Model = imodel
	r.res.NRes = m.Len()
	lg := cfg.logger()

	res := filterResidues(m, src, cfg)
	nUsed, err := assignH(res)
	r.res.NUsed = nUsed
	r.advance(ResiduesFiltered)
	if err != nil {
		r.res.Err = fmt.Errorf("model %d: %w", imodel, err)
		lg.Println(r.res.Err)
		r.writeBack(m, res, nil, nil)
		return r.res
	}

	hb := findHBonds(res, cfg)
	r.res.NHBond = hb.count()
	r.advance(BondsComputed)
	lg.Printf("model %d: %d residues, %d usable, %d h-bonds", imodel, len(res), nUsed, r.res.NHBond)

	ss := make([]cmmn.SSType, len(res))
	ladders := mergeBulges(res, findLadders(res, hb))
	labelLadders(ladders, ss)
	r.res.NLadder = len(ladders)
	r.advance(BridgesResolved)

	flags := findHelixFlags(res, hb)
	labelHelices(flags, ss)
	r.advance(HelicesResolved)

	kappa, bend := findBends(res, cfg)
	labelTurns(res, flags, bend, ss)
	r.advance(BendsResolved)

	r.writeBack(m, res, ss, kappa)
	r.advance(Labeled)
	return r.res
}

// AssignModel labels one model using its own coordinates.
func AssignModel(m cmmn.Model, cfg *Config) Result {
	return classify(m, staticSrc{m}, cfg, 0)
}

// AssignFrame labels model m using the coordinates in frame f. iframe
// only goes into the result and the log.
func AssignFrame(m cmmn.Model, iframe int, f *Frame, cfg *Config) Result {
	return classify(m, f, cfg, iframe)
}

// Assign labels every model of a structure. Models are independent and
// up to cfg.NWorker of them run at once. A model that fails is left as
// coil and its error is in its Result as well as the joined error.
// When it is finished, the structure is told the labels are computed.
func Assign(s cmmn.Structure, cfg *Config) ([]Result, error) {
	results := make([]Result, s.NModel())
	var g errgroup.Group
	g.SetLimit(max(cfg.NWorker, 1))
	for i := range results {
		i := i
		m := s.Model(i)
		g.Go(func() error {
			results[i] = classify(m, staticSrc{m}, cfg, i)
			return nil
		})
	}
	g.Wait() // workers never return an error
	s.SetSSSrc(cmmn.SrcComputed)

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return results, errors.Join(errs...)
}
