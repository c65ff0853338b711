// 3 Mar 2021

package dssp

import (
	"io"
	"log"
	"strings"

	"golang.org/x/text/cases"
)

// Config holds the thresholds and the list of solvent names. Build it
// with NewConfig and change what you need before calling Assign. A
// Config is only read during a calculation, so one can be shared by
// several calls running at the same time.
type Config struct {
	Solvent      []string    // residue names to be dropped as water
	MinCADist2   float64     // nm^2, pairs with CA's further apart are not tried
	HBondCutoff  float64     // kcal/mol, accept bonds below this
	EnergyFloor  float64     // kcal/mol, energies are never below this
	BendAngle    float64     // degrees, kappa above this is a bend
	SpatialIndex bool        // use a k-d tree to find CA neighbours
	NWorker      int         // models calculated at the same time
	Log          *log.Logger // never nil if you came from NewConfig
}

// defaultSolvent are the names the viewer treated as water.
var defaultSolvent = []string{"HOH", "WAT", "SOL", "TIP3", "TP3M", "SPC", "H2O", "TIP"}

// NewConfig returns the usual DSSP settings with logging thrown away.
func NewConfig() *Config {
	return &Config{
		Solvent:     append([]string(nil), defaultSolvent...),
		MinCADist2:  0.81,
		HBondCutoff: -0.5,
		EnergyFloor: -9.9,
		BendAngle:   70,
		NWorker:     1,
		Log:         log.New(io.Discard, "", log.Lshortfile),
	}
}

// AddSolvent adds more residue names to be treated as water.
func (cfg *Config) AddSolvent(names ...string) {
	for _, s := range names {
		if s = strings.TrimSpace(s); s != "" {
			cfg.Solvent = append(cfg.Solvent, s)
		}
	}
}

// solventSet returns the folded solvent names. A Caser keeps state, so
// each calculation brings its own.
func (cfg *Config) solventSet(fold cases.Caser) map[string]bool {
	set := make(map[string]bool, len(cfg.Solvent))
	for _, s := range cfg.Solvent {
		set[fold.String(s)] = true
	}
	return set
}

// IsSolvent says if a residue name is on the solvent list, ignoring case.
func (cfg *Config) IsSolvent(name string) bool {
	fold := cases.Fold()
	return cfg.solventSet(fold)[fold.String(strings.TrimSpace(name))]
}

// logger never returns nil.
func (cfg *Config) logger() *log.Logger {
	if cfg.Log == nil {
		return log.New(io.Discard, "", 0)
	}
	return cfg.Log
}

type Error string

func (e Error) Error() string { return string(e) }

// ErrTooFew means a model did not have enough complete residues to place
// hydrogens. Nothing in the model was labelled.
const ErrTooFew = Error("fewer than three residues with a complete backbone")
