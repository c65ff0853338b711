// 16 Mar 2021
// Assign secondary structure to a PDB file.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/ssdssp/pdb/cmmn"
	"github.com/andrew-torda/ssdssp/pkg/ssassign"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] infile [outfile]")
	fmt.Fprintln(os.Stderr, "Given no outfile, write to standard output.")
	flag.PrintDefaults()
}

func main() {
	var flags ssassign.CmdFlag
	var infile, outfile string

	flag.BoolVar(&flags.Brief, "b", false, "brief, only label strings")
	flag.StringVar(&flags.Colour, "c", "auto", "colour: auto, always or never")
	flag.BoolVar(&flags.Force, "f", false, "calculate even if the file has HELIX / SHEET records")
	flag.BoolVar(&flags.KdTree, "k", false, "use a k-d tree for neighbours")
	flag.StringVar(&flags.LogFile, "l", "", "log file name or stdout")
	flag.IntVar(&flags.NWorker, "n", 1, "number of models to calculate at once")
	flag.StringVar(&flags.PlotFile, "p", "", "png file for a strip plot")
	flag.BoolVar(&flags.Simple, "s", false, "simple labels, no turns, bends or bridges")
	flag.BoolVar(&flags.Time, "T", false, "print out timing information")
	flag.BoolVar(&flags.Traj, "t", false, "treat models as frames of a trajectory")
	flag.StringVar(&flags.Solvent, "w", "", "extra solvent residue names, comma separated")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
		os.Exit(cmmn.ExitUsageError)
	}
	infile = flag.Arg(0)
	if flag.NArg() > 1 {
		outfile = flag.Arg(1)
	}

	if err := ssassign.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmmn.ExitFailure)
	}
	os.Exit(cmmn.ExitSuccess)
}
