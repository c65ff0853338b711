// 16 Mar 2021

/*
Ssassign reads a protein structure in PDB format and assigns secondary
structure from backbone hydrogen bonds, in the manner of DSSP (Kabsch and
Sander). There is no solvent accessibility and ligands are ignored.

For each model it writes a table with one line per residue (number,
chain, residue number, name, label, kappa, phi and psi), then a string of
one letter labels for each chain. The letters are
	H  alpha helix
	G  3-10 helix
	I  pi helix
	E  strand
	B  isolated bridge
	T  turn
	S  bend
	-  coil

If the file has HELIX or SHEET records, these are reported and nothing
is calculated, unless -f is given. Files may be gzipped. mmCIF is not
read.

Usage:
	ssassign [flags] infile [outfile]

The flags are:
	-b
		Brief. Only write the label strings.
	-c auto|always|never
		Colour the label strings. By default, only if writing to a terminal.
	-f
		Force calculation, even if the file has its own labels.
	-k
		Use a k-d tree to find neighbouring residues. Answers are the same.
	-l logfile
		Write chatter to logfile, or "stdout".
	-n nworker
		Calculate this many models at the same time.
	-p plot.png
		Draw the labels as a strip of coloured cells.
	-s
		Simple labels. Turns, bends and bridges are written as coil.
	-T
		Print the run time.
	-t
		Trajectory. Models 2, 3, ... are treated as frames of model 1
		and there is one label string per frame.
	-w name,name
		More residue names to be thrown away as solvent.
*/
package main
