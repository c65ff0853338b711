// This is the upper level for reading PDB files.
// Map the file, decide if it is compressed, check that it really is in
// the old PDB format and then read coordinates and HELIX / SHEET records.

package pdb

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/ssdssp/pdb/zwrap"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrEmpty   = Error("empty file")
	ErrDir     = Error("is a directory")
	ErrMmcif   = Error("mmcif format is not read, only old pdb format")
	ErrFormat  = Error("cannot recognise format")
	ErrNoAtoms = Error("no ATOM or HETATM records")
)

const (
	oldFmt byte = iota
	mmcifFmt
	unkFmt
)

var (
	pdbWords   = []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "HELIX", "SHEET", "CRYST1", "MODEL", "HETATM", "ATOM"}
	mmcifWords = []string{"data_", "_entry.id", "loop_"}
)

// maxTestLines is how far we look for a line that gives the format away.
const maxTestLines = 5000

// lineFormat says if a line looks like mmcif or old pdb.
func lineFormat(s string) byte {
	for _, w := range mmcifWords {
		if strings.HasPrefix(s, w) {
			return mmcifFmt
		}
	}
	for _, w := range pdbWords {
		if strings.HasPrefix(s, w) {
			return oldFmt
		}
	}
	return unkFmt
}

// nameFormat guesses from the file name.
// We cannot use the function from filepath to get the file type,
// since it will return .gz if we feed it a.pdb.gz.
func nameFormat(fname string) byte {
	s := filepath.Base(fname)
	i := strings.IndexByte(s, '.')
	if i == -1 {
		return unkFmt
	}
	s = strings.ToLower(s[i+1:]) // change .ent to ent
	switch {
	case strings.Contains(s, "pdb") || strings.Contains(s, "ent"):
		return oldFmt
	case strings.Contains(s, "cif"):
		return mmcifFmt
	}
	return unkFmt
}

// LogWhere decides where to send logged output. "" throws it away,
// "stdout" is standard output and anything else is a file we append to.
func LogWhere(outinfo string) (*log.Logger, error) {
	var iowriter io.Writer
	switch outinfo {
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	default:
		var err error
		iowriter, err = os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
	}
	return log.New(iowriter, "", log.Lshortfile), nil
}

// mapFile maps a whole file read only. The caller has to Unmap.
func mapFile(fname string) (mmap.MMap, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, ErrDir
	}
	if fi.Size() == 0 {
		return nil, ErrEmpty
	}
	return mmap.Map(fp, mmap.RDONLY, 0)
}

// ReadCoord reads a PDB file, possibly gzipped. Errors come back with
// the file name attached. Chatter goes to lg, which may be nil.
func ReadCoord(fname string, lg *log.Logger) (*Structure, error) {
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	if nameFormat(fname) == mmcifFmt {
		return nil, fmt.Errorf("%s: %w", fname, ErrMmcif)
	}
	mm, err := mapFile(fname)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	defer mm.Unmap()
	rdr, err := zwrap.WrapBytes(mm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	defer rdr.Close()

	s, err := parse(rdr, lg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	s.Fname = fname
	nres := 0
	for _, m := range s.Models {
		nres += len(m.Res)
	}
	lg.Println(fname, "compressed:", rdr.Compressed(), "models:", len(s.Models),
		"residues:", nres, "labels from:", s.ssSrc)
	return s, nil
}

// ReadFrom reads old format PDB from any reader.
func ReadFrom(r io.Reader, lg *log.Logger) (*Structure, error) {
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	return parse(r, lg)
}

// parse goes through the file once. Until it has seen a line that
// belongs to a PDB file, it also checks if it has been given mmcif.
func parse(r io.Reader, lg *log.Logger) (*Structure, error) {
	var b builder
	known := false
	scnr := bufio.NewScanner(r)
	for nline := 1; scnr.Scan(); nline++ {
		line := scnr.Text()
		if !known {
			switch lineFormat(line) {
			case mmcifFmt:
				return nil, ErrMmcif
			case oldFmt:
				known = true
			default:
				if nline >= maxTestLines {
					return nil, ErrFormat
				}
				continue
			}
		}
		if err := b.line(line); err != nil {
			if rerr := scnr.Err(); rerr != nil { // last line was cut short
				return nil, rerr
			}
			return nil, fmt.Errorf("line %d: %w", nline, err)
		}
		if b.done {
			break
		}
	}
	if err := scnr.Err(); err != nil {
		return nil, err
	}
	if !known {
		return nil, ErrFormat
	}
	s, err := b.structure()
	if err != nil {
		return nil, err
	}
	if n := s.applyFileSS(b.ss); n > 0 {
		lg.Println(n, "HELIX / SHEET ranges not found in a model")
	}
	return s, nil
}
