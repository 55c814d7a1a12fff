// This is the upper level for reading PDB files.
// We read the coordinate records and group them into residues.
// Files may be compressed. Big files are mapped rather than read.

package pdb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/pdbprep/pdb/zwrap"
	"github.com/edsrzf/mmap-go"
)

var (
	ErrEmpty   = errors.New("empty file")
	ErrNoAtoms = errors.New("no ATOM or HETATM records")
)

// maxLine is more than enough for any PDB file, but some programs
// write long REMARK lines.
const maxLine = 1024 * 1024

// Read reads ATOM and HETATM records from a reader. All other records
// are ignored. Errors in the coordinates or residue numbers are
// returned with the line number.
func Read(rdr io.Reader) (*Structure, error) {
	var s Structure
	scnnr := bufio.NewScanner(rdr)
	scnnr.Buffer(make([]byte, 0, 4096), maxLine)
	for n := 1; scnnr.Scan(); n++ {
		line := scnnr.Text()
		if !IsAtomLine(line) {
			continue
		}
		a, err := parseAtom(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		s.add(a)
	}
	if err := scnnr.Err(); err != nil {
		return nil, err
	}
	if len(s.Residues) == 0 {
		return nil, ErrNoAtoms
	}
	return &s, nil
}

// ReadFile maps a file into memory and reads it. Gzipped files are
// decompressed on the way.
func ReadFile(fname string) (*Structure, error) {
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
		return nil, fmt.Errorf("%s is a directory", fname)
	}
	if fi.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", fname, ErrEmpty)
	}
	m, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer m.Unmap()

	rdr, err := zwrap.Bytes(m)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	s, err := Read(rdr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

// WriteFile writes a structure to a file, creating or truncating it.
func (s *Structure) WriteFile(fname string) error {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := s.Write(fp); err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return fp.Close()
}
