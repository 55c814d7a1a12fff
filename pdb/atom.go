package pdb

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Record types we read. Everything else in a file is ignored.
const (
	RecAtom   = "ATOM"
	RecHetatm = "HETATM"
)

// Atom is one ATOM or HETATM record. We keep the line it came from so
// we can write it back without reformatting the numbers.
type Atom struct {
	Record  string // ATOM or HETATM
	Serial  int
	Name    string // trimmed, so " SG " is "SG"
	AltLoc  byte
	ResName string
	Chain   byte
	ResNum  int
	InsCode byte
	Pos     r3.Vec
	Occ     float64
	BFactor float64
	Element string
	Line    string
}

// Cols returns columns start to end of a line, counting from 1 and
// including end, the way the PDB format description counts. Short lines
// give short or empty results, rather than panicking.
func Cols(line string, start, end int) string {
	if start > len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return line[start-1 : end]
}

// trimCols is Cols without the white space
func trimCols(line string, start, end int) string {
	return strings.TrimSpace(Cols(line, start, end))
}

// at returns the byte in column c or a blank
func at(line string, c int) byte {
	if c > len(line) {
		return ' '
	}
	return line[c-1]
}

// IsAtomLine says if a line is an ATOM or HETATM record.
func IsAtomLine(line string) bool {
	return strings.HasPrefix(line, RecAtom) || strings.HasPrefix(line, RecHetatm)
}

// parseAtom reads the fixed columns of one record.
// https://www.wwpdb.org/documentation/file-format-content/format33/sect9.html#ATOM
func parseAtom(line string) (*Atom, error) {
	var a Atom
	var err error
	a.Record = trimCols(line, 1, 6)
	a.Serial, _ = strconv.Atoi(trimCols(line, 7, 11)) // can overflow into hex
	a.Name = trimCols(line, 13, 16)
	a.AltLoc = at(line, 17)
	a.ResName = trimCols(line, 18, 20)
	a.Chain = at(line, 22)
	if a.ResNum, err = strconv.Atoi(trimCols(line, 23, 26)); err != nil {
		return nil, fmt.Errorf("residue number: %w", err)
	}
	a.InsCode = at(line, 27)
	xyz := [3]*float64{&a.Pos.X, &a.Pos.Y, &a.Pos.Z}
	for i, p := range xyz {
		c := 31 + 8*i
		if *p, err = strconv.ParseFloat(trimCols(line, c, c+7), 64); err != nil {
			return nil, fmt.Errorf("coordinate: %w", err)
		}
	}
	a.Occ, _ = strconv.ParseFloat(trimCols(line, 55, 60), 64)
	a.BFactor, _ = strconv.ParseFloat(trimCols(line, 61, 66), 64)
	a.Element = trimCols(line, 77, 78)
	a.Line = line
	return &a, nil
}

// IsHydrogen looks at the element column, and if that is empty,
// the first letter of the atom name that is not a digit, so "1HB"
// counts as a hydrogen.
func (a *Atom) IsHydrogen() bool {
	if a.Element != "" {
		return a.Element == "H" || a.Element == "D"
	}
	name := strings.TrimLeft(a.Name, "0123456789")
	return name != "" && (name[0] == 'H' || name[0] == 'D')
}

// withResName returns the original line with columns 18-20 replaced.
func (a *Atom) withResName(name string) string {
	line := a.Line
	if len(line) < 20 {
		line += strings.Repeat(" ", 20-len(line))
	}
	return line[:17] + fmt.Sprintf("%3s", name) + line[20:]
}
