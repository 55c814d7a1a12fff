// Package pdbtest makes small PDB files for the tests in other packages.
// Getting the columns right by hand is tedious.
package pdbtest

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Rec describes one line. Zero values are fine for most fields.
type Rec struct {
	Het     bool
	Serial  int
	Name    string
	ResName string
	Chain   byte
	ResNum  int
	Pos     r3.Vec
	Element string
}

// Line formats a record. Atom names with a one letter element start in
// column 14, others in column 13, as in files from the PDB.
func (r Rec) Line() string {
	rec := "ATOM"
	if r.Het {
		rec = "HETATM"
	}
	elem := r.Element
	if elem == "" {
		elem = r.Name[:1]
	}
	name := r.Name
	if len(name) < 4 && len(elem) == 1 {
		name = " " + name
	}
	chain := r.Chain
	if chain == 0 {
		chain = 'A'
	}
	return fmt.Sprintf("%-6s%5d %-4s %3s %c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  ",
		rec, r.Serial, name, r.ResName, chain, r.ResNum,
		r.Pos.X, r.Pos.Y, r.Pos.Z, 1.0, 0.0, elem)
}

// File joins the lines of some records and puts a header and END on.
func File(recs ...Rec) string {
	var b strings.Builder
	b.WriteString("HEADER    TEST STRUCTURE\n")
	for i, r := range recs {
		if r.Serial == 0 {
			r.Serial = i + 1
		}
		b.WriteString(r.Line())
		b.WriteByte('\n')
	}
	b.WriteString("END\n")
	return b.String()
}

// Cys gives the N, CA and SG of a cysteine with SG at pos.
func Cys(resNum int, sg r3.Vec) []Rec {
	return []Rec{
		{Name: "N", ResName: "CYS", ResNum: resNum, Pos: r3.Add(sg, r3.Vec{X: 2.5})},
		{Name: "CA", ResName: "CYS", ResNum: resNum, Pos: r3.Add(sg, r3.Vec{X: 1.5, Y: 0.5})},
		{Name: "SG", ResName: "CYS", ResNum: resNum, Pos: sg},
	}
}

// Gly is a glycine with its CA at pos.
func Gly(resNum int, ca r3.Vec) []Rec {
	return []Rec{
		{Name: "N", ResName: "GLY", ResNum: resNum, Pos: r3.Add(ca, r3.Vec{X: -1.4})},
		{Name: "CA", ResName: "GLY", ResNum: resNum, Pos: ca},
	}
}
