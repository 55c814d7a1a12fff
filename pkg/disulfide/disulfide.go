// 14 Oct 2026
// Find disulfide bonds by looking at the distance between the sulfur
// atoms of cysteines, then rename the cysteines so amber knows they are
// bonded.

package disulfide

import (
	"fmt"
	"math"

	"github.com/andrew-torda/pdbprep/pdb"
	"github.com/andrew-torda/pdbprep/pdb/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	Cutoff  = 2.10 // SG to SG, Angstrom
	cysName = "CYS"
	cyxName = "CYX" // amber name for a bonded cysteine
	sgName  = "SG"
	cbName  = "CB"
)

// Pair is two residue indices, counting from zero, with I < J.
type Pair struct{ I, J int }

func (p Pair) String() string { return fmt.Sprintf("%d-%d", p.I, p.J) }

// MissingAtomError says a residue did not have an atom we needed.
type MissingAtomError struct {
	Index   int    // residue index from zero
	Residue string // residue name
	Atom    string
}

func (e *MissingAtomError) Error() string {
	return fmt.Sprintf("residue %d (%s) has no %s atom", e.Index, e.Residue, e.Atom)
}

// cysteines returns the indices of residues called CYS and the
// positions of their sulfurs. A cysteine without a sulfur is an error.
func cysteines(s *pdb.Structure) ([]int, []r3.Vec, error) {
	var ndx []int
	var pos []r3.Vec
	for _, r := range s.Residues {
		if r.Name != cysName {
			continue
		}
		sg, ok := r.Atom(sgName)
		if !ok {
			return nil, nil, &MissingAtomError{Index: r.Index, Residue: r.Name, Atom: sgName}
		}
		ndx = append(ndx, r.Index)
		pos = append(pos, sg.Pos)
	}
	return ndx, pos, nil
}

// Find returns every pair of cysteines whose sulfurs are closer than
// Cutoff. Pairs come in the order i < j, sorted by i then j.
// We do not check that a cysteine is only bonded once. If three sulfurs
// are close together, you get all three pairs.
func Find(s *pdb.Structure) ([]Pair, error) { return FindCutoff(s, Cutoff) }

// FindCutoff is Find with a distance of your choice.
func FindCutoff(s *pdb.Structure, cutoff float64) ([]Pair, error) {
	ndx, pos, err := cysteines(s)
	if err != nil {
		return nil, err
	}
	var pairs []Pair
	for i := range ndx {
		for j := i + 1; j < len(ndx); j++ {
			if geom.Dist(pos[i], pos[j]) < cutoff {
				pairs = append(pairs, Pair{ndx[i], ndx[j]})
			}
		}
	}
	return pairs, nil
}

// Table gets the sulfur distances between all cysteines.
func Table(s *pdb.Structure) (*geom.CysTable, error) {
	ndx, pos, err := cysteines(s)
	if err != nil {
		return nil, err
	}
	return geom.NewCysTable(ndx, pos), nil
}

// Relabel renames both cysteines in each pair to CYX.
func Relabel(s *pdb.Structure, pairs []Pair) {
	for _, p := range pairs {
		s.Residues[p.I].SetName(cyxName)
		s.Residues[p.J].SetName(cyxName)
	}
}

// Finalize finds the bonds and relabels the residues.
func Finalize(s *pdb.Structure) ([]Pair, error) {
	return FinalizeCutoff(s, Cutoff)
}

// FinalizeCutoff is Finalize with a distance of your choice.
func FinalizeCutoff(s *pdb.Structure, cutoff float64) ([]Pair, error) {
	pairs, err := FindCutoff(s, cutoff)
	if err != nil {
		return nil, err
	}
	Relabel(s, pairs)
	return pairs, nil
}

// Geometry is what we report about a bond.
type Geometry struct {
	Dist float64 // SG-SG
	Chi3 float64 // CB-SG-SG-CB dihedral in degrees, NaN without both CB
}

// Measure looks up the geometry of a pair. Call it before or after
// relabelling; it does not look at names.
func Measure(s *pdb.Structure, p Pair) (Geometry, error) {
	r1, r2 := s.Residues[p.I], s.Residues[p.J]
	sg1, ok1 := r1.Atom(sgName)
	sg2, ok2 := r2.Atom(sgName)
	switch {
	case !ok1:
		return Geometry{}, &MissingAtomError{Index: r1.Index, Residue: r1.Name, Atom: sgName}
	case !ok2:
		return Geometry{}, &MissingAtomError{Index: r2.Index, Residue: r2.Name, Atom: sgName}
	}
	g := Geometry{Dist: geom.Dist(sg1.Pos, sg2.Pos), Chi3: math.NaN()}
	cb1, ok1 := r1.Atom(cbName)
	cb2, ok2 := r2.Atom(cbName)
	if ok1 && ok2 {
		g.Chi3 = geom.Dihedral(cb1.Pos, sg1.Pos, sg2.Pos, cb2.Pos) * 180 / math.Pi
	}
	return g, nil
}
