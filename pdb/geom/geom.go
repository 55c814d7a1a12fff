// Calculate some geometries, lengths and angles.
// Coordinates are gonum r3 vectors. Distances between the sulfurs of
// the cysteines in a structure go into a table, since we look at all of
// them for disulfides and again for pictures.

package geom

import (
	"math"

	"github.com/andrew-torda/matrix"
	"gonum.org/v1/gonum/spatial/r3"
)

type Error string

func (e Error) Error() string { return string(e) }

// Dist is the Euclidean distance between two points.
func Dist(a, b r3.Vec) float64 { return r3.Norm(r3.Sub(a, b)) }

// Angle takes three points and returns the angle at b, in radians.
func Angle(a, b, c r3.Vec) (float64, error) {
	x1 := r3.Sub(a, b)
	x2 := r3.Sub(c, b)
	l := r3.Norm(x1) * r3.Norm(x2)
	if l == 0 {
		return math.NaN(), Error("zero length bond in angle")
	}
	cosalpha := r3.Dot(x1, x2) / l
	if cosalpha > 1 { // numerical noise
		cosalpha = 1
	}
	if cosalpha < -1 {
		cosalpha = -1
	}
	return math.Acos(cosalpha), nil
}

// Dihedral takes four points and returns the dihedral angle about the
// b-c bond in radians, from -pi to pi. Looking down b to c, clockwise
// rotation of d relative to a is positive.
func Dihedral(a, b, c, d r3.Vec) float64 {
	b1 := r3.Sub(b, a)
	b2 := r3.Sub(c, b)
	b3 := r3.Sub(d, c)
	n2 := r3.Cross(b2, b3)
	y := r3.Norm(b2) * r3.Dot(b1, n2)
	x := r3.Dot(r3.Cross(b1, b2), n2)
	return math.Atan2(y, x)
}

// CysTable has the distances between all the sulfur atoms of
// cysteines in a structure. Ndx are the residue indices, so
// Dist.Mat[i][j] is between residues Ndx[i] and Ndx[j].
// The matrix is float32, so use it for reporting, not for decisions
// that depend on the last digit.
type CysTable struct {
	Ndx  []int
	Dist *matrix.FMatrix2d
}

// NewCysTable fills a table from residue indices and sulfur positions.
func NewCysTable(ndx []int, pos []r3.Vec) *CysTable {
	n := len(ndx)
	tbl := &CysTable{Ndx: ndx, Dist: matrix.NewFMatrix2d(n, n)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := float32(Dist(pos[i], pos[j]))
			tbl.Dist.Mat[i][j] = d
			tbl.Dist.Mat[j][i] = d
		}
	}
	return tbl
}

// Len is the number of cysteines in the table
func (tbl *CysTable) Len() int { return len(tbl.Ndx) }
