package disulfide_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/andrew-torda/pdbprep/pdb"
	"github.com/andrew-torda/pdbprep/pdb/pdbtest"
	. "github.com/andrew-torda/pdbprep/pkg/disulfide"
	"gonum.org/v1/gonum/spatial/r3"
)

func mustRead(t *testing.T, recs []pdbtest.Rec) *pdb.Structure {
	t.Helper()
	s, err := pdb.Read(strings.NewReader(pdbtest.File(recs...)))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// threeCys has cysteines at indices 1, 3 and 5. The first two sulfurs
// are 1.95 apart and the third is 5 from both.
func threeCys() []pdbtest.Rec {
	var recs []pdbtest.Rec
	recs = append(recs, pdbtest.Gly(1, r3.Vec{Y: 10})...)
	recs = append(recs, pdbtest.Cys(2, r3.Vec{})...)
	recs = append(recs, pdbtest.Gly(3, r3.Vec{Y: 20})...)
	recs = append(recs, pdbtest.Cys(4, r3.Vec{X: 1.95})...)
	recs = append(recs, pdbtest.Gly(5, r3.Vec{Y: 30})...)
	recs = append(recs, pdbtest.Cys(6, r3.Vec{X: 0.975, Y: 4.904, Z: 0})...)
	return recs
}

func TestNoCys(t *testing.T) {
	var recs []pdbtest.Rec
	for i := 1; i < 5; i++ {
		recs = append(recs, pdbtest.Gly(i, r3.Vec{X: float64(i)})...)
	}
	pairs, err := Find(mustRead(t, recs))
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 0 {
		t.Errorf("got pairs %v from structure without cysteines", pairs)
	}
}

func TestFinalize(t *testing.T) {
	s := mustRead(t, threeCys())
	pairs, err := Finalize(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 1 || pairs[0] != (Pair{1, 3}) {
		t.Fatalf("got %v wanted [1-3]", pairs)
	}
	want := []string{"GLY", "CYX", "GLY", "CYX", "GLY", "CYS"}
	if got := s.Seq(); strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("got names %v", got)
	}
	for _, a := range s.Residues[1].Atoms {
		if a.ResName != "CYX" {
			t.Errorf("atom %s still in %s", a.Name, a.ResName)
		}
	}
}

// TestCutoff puts two sulfurs just either side of the cutoff.
func TestCutoff(t *testing.T) {
	tests := []struct {
		d    float64
		want int
	}{
		{2.099, 1},
		{2.10, 0},
		{2.101, 0},
		{0.5, 1},
	}
	for _, tt := range tests {
		var recs []pdbtest.Rec
		recs = append(recs, pdbtest.Cys(1, r3.Vec{})...)
		recs = append(recs, pdbtest.Cys(2, r3.Vec{Z: tt.d})...)
		s := mustRead(t, recs)
		pairs, err := Find(s)
		if err != nil {
			t.Fatal(err)
		}
		if len(pairs) != tt.want {
			t.Errorf("distance %v gave %d pairs, wanted %d", tt.d, len(pairs), tt.want)
		}
	}
}

// Three sulfurs on top of each other give all three pairs, in order.
func TestCluster(t *testing.T) {
	var recs []pdbtest.Rec
	recs = append(recs, pdbtest.Cys(1, r3.Vec{})...)
	recs = append(recs, pdbtest.Cys(2, r3.Vec{X: 1})...)
	recs = append(recs, pdbtest.Cys(3, r3.Vec{Y: 1})...)
	pairs, err := Find(mustRead(t, recs))
	if err != nil {
		t.Fatal(err)
	}
	want := []Pair{{0, 1}, {0, 2}, {1, 2}}
	if len(pairs) != len(want) {
		t.Fatalf("got %v wanted %v", pairs, want)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair %d got %v wanted %v", i, pairs[i], want[i])
		}
		if pairs[i].I >= pairs[i].J {
			t.Errorf("pair %v not ascending", pairs[i])
		}
	}
}

func TestMissingSG(t *testing.T) {
	recs := pdbtest.Cys(1, r3.Vec{})
	recs = append(recs, pdbtest.Cys(2, r3.Vec{X: 2})[:2]...) // no SG
	s := mustRead(t, recs)
	_, err := Find(s)
	var miss *MissingAtomError
	if !errors.As(err, &miss) {
		t.Fatalf("wanted MissingAtomError, got %v", err)
	}
	if miss.Index != 1 || miss.Atom != "SG" {
		t.Errorf("wrong details %+v", miss)
	}
	if _, err := Finalize(s); err == nil {
		t.Error("Finalize should fail too")
	}
	if s.Residues[0].Name != "CYS" {
		t.Error("residue renamed although we failed")
	}
}

func TestTable(t *testing.T) {
	tbl, err := Table(mustRead(t, threeCys()))
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Len() != 3 || tbl.Ndx[2] != 5 {
		t.Errorf("table indices %v", tbl.Ndx)
	}
	if d := tbl.Dist.Mat[0][2]; math.Abs(float64(d)-5) > 0.01 {
		t.Errorf("distance 0-2 is %v wanted about 5", d)
	}
}

func TestMeasure(t *testing.T) {
	s := mustRead(t, threeCys())
	g, err := Measure(s, Pair{1, 3})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(g.Dist-1.95) > 1e-6 {
		t.Errorf("distance %v", g.Dist)
	}
	if !math.IsNaN(g.Chi3) {
		t.Error("no CB atoms, but got a chi3", g.Chi3)
	}
}
