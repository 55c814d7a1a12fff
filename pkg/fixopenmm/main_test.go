package fixopenmm_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/pdbprep/pdb"
	"github.com/andrew-torda/pdbprep/pdb/pdbtest"
	"github.com/andrew-torda/pdbprep/pkg/batch"
	"github.com/andrew-torda/pdbprep/pkg/common"
	"github.com/andrew-torda/pdbprep/pkg/fixopenmm"
	"github.com/andrew-torda/pdbprep/pkg/runtool"
	"github.com/andrew-torda/pdbprep/pkg/runtool/runtooltest"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// xtal has two cysteines with sulfurs 1.95 apart, a selenomethionine,
// a third cysteine 5 away from both and a water.
func xtal() string {
	var recs []pdbtest.Rec
	recs = append(recs, pdbtest.Cys(1, r3.Vec{})...)
	recs = append(recs, pdbtest.Rec{Name: "H", ResName: "CYS", ResNum: 1, Element: "H"})
	recs = append(recs, pdbtest.Cys(2, r3.Vec{X: 1.95})...)
	recs = append(recs,
		pdbtest.Rec{Het: true, Name: "N", ResName: "MSE", ResNum: 3, Pos: r3.Vec{Y: 10}},
		pdbtest.Rec{Het: true, Name: "CA", ResName: "MSE", ResNum: 3, Pos: r3.Vec{Y: 11}},
		pdbtest.Rec{Het: true, Name: "SE", ResName: "MSE", ResNum: 3, Pos: r3.Vec{Y: 12}, Element: "SE"},
	)
	recs = append(recs, pdbtest.Cys(4, r3.Vec{X: 0.975, Y: 4.904})...)
	recs = append(recs, pdbtest.Rec{Het: true, Name: "O", ResName: "HOH", ResNum: 301, Pos: r3.Vec{Z: 30}})
	return pdbtest.File(recs...)
}

func setup(t *testing.T, id string) *fixopenmm.CmdFlag {
	root := t.TempDir()
	flags := &fixopenmm.CmdFlag{
		IDFile:    filepath.Join(root, "proteins.txt"),
		DataDir:   filepath.Join(root, batch.DefaultDataDir),
		ResultDir: filepath.Join(root, fixopenmm.DefaultResultDir),
		Python:    "python",
		Fixer:     filepath.Join(root, "pdbfixer.py"),
		Tleap:     "tleap",
	}
	d := filepath.Join(flags.DataDir, id)
	require.NoError(t, os.MkdirAll(d, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(d, id+".pdb"), []byte(xtal()), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(d, "S_1.pdb"), []byte("END\n"), 0644))
	require.NoError(t, os.WriteFile(flags.IDFile, []byte(id+"\n"), 0644))
	return flags
}

// tools pretends to be prody, pdbfixer and tleap. Each copies its input
// to where the next step looks. The tleap input is saved in script.
type tools struct {
	script string
	start  string
}

func copyIn(c runtool.Cmd, from, to string) error {
	b, err := os.ReadFile(filepath.Join(c.Dir, from))
	if err != nil {
		return err
	}
	return runtooltest.WriteIn(c, to, string(b))
}

func (tl *tools) do(c runtool.Cmd) error {
	switch {
	case c.Name == "tleap":
		b, err := os.ReadFile(filepath.Join(c.Dir, "tleap.in"))
		if err != nil {
			return err
		}
		tl.script = string(b)
		s, _ := os.ReadFile(filepath.Join(c.Dir, "start.pdb"))
		tl.start = string(s)
		return copyIn(c, "start.pdb", "system.pdb")
	case c.Args[0] == "matchchain.py":
		return copyIn(c, c.Args[1], c.Args[3])
	default: // pdbfixer
		return copyIn(c, c.Args[1], "output.pdb")
	}
}

func TestRun(t *testing.T) {
	flags := setup(t, "1abc")
	tl := &tools{}
	fr := &runtooltest.Fake{Do: tl.do}
	require.NoError(t, fixopenmm.Run(fr, flags, common.Discard()))
	require.Len(t, fr.Cmds, 3)
	require.Equal(t, []string{"no_smet.pdb", "rosetta.pdb", "chain.pdb"}, fr.Cmds[0].Args[1:])

	require.Contains(t, tl.script, "bond sys.1.SG sys.2.SG\n")
	require.Equal(t, 1, strings.Count(tl.script, "bond "))

	s, err := pdb.ReadFile(filepath.Join(flags.ResultDir, "1abc.pdb"))
	require.NoError(t, err)
	require.Equal(t, []string{"CYX", "CYX", "MET", "CYS"}, s.Seq())
	met := s.Residues[2]
	_, ok := met.Atom("SD")
	require.True(t, ok, "selenium not renamed")
	require.NotContains(t, tl.start, "HETATM")
	for _, r := range s.Residues {
		for _, a := range r.Atoms {
			require.False(t, a.IsHydrogen(), "hydrogen %s left in", a.Name)
		}
	}
	_, err = os.Stat(filepath.Join(flags.ResultDir, "1abc_cys.png"))
	require.True(t, os.IsNotExist(err), "png written without being asked")
}

func TestCysMap(t *testing.T) {
	flags := setup(t, "1abc")
	flags.CysMap = true
	fr := &runtooltest.Fake{Do: (&tools{}).do}
	require.NoError(t, fixopenmm.Run(fr, flags, common.Discard()))
	_, err := os.Stat(filepath.Join(flags.ResultDir, "1abc_cys.png"))
	require.NoError(t, err)
}

// If tleap fails, nothing for that protein is left in the results,
// not even the picture.
func TestTleapFailsCysMap(t *testing.T) {
	flags := setup(t, "1abc")
	flags.CysMap = true
	tl := &tools{}
	fr := &runtooltest.Fake{Do: func(c runtool.Cmd) error {
		if c.Name == "tleap" {
			return &runtool.ExitError{Cmd: c, Status: 1}
		}
		return tl.do(c)
	}}
	err := fixopenmm.Run(fr, flags, common.Discard())
	require.Error(t, err)
	require.Contains(t, err.Error(), "tleap")
	left, err := os.ReadDir(flags.ResultDir)
	require.NoError(t, err)
	require.Empty(t, left)
}

// A cysteine without its sulfur stops the protein before tleap runs.
func TestMissingSG(t *testing.T) {
	flags := setup(t, "1abc")
	tl := &tools{}
	fr := &runtooltest.Fake{Do: func(c runtool.Cmd) error {
		if c.Name != "tleap" && c.Args[0] != "matchchain.py" {
			b, _ := os.ReadFile(filepath.Join(c.Dir, "chain.pdb"))
			var keep []string
			for _, l := range strings.Split(string(b), "\n") {
				if !strings.Contains(l, " SG ") {
					keep = append(keep, l)
				}
			}
			return runtooltest.WriteIn(c, "output.pdb", strings.Join(keep, "\n"))
		}
		return tl.do(c)
	}}
	err := fixopenmm.Run(fr, flags, common.Discard())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no SG atom")
	require.Empty(t, tl.script, "tleap should not have run")
}

func TestFixerFails(t *testing.T) {
	flags := setup(t, "1abc")
	fr := &runtooltest.Fake{Do: func(c runtool.Cmd) error {
		if c.Args[0] == "matchchain.py" {
			return nil
		}
		return &runtool.ExitError{Cmd: c, Status: 1, Stderr: []byte("no chain.pdb")}
	}}
	err := fixopenmm.Run(fr, flags, common.Discard())
	require.Error(t, err)
	require.Contains(t, err.Error(), "1abc")
	require.Len(t, fr.Cmds, 2)
}
