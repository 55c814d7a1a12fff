package checklen_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/pdbprep/pdb/pdbtest"
	"github.com/andrew-torda/pdbprep/pkg/checklen"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func glys(n int) string {
	var recs []pdbtest.Rec
	for i := 1; i <= n; i++ {
		recs = append(recs, pdbtest.Gly(i, r3.Vec{X: 3.8 * float64(i)})...)
	}
	return pdbtest.File(recs...)
}

// setup writes a system and rosetta model for each id. lens has pairs
// of system and rosetta lengths.
func setup(t *testing.T, ids []string, lens [][2]int) *checklen.CmdFlag {
	root := t.TempDir()
	flags := &checklen.CmdFlag{
		IDFile:    filepath.Join(root, "proteins.txt"),
		DataDir:   filepath.Join(root, "final_dataset"),
		SystemDir: filepath.Join(root, checklen.DefaultSystemDir),
	}
	require.NoError(t, os.MkdirAll(flags.SystemDir, 0755))
	for i, id := range ids {
		d := filepath.Join(flags.DataDir, id)
		require.NoError(t, os.MkdirAll(d, 0755))
		sys := filepath.Join(flags.SystemDir, id+".pdb")
		require.NoError(t, os.WriteFile(sys, []byte(glys(lens[i][0])), 0644))
		ros := filepath.Join(d, "S_"+id+"_0001.pdb")
		require.NoError(t, os.WriteFile(ros, []byte(glys(lens[i][1])), 0644))
	}
	require.NoError(t, os.WriteFile(flags.IDFile, []byte(strings.Join(ids, "\n")+"\n"), 0644))
	return flags
}

func TestRun(t *testing.T) {
	flags := setup(t, []string{"1abc", "2xyz"}, [][2]int{{3, 3}, {4, 5}})
	var buf bytes.Buffer
	nBad, err := checklen.Run(&buf, flags)
	require.NoError(t, err)
	require.Equal(t, 1, nBad)
	want := `checking 1abc
    system:  3
    rosetta: 3
checking 2xyz
    system:  4
    rosetta: 5
    WARNING: Lengths do not match!
`
	require.Equal(t, want, buf.String())
}

// A protein with no system file is reported, but the others are still
// checked.
func TestMissing(t *testing.T) {
	flags := setup(t, []string{"1abc", "2xyz"}, [][2]int{{3, 3}, {2, 2}})
	require.NoError(t, os.Remove(filepath.Join(flags.SystemDir, "1abc.pdb")))
	var buf bytes.Buffer
	nBad, err := checklen.Run(&buf, flags)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1abc")
	require.Zero(t, nBad)
	require.Contains(t, buf.String(), "checking 2xyz\n    system:  2\n")
}

// A file that sorts before the model, but is not a .pdb, is not looked
// at.
func TestOnlyPDB(t *testing.T) {
	flags := setup(t, []string{"1abc"}, [][2]int{{3, 3}})
	stray := filepath.Join(flags.DataDir, "1abc", "S_0notes.txt")
	require.NoError(t, os.WriteFile(stray, []byte("not a structure\n"), 0644))
	var buf bytes.Buffer
	nBad, err := checklen.Run(&buf, flags)
	require.NoError(t, err)
	require.Zero(t, nBad)
	require.Contains(t, buf.String(), "    rosetta: 3\n")
}

func TestNoList(t *testing.T) {
	_, err := checklen.Run(&bytes.Buffer{}, &checklen.CmdFlag{IDFile: filepath.Join(t.TempDir(), "nothing")})
	require.Error(t, err)
}
