// 14 Oct 2026
// After modeller has filled in a structure, it should have the same
// number of residues as the rosetta model it was built from.

package checklen

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/pdbprep/pdb"
	"github.com/andrew-torda/pdbprep/pkg/batch"
	"github.com/andrew-torda/pdbprep/pkg/common"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	IDFile    string
	DataDir   string
	SystemDir string // where fixmodeller put its results
	LogFile   string
}

const DefaultSystemDir = "FixedModeller"

// Lengths has the number of residues in the two files for one protein.
type Lengths struct {
	System, Rosetta int
}

func (n Lengths) Match() bool { return n.System == n.Rosetta }

// Compare counts residues in the finished system and the rosetta model.
func Compare(l batch.Layout, id string) (Lengths, error) {
	var n Lengths
	sys, err := pdb.ReadFile(l.ResultPath(id))
	if err != nil {
		return n, err
	}
	rname, err := l.RosettaPDB(id)
	if err != nil {
		return n, err
	}
	ros, err := pdb.ReadFile(rname)
	if err != nil {
		return n, err
	}
	n.System, n.Rosetta = sys.Len(), ros.Len()
	return n, nil
}

// Run goes over the proteins and writes what it finds to w. It returns
// the number of proteins whose lengths do not match. A protein whose
// files cannot be read is reported and skipped.
func Run(w io.Writer, flags *CmdFlag) (int, error) {
	ids, err := batch.ReadIDs(flags.IDFile)
	if err != nil {
		return 0, err
	}
	lg, err := common.LogWhere(flags.LogFile)
	if err != nil {
		return 0, err
	}
	l := batch.Layout{DataDir: flags.DataDir, ResultDir: flags.SystemDir}
	var nBad int
	_, err = batch.Loop(ids, true, lg, func(id string) error {
		fmt.Fprintln(w, "checking", id)
		n, err := Compare(l, id)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "    system: ", n.System)
		fmt.Fprintln(w, "    rosetta:", n.Rosetta)
		if !n.Match() {
			fmt.Fprintln(w, "    WARNING: Lengths do not match!")
			lg.Println(id, "system", n.System, "rosetta", n.Rosetta)
			nBad++
		}
		return nil
	})
	return nBad, err
}

// Mymain is the top level main, after parsing the command line.
func Mymain(flags *CmdFlag) int {
	if _, err := Run(os.Stdout, flags); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		return common.ExitFailure
	}
	return common.ExitSuccess
}
