// 14 Oct 2026
// Get a crystal structure ready for amber / openmm.
//   take the ATOM records and turn selenomethionine into methionine
//   cut out the part that matches the rosetta model (prody)
//   fill in missing atoms (pdbfixer)
//   find disulfides and call those cysteines CYX
//   run tleap to get topology and coordinates

package fixopenmm

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/andrew-torda/pdbprep/pdb"
	"github.com/andrew-torda/pdbprep/pdb/geom"
	"github.com/andrew-torda/pdbprep/pdb/mse"
	"github.com/andrew-torda/pdbprep/pkg/batch"
	"github.com/andrew-torda/pdbprep/pkg/common"
	"github.com/andrew-torda/pdbprep/pkg/cysmap"
	"github.com/andrew-torda/pdbprep/pkg/disulfide"
	"github.com/andrew-torda/pdbprep/pkg/runtool"
	"github.com/andrew-torda/pdbprep/pkg/scratch"
	"github.com/andrew-torda/pdbprep/pkg/tleap"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	IDFile      string
	DataDir     string
	ResultDir   string
	LogFile     string
	Python      string  // python with prody
	Fixer       string  // path to pdbfixer.py
	Tleap       string  // tleap binary
	Cutoff      float64 // SG-SG distance for a disulfide
	CysMap      bool    // write a png of cysteine distances next to each result
	KeepGoing   bool
	KeepScratch bool
}

const DefaultResultDir = "FixedOpenMM"

// Files in the scratch directory
const (
	noSmet    = "no_smet.pdb"
	chainName = "chain.pdb"
	fixerOut  = "output.pdb"
	matchName = "matchchain.py"
)

// matchScript picks the part of the crystal structure that corresponds
// to the rosetta model.
const matchScript = `import sys
import prody
p = prody.parsePDB(sys.argv[1])
p = p.select('not hydrogen')
r = prody.parsePDB(sys.argv[2])
match = prody.matchChains(r, p, subset='all', overlap=25, pwalign=True)[0][1]
print(len(match))
prody.writePDB(sys.argv[3], match)
`

// Pipeline has what we need to process one protein.
type Pipeline struct {
	Runner runtool.Runner
	Layout batch.Layout
	Flags  *CmdFlag
	Log    *log.Logger
}

// Process does one protein in dir.
func (pl *Pipeline) Process(id, dir string) error {
	in := func(name string) string { return filepath.Join(dir, name) }
	if err := pl.Layout.StagePair(id, dir); err != nil {
		return fmt.Errorf("staging: %w", err)
	}
	nFixed, err := mse.FixPath(in(batch.Experimental), in(noSmet))
	if err != nil {
		return err
	}
	if nFixed > 0 {
		pl.Log.Println(id, "converted", nFixed, "MSE atoms")
	}

	if err := os.WriteFile(in(matchName), []byte(matchScript), 0644); err != nil {
		return err
	}
	steps := []runtool.Cmd{
		{Name: pl.Flags.Python, Args: []string{matchName, noSmet, batch.Rosetta, chainName}, Stdout: "match.log"},
		{Name: pl.Flags.Python, Args: []string{pl.Flags.Fixer, chainName}, Stdout: "pdbfixer.log"},
	}
	for _, c := range steps {
		c.Dir = dir
		if _, err := pl.Runner.Run(c); err != nil {
			return err
		}
	}

	s, err := pdb.ReadFile(in(fixerOut))
	if err != nil {
		return fmt.Errorf("pdbfixer output: %w", err)
	}
	s.Dehydrogen()
	pairs, err := pl.finalize(id, dir, s)
	if err != nil {
		return err
	}
	if err := s.WriteFile(in(tleap.Start)); err != nil {
		return err
	}

	fmt.Println("    running tleap")
	if err := tleap.Run(pl.Runner, pl.Flags.Tleap, dir, pairs); err != nil {
		return err
	}
	if err := batch.Recover(in(tleap.System), pl.Layout.ResultPath(id)); err != nil {
		return err
	}
	if pl.Flags.CysMap {
		return batch.Recover(in(cysName(id)), filepath.Join(pl.Layout.ResultDir, cysName(id)))
	}
	return nil
}

func cysName(id string) string { return id + "_cys.png" }

// finalize finds disulfides, says what it found and draws the picture
// in dir if we were asked for one. The picture only goes to the results
// once tleap has worked.
func (pl *Pipeline) finalize(id, dir string, s *pdb.Structure) ([]disulfide.Pair, error) {
	cutoff := pl.Flags.Cutoff
	if cutoff <= 0 {
		cutoff = disulfide.Cutoff
	}
	var tbl *geom.CysTable
	if pl.Flags.CysMap { // before relabelling, the table only sees CYS
		var err error
		if tbl, err = disulfide.Table(s); err != nil {
			return nil, err
		}
	}
	pairs, err := disulfide.FinalizeCutoff(s, cutoff)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		fmt.Printf("    added disulfide between %d and %d\n", p.I, p.J)
		if g, err := disulfide.Measure(s, p); err == nil {
			pl.Log.Printf("%s disulfide %v SG-SG %.3f chi3 %s", id, p, g.Dist, fmtAngle(g.Chi3))
		}
	}
	if tbl != nil {
		fname := filepath.Join(dir, cysName(id))
		if err := cysmap.WritePNG(fname, tbl, pairs, cysmap.DefaultCell); err != nil {
			return nil, err
		}
	}
	return pairs, nil
}

func fmtAngle(a float64) string {
	if math.IsNaN(a) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", a)
}

// Run goes over all the proteins.
func Run(r runtool.Runner, flags *CmdFlag, lg *log.Logger) error {
	ids, err := batch.ReadIDs(flags.IDFile)
	if err != nil {
		return err
	}
	abs := *flags
	abs.Python = runtool.AbsProg(flags.Python)
	abs.Tleap = runtool.AbsProg(flags.Tleap)
	if abs.Fixer, err = filepath.Abs(flags.Fixer); err != nil {
		return err
	}
	flags = &abs
	pl := &Pipeline{
		Runner: r,
		Layout: batch.Layout{DataDir: flags.DataDir, ResultDir: flags.ResultDir},
		Flags:  flags,
		Log:    lg,
	}
	if err := pl.Layout.MakeResultDir(); err != nil {
		return err
	}
	sdir := scratch.Dir{Prefix: "fixopenmm", Keep: flags.KeepScratch, Log: lg}
	failed, err := batch.Loop(ids, flags.KeepGoing, lg, func(id string) error {
		fmt.Println("processing", id)
		lg.Println("processing", id)
		return sdir.With(func(dir string) error { return pl.Process(id, dir) })
	})
	if len(failed) > 1 {
		return fmt.Errorf("%d proteins failed, first %w", len(failed), err)
	}
	return err
}

// Mymain is the top level main, after parsing the command line.
func Mymain(flags *CmdFlag) int {
	lg, err := common.LogWhere(flags.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err, "creating log file")
		return common.ExitFailure
	}
	for _, prog := range []string{flags.Python, flags.Tleap} {
		if err := runtool.Check(prog); err != nil {
			fmt.Fprintln(os.Stderr, "Fatal:", err)
			return common.ExitFailure
		}
	}
	if _, err := os.Stat(flags.Fixer); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal: pdbfixer:", err)
		return common.ExitFailure
	}
	if err := Run(runtool.Exec{}, flags, lg); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		return common.ExitFailure
	}
	return common.ExitSuccess
}
