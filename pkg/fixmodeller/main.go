// 14 Oct 2026

package fixmodeller

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/andrew-torda/pdbprep/pkg/batch"
	"github.com/andrew-torda/pdbprep/pkg/common"
	"github.com/andrew-torda/pdbprep/pkg/runtool"
	"github.com/andrew-torda/pdbprep/pkg/scratch"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	IDFile      string // list of proteins
	DataDir     string // where the experimental and rosetta files are
	ResultDir   string // models go here
	LogFile     string // "", "stdout" or a file name
	Modeller    string // python that can import modeller
	KeepGoing   bool   // do not stop at a broken protein
	KeepScratch bool   // leave scratch directories behind
}

const DefaultResultDir = "FixedModeller"

// Scripts for modeller. They run in the scratch directory, so names
// are relative.
const (
	alignName   = "align.py"
	alignScript = `import modeller
e = modeller.environ()
m1 = modeller.model(e, file='experimental.pdb')
m2 = modeller.model(e, file='rosetta.pdb')
aln = modeller.alignment(e)
aln.append_model(m1, align_codes='experimental', atom_files='experimental.pdb')
aln.append_model(m2, align_codes='rosetta')
aln.align2d()
aln.write(file='align.ali', alignment_format='PIR')
`
	modelName   = "model.py"
	modelScript = `import modeller
import modeller.automodel
e = modeller.environ()
a = modeller.automodel.automodel(e, alnfile='align.ali', knowns='experimental', sequence='rosetta')
a.starting_model = 1
a.ending_model = 1
a.make()
`
	modelGlob = "rosetta.B*.pdb"
)

// Process builds a model for one protein in dir. The rosetta sequence
// is modelled on the experimental structure, which fills in missing
// atoms and residues.
func Process(r runtool.Runner, python string, l batch.Layout, id, dir string) error {
	if err := l.StagePair(id, dir); err != nil {
		return fmt.Errorf("staging: %w", err)
	}
	scripts := []struct{ name, body string }{
		{alignName, alignScript},
		{modelName, modelScript},
	}
	for _, s := range scripts {
		if err := os.WriteFile(filepath.Join(dir, s.name), []byte(s.body), 0644); err != nil {
			return err
		}
		c := runtool.Cmd{Name: python, Args: []string{s.name}, Dir: dir, Stdout: s.name + ".log"}
		if _, err := r.Run(c); err != nil {
			return fmt.Errorf("modeller: %w", err)
		}
	}
	model, err := batch.FirstMatch(filepath.Join(dir, modelGlob))
	if err != nil {
		return fmt.Errorf("modeller: %w", err)
	}
	return batch.Recover(model, l.ResultPath(id))
}

// Run goes over all the proteins.
func Run(r runtool.Runner, flags *CmdFlag, lg *log.Logger) error {
	ids, err := batch.ReadIDs(flags.IDFile)
	if err != nil {
		return err
	}
	l := batch.Layout{DataDir: flags.DataDir, ResultDir: flags.ResultDir}
	if err := l.MakeResultDir(); err != nil {
		return err
	}
	python := runtool.AbsProg(flags.Modeller)
	sdir := scratch.Dir{Prefix: "fixmodeller", Keep: flags.KeepScratch, Log: lg}
	failed, err := batch.Loop(ids, flags.KeepGoing, lg, func(id string) error {
		fmt.Println("processing", id)
		lg.Println("processing", id)
		return sdir.With(func(dir string) error {
			return Process(r, python, l, id, dir)
		})
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
	if err := runtool.Check(flags.Modeller); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		return common.ExitFailure
	}
	if err := Run(runtool.Exec{}, flags, lg); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		return common.ExitFailure
	}
	return common.ExitSuccess
}
