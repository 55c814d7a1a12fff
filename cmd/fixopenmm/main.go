// 14 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/pdbprep/pkg/batch"
	"github.com/andrew-torda/pdbprep/pkg/common"
	"github.com/andrew-torda/pdbprep/pkg/disulfide"
	"github.com/andrew-torda/pdbprep/pkg/fixopenmm"
	"github.com/andrew-torda/pdbprep/pkg/scratch"
	"github.com/andrew-torda/pdbprep/pkg/tleap"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts]")
	flag.PrintDefaults()
	return common.ExitUsageError
}

func main() {
	var flags fixopenmm.CmdFlag
	flag.StringVar(&flags.IDFile, "i", batch.DefaultIDFile, "file with one protein id per line")
	flag.StringVar(&flags.DataDir, "d", batch.DefaultDataDir, "directory with experimental and rosetta structures")
	flag.StringVar(&flags.ResultDir, "o", fixopenmm.DefaultResultDir, "directory for results")
	flag.StringVar(&flags.LogFile, "l", "", "log file, \"stdout\" for standard output")
	flag.StringVar(&flags.Python, "p", "python", "python that can import prody")
	flag.StringVar(&flags.Fixer, "f", "pdbfixer.py", "pdbfixer script")
	flag.StringVar(&flags.Tleap, "t", tleap.DefaultBinary, "tleap program")
	flag.Float64Var(&flags.Cutoff, "c", disulfide.Cutoff, "SG-SG distance for a disulfide")
	flag.BoolVar(&flags.CysMap, "g", false, "write a png of cysteine distances")
	flag.BoolVar(&flags.KeepGoing, "k", false, "keep going after a protein fails")
	flag.BoolVar(&flags.KeepScratch, "s", false, "do not remove scratch directories")
	flag.Parse()
	if flag.NArg() != 0 || flags.Cutoff <= 0 {
		os.Exit(usage())
	}
	scratch.Trap()
	os.Exit(fixopenmm.Mymain(&flags))
}
