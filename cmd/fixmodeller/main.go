// 14 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/pdbprep/pkg/batch"
	"github.com/andrew-torda/pdbprep/pkg/common"
	"github.com/andrew-torda/pdbprep/pkg/fixmodeller"
	"github.com/andrew-torda/pdbprep/pkg/scratch"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts]")
	flag.PrintDefaults()
	return common.ExitUsageError
}

func main() {
	var flags fixmodeller.CmdFlag
	flag.StringVar(&flags.IDFile, "i", batch.DefaultIDFile, "file with one protein id per line")
	flag.StringVar(&flags.DataDir, "d", batch.DefaultDataDir, "directory with experimental and rosetta structures")
	flag.StringVar(&flags.ResultDir, "o", fixmodeller.DefaultResultDir, "directory for results")
	flag.StringVar(&flags.LogFile, "l", "", "log file, \"stdout\" for standard output")
	flag.StringVar(&flags.Modeller, "m", "python", "python that can import modeller")
	flag.BoolVar(&flags.KeepGoing, "k", false, "keep going after a protein fails")
	flag.BoolVar(&flags.KeepScratch, "s", false, "do not remove scratch directories")
	flag.Parse()
	if flag.NArg() != 0 {
		os.Exit(usage())
	}
	scratch.Trap()
	os.Exit(fixmodeller.Mymain(&flags))
}
