// 14 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/pdbprep/pkg/common"
	"github.com/andrew-torda/pdbprep/pkg/disulfide"
	"github.com/andrew-torda/pdbprep/pkg/ssbond"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] in.pdb out.pdb [tleap.in]")
	flag.PrintDefaults()
	return common.ExitUsageError
}

func main() {
	var flags ssbond.CmdFlag
	flag.Float64Var(&flags.Cutoff, "c", disulfide.Cutoff, "SG-SG distance for a disulfide")
	flag.StringVar(&flags.PngFile, "p", "", "write a png of cysteine distances")
	flag.StringVar(&flags.LogFile, "l", "", "log file, \"stdout\" for standard output")
	flag.Parse()
	if flag.NArg() < 2 || flag.NArg() > 3 || flags.Cutoff <= 0 {
		os.Exit(usage())
	}
	flags.InFile = flag.Arg(0)
	flags.OutFile = flag.Arg(1)
	flags.TleapFile = flag.Arg(2)
	os.Exit(ssbond.Mymain(&flags))
}
