// 14 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/pdbprep/pkg/batch"
	"github.com/andrew-torda/pdbprep/pkg/checklen"
	"github.com/andrew-torda/pdbprep/pkg/common"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts]")
	flag.PrintDefaults()
	return common.ExitUsageError
}

func main() {
	var flags checklen.CmdFlag
	flag.StringVar(&flags.IDFile, "i", batch.DefaultIDFile, "file with one protein id per line")
	flag.StringVar(&flags.DataDir, "d", batch.DefaultDataDir, "directory with rosetta structures")
	flag.StringVar(&flags.SystemDir, "s", checklen.DefaultSystemDir, "directory with finished systems")
	flag.StringVar(&flags.LogFile, "l", "", "log file, \"stdout\" for standard output")
	flag.Parse()
	if flag.NArg() != 0 {
		os.Exit(usage())
	}
	os.Exit(checklen.Mymain(&flags))
}
