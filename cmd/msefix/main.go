// 14 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/pdbprep/pdb/mse"
	"github.com/andrew-torda/pdbprep/pkg/common"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "in.pdb [out.pdb]")
	flag.PrintDefaults()
	return common.ExitUsageError
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		os.Exit(usage())
	}
	var err error
	if flag.NArg() == 2 {
		_, err = mse.FixPath(flag.Arg(0), flag.Arg(1))
	} else {
		err = toStdout(flag.Arg(0))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}

func toStdout(fname string) error {
	fp, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	_, err = mse.FixFile(fp, os.Stdout)
	return err
}
