// 14 Oct 2026
// Find disulfides in one structure, call the cysteines CYX and write
// it out again. Optionally write the bond lines for tleap and a
// picture of cysteine distances.

package ssbond

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/pdbprep/pdb"
	"github.com/andrew-torda/pdbprep/pdb/geom"
	"github.com/andrew-torda/pdbprep/pkg/common"
	"github.com/andrew-torda/pdbprep/pkg/cysmap"
	"github.com/andrew-torda/pdbprep/pkg/disulfide"
	"github.com/andrew-torda/pdbprep/pkg/tleap"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Cutoff    float64
	PngFile   string // "" means no picture
	LogFile   string
	InFile    string
	OutFile   string
	TleapFile string // "" means no tleap script
}

// Run does the work and writes a line per disulfide to w.
func Run(w io.Writer, flags *CmdFlag) error {
	lg, err := common.LogWhere(flags.LogFile)
	if err != nil {
		return err
	}
	cutoff := flags.Cutoff
	if cutoff <= 0 {
		cutoff = disulfide.Cutoff
	}
	s, err := pdb.ReadFile(flags.InFile)
	if err != nil {
		return err
	}
	var tbl *geom.CysTable
	if flags.PngFile != "" {
		if tbl, err = disulfide.Table(s); err != nil {
			return err
		}
	}
	pairs, err := disulfide.FinalizeCutoff(s, cutoff)
	if err != nil {
		return fmt.Errorf("%s: %w", flags.InFile, err)
	}
	lg.Println(flags.InFile, len(pairs), "disulfides with cutoff", cutoff)
	for _, p := range pairs {
		g, err := disulfide.Measure(s, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d %d %.3f\n", p.I, p.J, g.Dist)
	}
	if err := s.WriteFile(flags.OutFile); err != nil {
		return err
	}
	if flags.TleapFile != "" {
		b := []byte(tleap.Script(tleap.BondString(pairs)))
		if err := os.WriteFile(flags.TleapFile, b, 0644); err != nil {
			return err
		}
	}
	if tbl != nil {
		return cysmap.WritePNG(flags.PngFile, tbl, pairs, cysmap.DefaultCell)
	}
	return nil
}

// Mymain is the top level main, after parsing the command line.
func Mymain(flags *CmdFlag) int {
	if err := Run(os.Stdout, flags); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		return common.ExitFailure
	}
	return common.ExitSuccess
}
