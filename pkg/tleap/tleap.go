// 14 Oct 2026
// Write and run tleap scripts. tleap reads start.pdb, is told about
// the disulfide bonds and writes amber topology and coordinates.

package tleap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/pdbprep/pkg/disulfide"
	"github.com/andrew-torda/pdbprep/pkg/runtool"
)

// Files tleap reads and writes, all in one directory.
const (
	InName  = "tleap.in"
	OutName = "tleap.out"
	Start   = "start.pdb"
	Top     = "system.top"
	Crd     = "system.mdcrd"
	System  = "system.pdb"
)

const script = `
set default PBradii mbondi3
source leaprc.ff12SB
sys = loadPdb %s
%s
check sys
saveAmberParm sys %s %s
savePdb sys %s
quit
`

// BondString has one bond command per pair. tleap counts residues
// from 1, we count from 0.
func BondString(pairs []disulfide.Pair) string {
	var b strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&b, "bond sys.%d.SG sys.%d.SG\n", p.I+1, p.J+1)
	}
	return b.String()
}

// Script is the full tleap input. bonds may be empty.
func Script(bonds string) string {
	return fmt.Sprintf(script, Start, bonds, Top, Crd, System)
}

// DefaultBinary is tleap from the PATH
const DefaultBinary = "tleap"

// Run writes the script to dir and runs tleap there. Output from tleap
// is kept in tleap.out.
func Run(r runtool.Runner, binary, dir string, pairs []disulfide.Pair) error {
	if binary == "" {
		binary = DefaultBinary
	}
	if err := os.WriteFile(filepath.Join(dir, InName), []byte(Script(BondString(pairs))), 0644); err != nil {
		return err
	}
	c := runtool.Cmd{Name: binary, Args: []string{"-f", InName}, Dir: dir, Stdout: OutName}
	if _, err := r.Run(c); err != nil {
		return fmt.Errorf("tleap: %w", err)
	}
	return nil
}
