// 14 Oct 2026
// The plumbing shared by the pipelines. Read the list of proteins, find
// their files, copy them in and out of scratch directories and loop
// over everything.

package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andrew-torda/pdbprep/pdb/zwrap"
)

// DefaultIDFile is the list of proteins, one per line.
const DefaultIDFile = "proteins.txt"

var ErrNoIDs = errors.New("no protein identifiers")

// ReadIDs reads identifiers, one per line. White space around them is
// removed and blank lines are skipped. No identifiers is an error.
func ReadIDs(fname string) ([]string, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	ids, err := readIDs(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return ids, nil
}

func readIDs(rdr io.Reader) ([]string, error) {
	var ids []string
	scnnr := bufio.NewScanner(rdr)
	for scnnr.Scan() {
		if s := strings.TrimSpace(scnnr.Text()); s != "" {
			ids = append(ids, s)
		}
	}
	if err := scnnr.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNoIDs
	}
	return ids, nil
}

// FirstMatch returns the first file, in sorted order, matching a glob
// pattern. No match is an error.
func FirstMatch(pattern string) (string, error) {
	m, err := filepath.Glob(pattern)
	if err != nil {
		return "", err
	}
	if len(m) == 0 {
		return "", fmt.Errorf("no file matches %s", pattern)
	}
	sort.Strings(m)
	return m[0], nil
}

// Layout says where input and result files live.
//
//	DataDir/<id>/<id>.pdb   experimental structure
//	DataDir/<id>/S_*        rosetta models, we take the first
//	ResultDir/<id>.pdb      what we produce
type Layout struct {
	DataDir   string
	ResultDir string
}

const DefaultDataDir = "final_dataset"

func (l Layout) ExperimentalPath(id string) string {
	return filepath.Join(l.DataDir, id, id+".pdb")
}

// RosettaPath finds the first rosetta model for a protein.
func (l Layout) RosettaPath(id string) (string, error) {
	return FirstMatch(filepath.Join(l.DataDir, id, "S_*"))
}

// RosettaPDB is like RosettaPath, but only takes uncompressed .pdb
// files, so notes or other files next to the models are never read.
func (l Layout) RosettaPDB(id string) (string, error) {
	return FirstMatch(filepath.Join(l.DataDir, id, "S_*.pdb"))
}

func (l Layout) ResultPath(id string) string {
	return filepath.Join(l.ResultDir, id+".pdb")
}

// MakeResultDir makes the result directory if it is not there.
func (l Layout) MakeResultDir() error {
	return os.MkdirAll(l.ResultDir, 0755)
}

// Stage copies src to dst. Compressed sources are decompressed, since
// the external programs only read text.
func Stage(src, dst string) error {
	in, err := zwrap.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	return writeFrom(dst, in)
}

// Recover copies a result out of a scratch directory.
func Recover(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	return writeFrom(dst, in)
}

func writeFrom(dst string, in io.Reader) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return out.Close()
}

// StagePair copies the experimental structure and the first rosetta
// model for id into dir, as experimental.pdb and rosetta.pdb.
func (l Layout) StagePair(id, dir string) error {
	rosetta, err := l.RosettaPath(id)
	if err != nil {
		return err
	}
	if err := Stage(l.ExperimentalPath(id), filepath.Join(dir, Experimental)); err != nil {
		return err
	}
	return Stage(rosetta, filepath.Join(dir, Rosetta))
}

// Names of staged files in a scratch directory
const (
	Experimental = "experimental.pdb"
	Rosetta      = "rosetta.pdb"
)

// Loop calls fn on each id in turn. It stops at the first error
// unless keepGoing is set, in which case errors are logged and we carry
// on. It returns the ids that failed and the first error.
func Loop(ids []string, keepGoing bool, lg *log.Logger, fn func(id string) error) ([]string, error) {
	var failed []string
	var first error
	for _, id := range ids {
		err := fn(id)
		if err == nil {
			continue
		}
		err = fmt.Errorf("%s: %w", id, err)
		failed = append(failed, id)
		if first == nil {
			first = err
		}
		if !keepGoing {
			break
		}
		if lg != nil {
			lg.Println(err)
		}
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	return failed, first
}
