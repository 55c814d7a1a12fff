// Package runtooltest has a Runner that does not run anything, for
// testing the pipelines without modeller, pdbfixer or tleap.
package runtooltest

import (
	"os"
	"path/filepath"

	"github.com/andrew-torda/pdbprep/pkg/runtool"
)

// Fake records commands. If Do is set, it is called for each command and
// can write the files the real program would have written.
type Fake struct {
	Cmds []runtool.Cmd
	Do   func(c runtool.Cmd) error
}

// Run records c and calls Do.
func (f *Fake) Run(c runtool.Cmd) (runtool.Result, error) {
	f.Cmds = append(f.Cmds, c)
	if f.Do == nil {
		return runtool.Result{}, nil
	}
	return runtool.Result{}, f.Do(c)
}

// Names returns the first argument of each command, which is usually
// the script that was run.
func (f *Fake) Names() []string {
	var s []string
	for _, c := range f.Cmds {
		if len(c.Args) > 0 {
			s = append(s, c.Args[0])
		} else {
			s = append(s, c.Name)
		}
	}
	return s
}

// WriteIn writes a file in the working directory of a command.
func WriteIn(c runtool.Cmd, name, contents string) error {
	return os.WriteFile(filepath.Join(c.Dir, name), []byte(contents), 0644)
}
