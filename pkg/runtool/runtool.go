// 14 Oct 2026
// Run external programs. Arguments go straight to the program, never
// through a shell, so protein names cannot turn into commands.
// Output is captured so failures can be shown to the user.

package runtool

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Cmd is one program to run.
type Cmd struct {
	Name   string   // program name or path
	Args   []string // arguments, not including the name
	Dir    string   // working directory of the program
	Stdout string   // if not empty, a copy of stdout goes to this file in Dir
}

func (c Cmd) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Result is what a program left behind.
type Result struct {
	Stdout []byte
	Stderr []byte
}

// ExitError is returned when a program runs, but does not exit with
// status zero.
type ExitError struct {
	Cmd    Cmd
	Status int
	Stderr []byte
}

// maxErrLen is how much stderr goes into an error message
const maxErrLen = 2000

func (e *ExitError) Error() string {
	s := bytes.TrimSpace(e.Stderr)
	if len(s) > maxErrLen {
		s = s[len(s)-maxErrLen:]
	}
	return fmt.Sprintf("%s: exit status %d\n%s", e.Cmd, e.Status, s)
}

// Runner runs commands. The pipelines take one of these, so tests can
// pretend to be modeller or tleap.
type Runner interface {
	Run(c Cmd) (Result, error)
}

// Exec runs commands with os/exec.
type Exec struct{}

// Run runs the command and waits. A program that cannot be found or
// started is an error. So is a non-zero exit, which gives an *ExitError.
func (Exec) Run(c Cmd) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if c.Stdout != "" {
		if e := os.WriteFile(filepath.Join(c.Dir, c.Stdout), res.Stdout, 0644); e != nil && err == nil {
			err = e
		}
	}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &exitErr):
		return res, &ExitError{Cmd: c, Status: exitErr.ExitCode(), Stderr: res.Stderr}
	default:
		return res, fmt.Errorf("%s: %w", c.Name, err)
	}
}

// AbsProg makes a program name with a directory in it absolute. The
// programs run in scratch directories, where a relative path would
// point somewhere else. Bare names are left for the PATH search.
func AbsProg(name string) string {
	if !strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	if abs, err := filepath.Abs(name); err == nil {
		return abs
	}
	return name
}

// Check says if a program can be found, before we spend time staging
// files for it.
func Check(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
