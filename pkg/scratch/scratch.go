// 14 Oct 2026
// Scratch directories for one protein. They are made, used and removed,
// whatever happens in between.

package scratch

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/andrew-torda/pdbprep/pkg/common"
)

// live has the directories that With has made and not yet removed, so
// they can be cleaned up if we are killed.
var live = struct {
	sync.Mutex
	dirs map[string]bool
}{dirs: make(map[string]bool)}

func register(dir string) {
	live.Lock()
	live.dirs[dir] = true
	live.Unlock()
}

func unregister(dir string) {
	live.Lock()
	delete(live.dirs, dir)
	live.Unlock()
}

// RemoveLive removes every scratch directory still in use and returns
// their names. Directories that are being kept are not touched.
func RemoveLive() []string {
	live.Lock()
	defer live.Unlock()
	var gone []string
	for dir := range live.dirs {
		os.RemoveAll(dir)
		delete(live.dirs, dir)
		gone = append(gone, dir)
	}
	return gone
}

// Trap removes live scratch directories on SIGINT or SIGTERM and exits
// with common.ExitFailure. Call the returned function to stop trapping.
func Trap() (stop func()) {
	c := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-c:
			RemoveLive()
			fmt.Fprintln(os.Stderr, "Fatal: stopped by", sig)
			os.Exit(common.ExitFailure)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(c)
		close(done)
	}
}

// Dir describes where scratch directories go and whether they are kept.
// The zero value uses the system temporary directory and removes
// everything.
type Dir struct {
	Parent string      // "" means os.TempDir()
	Prefix string      // start of the directory name
	Keep   bool        // leave the directory for debugging
	Log    *log.Logger // may be nil
}

// With makes a directory, calls fn with its name and removes the
// directory afterwards, even if fn fails or panics. An error from
// removing is only returned if fn succeeded.
func (d Dir) With(fn func(dir string) error) (err error) {
	tmp, err := os.MkdirTemp(d.Parent, d.Prefix)
	if err != nil {
		return err
	}
	if !d.Keep {
		register(tmp)
	}
	defer func() {
		if d.Keep {
			if d.Log != nil {
				d.Log.Println("keeping scratch directory", tmp)
			}
			return
		}
		unregister(tmp)
		if e := os.RemoveAll(tmp); e != nil && err == nil {
			err = e
		}
	}()
	if fn == nil {
		return errors.New("scratch: nil function")
	}
	return fn(tmp)
}

// With is Dir.With with defaults.
func With(prefix string, fn func(dir string) error) error {
	return Dir{Prefix: prefix}.With(fn)
}
