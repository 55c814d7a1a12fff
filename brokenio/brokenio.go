// brokenio wraps an io.Reader so that it fails. Structure files come
// from disks, gzip streams and pipes from other programs, and any of
// them can stop half way. Tests wrap a good reader and check that the
// error comes back instead of a short structure.

package brokenio

import (
	"errors"
	"io"
	"math/rand"
)

// ErrBroken is what a Reader returns when it decides to fail.
var ErrBroken = errors.New("brokenio: artificial read failure")

// Reader passes data through until it has passed FailAfter bytes, then
// returns ErrBroken. With ProbFail set, each read also fails with that
// probability. ProbZero is the chance that the first read returns
// nothing at all, which is what one sees with an empty file.
type Reader struct {
	rdr       io.Reader
	FailAfter int // -1 means never
	ProbFail  float32
	ProbZero  float32
	rnd       *rand.Rand
	nCalled   int
	nByte     int
}

// NewReader wraps rdr. It fails after failAfter bytes, or never if
// failAfter is negative. seed fixes the random failures.
func NewReader(rdr io.Reader, failAfter int, seed int64) *Reader {
	return &Reader{rdr: rdr, FailAfter: failAfter, rnd: rand.New(rand.NewSource(seed))}
}

// Read might fail. Bytes read before a failure are returned with it.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	first := r.nCalled == 0
	r.nCalled++
	if first && r.ProbZero > 0 && r.rnd.Float32() < r.ProbZero {
		return 0, io.EOF
	}
	if r.FailAfter >= 0 {
		left := r.FailAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err := r.rdr.Read(p)
	r.nByte += n
	if err == nil && r.ProbFail > 0 && r.rnd.Float32() < r.ProbFail {
		return n, ErrBroken
	}
	return n, err
}

// NByte is how much data got through.
func (r *Reader) NByte() int { return r.nByte }
