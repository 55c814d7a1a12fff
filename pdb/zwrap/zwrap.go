// Package zwrap takes a file pointer or a block of bytes and, if the
// contents are gzipped, wraps it so reads come from the decompressor.
// Upon calling Close, the decompressor will be closed, followed by the
// underlying file.
// Structure files from the PDB usually arrive as .pdb.gz or .ent.gz,
// but the external tools only read plain text, so anything we stage
// goes through here.

package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
)

// gzip streams start with these two bytes
var magic = []byte{0x1f, 0x8b}

// IsGzip says if a block of bytes looks like the start of a gzip stream.
func IsGzip(b []byte) bool { return bytes.HasPrefix(b, magic) }

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	rdr  io.Reader // either zrdr or a buffer on fp
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
func (fc *FpGzip) Close() error {
	var errs []error
	if fc.zrdr != nil {
		errs = append(errs, fc.zrdr.Close())
	}
	errs = append(errs, fc.fp.Close())
	return errors.Join(errs...)
}

// Read makes sure we read from the decompressor if there is one and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) { return fc.rdr.Read(p) }

// Compressed says if we are decompressing.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// WrapMaybe looks at the first bytes of fp and decides if the stream is
// compressed. It does not need to seek, so it is happy with pipes.
func WrapMaybe(fp io.ReadCloser) (*FpGzip, error) {
	br := bufio.NewReader(fp)
	fpz := &FpGzip{fp: fp, rdr: br}
	head, err := br.Peek(len(magic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !IsGzip(head) {
		return fpz, nil
	}
	if fpz.zrdr, err = gzip.NewReader(br); err != nil {
		return nil, err
	}
	fpz.rdr = fpz.zrdr
	return fpz, nil
}

// Open opens a file name and wraps it if necessary.
func Open(fname string) (*FpGzip, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fpz, err := WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, errors.New("reading " + fname + " " + err.Error())
	}
	return fpz, nil
}

// Bytes is for data that is already in memory, like a mapped file.
func Bytes(b []byte) (io.Reader, error) {
	if !IsGzip(b) {
		return bytes.NewReader(b), nil
	}
	return gzip.NewReader(bytes.NewReader(b))
}
