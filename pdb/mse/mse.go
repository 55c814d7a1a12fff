// Package mse turns selenomethionine into methionine.
//
// Crystallographers grow proteins with selenomethionine (MSE) for
// phasing. It appears as HETATM records, which the force field programs
// do not recognise. We rewrite those lines as ATOM records for MET and
// rename the selenium SE to the sulfur SD. Only lines are looked at.
// There is no chemistry here.
package mse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	seName  = "SE   " // columns 13-17 of the selenium
	sdName  = " SD  "
	lastCol = 67 // columns after this are dropped from converted lines
	maxLine = 1024 * 1024
)

// FixLine fixes one line. ATOM records come back unchanged. HETATM
// records for MSE come back as ATOM records for MET. For anything else
// the second return value is false and the line should be dropped.
// The line should not have its newline.
func FixLine(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, "ATOM"):
		return line, true
	case !strings.HasPrefix(line, "HETATM"):
		return "", false
	}
	if len(line) < lastCol {
		line += strings.Repeat(" ", lastCol-len(line))
	}
	if line[17:20] != "MSE" {
		return "", false
	}
	atomName := line[12:17]
	if atomName == seName {
		atomName = sdName
	}
	return "ATOM  " + line[6:12] + atomName + "MET" + line[20:lastCol], true
}

// FixFile copies records from in to out, fixing or dropping lines. It
// returns the number of MSE lines that were converted.
func FixFile(in io.Reader, out io.Writer) (int, error) {
	var nFixed int
	scnnr := bufio.NewScanner(in)
	scnnr.Buffer(make([]byte, 0, 4096), maxLine)
	bw := bufio.NewWriter(out)
	for scnnr.Scan() {
		line := scnnr.Text()
		fixed, ok := FixLine(line)
		if !ok {
			continue
		}
		if fixed != line {
			nFixed++
		}
		bw.WriteString(fixed)
		bw.WriteByte('\n')
	}
	if err := scnnr.Err(); err != nil {
		return nFixed, err
	}
	return nFixed, bw.Flush()
}

// FixPath is FixFile on file names.
func FixPath(inName, outName string) (int, error) {
	fin, err := os.Open(inName)
	if err != nil {
		return 0, err
	}
	defer fin.Close()
	fout, err := os.Create(outName)
	if err != nil {
		return 0, err
	}
	n, err := FixFile(fin, fout)
	if err != nil {
		fout.Close()
		return n, fmt.Errorf("fixing %s: %w", inName, err)
	}
	return n, fout.Close()
}
