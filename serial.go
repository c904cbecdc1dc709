package fhd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Dump writes the upper-triangular histograms as a flat text table, one
// histogram per line with whitespace-separated values. N, NumDirs and the
// attraction forces are not part of the format; Load must be given them
// again (NumDirs is derived from the row width).
func (d *FHD) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, h := range d.hists {
		for k, v := range h {
			if k > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			buf = strconv.AppendFloat(buf[:0], v, 'e', 17, 64)
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load reads a descriptor dumped by Dump. The caller supplies the layer
// count and the attraction forces, which the format does not persist.
func Load(r io.Reader, n int, shapeForce, spatialForce float64) (*FHD, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNoLayers, n)
	}
	if err := validForces(shapeForce, spatialForce); err != nil {
		return nil, err
	}

	var hists [][]float64
	numDirs := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if numDirs == 0 {
			numDirs = len(fields)
		} else if len(fields) != numDirs {
			return nil, fmt.Errorf("%w: line %d has %d values, want %d",
				ErrBadDump, line, len(fields), numDirs)
		}
		h := make([]float64, len(fields))
		for k, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadDump, line, err)
			}
			h[k] = v
		}
		hists = append(hists, h)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if want := n * (n + 1) / 2; len(hists) != want {
		return nil, fmt.Errorf("%w: %d histograms for %d layers, want %d",
			ErrBadDump, len(hists), n, want)
	}
	return New(hists, n, shapeForce, spatialForce)
}

// DumpFile writes the descriptor to a file.
func (d *FHD) DumpFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Dump(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a descriptor from a file dumped by DumpFile.
func LoadFile(path string, n int, shapeForce, spatialForce float64) (*FHD, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, n, shapeForce, spatialForce)
}
