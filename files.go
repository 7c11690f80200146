/*
 * files.go, part of gombuild.
 *
 * Copyright 2026 The gombuild authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mbuild

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/mathewaa/gombuild/v3"
)

// NM2A converts lengths in nm, used internally, to A, used in XYZ files.
const NM2A = 10.0

// ZstdSuffix is the file name suffix that triggers zstd compression.
const ZstdSuffix = ".zst"

// zstdReadCloser lets a zstd decoder be closed as an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// NewFileWriter creates the file name and returns a writer for it. If the name ends in
// ZstdSuffix, the data is zstd-compressed. Closing the returned writer closes the file.
func NewFileWriter(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(name), ZstdSuffix) {
		return f, nil
	}
	z, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		f.Close()
		return nil, err
	}
	return &stackedCloser{WriteCloser: z, under: f}, nil
}

// NewFileReader opens the file name for reading, decompressing it if its name ends in ZstdSuffix.
func NewFileReader(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(name), ZstdSuffix) {
		return f, nil
	}
	z, err := zstd.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, err
	}
	return &stackedReadCloser{ReadCloser: zstdReadCloser{z}, under: f}, nil
}

// stackedCloser closes the compressor first, then the file under it.
type stackedCloser struct {
	io.WriteCloser
	under io.Closer
}

func (s *stackedCloser) Close() error {
	err := s.WriteCloser.Close()
	err2 := s.under.Close()
	if err != nil {
		return err
	}
	return err2
}

type stackedReadCloser struct {
	io.ReadCloser
	under io.Closer
}

func (s *stackedReadCloser) Close() error {
	s.ReadCloser.Close()
	return s.under.Close()
}

// WriteXYZ writes S to out in XYZ format. Positions are converted to A.
func WriteXYZ(out io.Writer, S *Structure, comment ...string) error {
	c := "written by gombuild"
	if len(comment) > 0 {
		c = strings.ReplaceAll(comment[0], "\n", " ")
	}
	w := bufio.NewWriter(out)
	if _, err := fmt.Fprintf(w, "%-d\n%s\n", S.Len(), c); err != nil {
		return err
	}
	for i, name := range S.Names {
		v := S.Positions.Vec(i)
		_, err := fmt.Fprintf(w, "%-2s  %12.6f%12.6f%12.6f\n", name, v.X*NM2A, v.Y*NM2A, v.Z*NM2A)
		if err != nil {
			return err
		}
	}
	return w.Flush()
}

// XYZFileWrite writes S to the file name in XYZ format, compressed if the name ends in ZstdSuffix.
func XYZFileWrite(name string, S *Structure, comment ...string) error {
	f, err := NewFileWriter(name)
	if err != nil {
		return err
	}
	if err := WriteXYZ(f, S, comment...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadXYZ reads one structure in XYZ format from in. Only names and positions (converted
// to nm) are set, since the format carries neither bonds nor ports.
func ReadXYZ(in io.Reader) (*Structure, error) {
	r := bufio.NewScanner(in)
	if !r.Scan() {
		return nil, ConfigErrorf("ReadXYZ", "empty input")
	}
	n, err := strconv.Atoi(strings.TrimSpace(r.Text()))
	if err != nil || n < 1 {
		return nil, ConfigErrorf("ReadXYZ", "invalid number of particles %q", r.Text())
	}
	r.Scan() //comment
	S := &Structure{Names: make([]string, 0, n), Positions: v3.Zeros(n)}
	for i := 0; i < n; i++ {
		if !r.Scan() {
			return nil, ConfigErrorf("ReadXYZ", "expected %d particles, found %d", n, i)
		}
		fields := strings.Fields(r.Text())
		if len(fields) < 4 {
			return nil, ConfigErrorf("ReadXYZ", "malformed line %d: %q", i+3, r.Text())
		}
		S.Names = append(S.Names, fields[0])
		for j := 0; j < 3; j++ {
			c, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, ConfigErrorf("ReadXYZ", "malformed coordinate in line %d: %v", i+3, err)
			}
			S.Positions.Set(i, j, c/NM2A)
		}
	}
	return S, r.Err()
}

// XYZFileRead reads the file name in XYZ format, decompressing it if the name ends in ZstdSuffix.
func XYZFileRead(name string) (*Structure, error) {
	f, err := NewFileReader(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	S, err := ReadXYZ(f)
	if err != nil {
		return nil, ErrDecorate(err, "XYZFileRead")
	}
	return S, nil
}
