// SPDX-License-Identifier: MIT

package mmfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	magic      = "LVMX"
	version    = uint32(1)
	headerSize = 24
	elemSize   = 8
)

var (
	// ErrBadMagic means the file is not a matrix file of a supported version.
	ErrBadMagic = errors.New("mmfile: bad magic or unsupported version")

	// ErrCorrupt means the file size disagrees with the header.
	ErrCorrupt = errors.New("mmfile: file size does not match header")

	// ErrReadOnly is returned by Set on a file opened with Open.
	ErrReadOnly = errors.New("mmfile: file is mapped read-only")

	// ErrClosed is returned by any access after Close.
	ErrClosed = errors.New("mmfile: file is closed")
)

var le = binary.LittleEndian

// File is an open matrix file. It implements matrix.Matrix; element reads and
// writes go straight to the mapping.
type File struct {
	file     *os.File
	data     mmap.MMap
	rows     int
	cols     int
	writable bool
}

var _ matrix.Matrix = (*File)(nil)

// fileSize returns the byte length for a rows×cols matrix, or false on overflow.
func fileSize(rows, cols uint64) (int64, bool) {
	if cols != 0 && rows > math.MaxInt64/elemSize/cols {
		return 0, false
	}
	n := rows * cols * elemSize
	if n > math.MaxInt64-headerSize {
		return 0, false
	}

	return int64(n) + headerSize, true
}

// Save writes m to path, replacing any existing file. The data goes to a
// temporary file in the same directory that is renamed over path, so m may be
// a *File mapped from path itself.
func Save(path string, m matrix.Matrix) (err error) {
	if err = matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("mmfile.Save: %w", err)
	}
	rows, cols := m.Rows(), m.Cols()
	size, _ := fileSize(uint64(rows), uint64(cols)) // in-memory shapes never overflow

	src, err := elements(m)
	if err != nil {
		return fmt.Errorf("mmfile.Save: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".lvmx-*")
	if err != nil {
		return fmt.Errorf("mmfile.Save: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = f.Truncate(size); err != nil {
		return fmt.Errorf("mmfile.Save: %w", err)
	}
	if err = writeMapped(f, rows, cols, src); err != nil {
		return fmt.Errorf("mmfile.Save: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("mmfile.Save: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("mmfile.Save: %w", err)
	}

	return nil
}

// elements returns m's values in row-major order. A *matrix.Dense hands over
// its own copy; anything else is read through At.
func elements(m matrix.Matrix) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.RawData(), nil
	}
	rows, cols := m.Rows(), m.Cols()
	src := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			src[i*cols+j] = v
		}
	}

	return src, nil
}

// writeMapped maps f, which must already have its final size, and writes the
// header followed by src.
func writeMapped(f *os.File, rows, cols int, src []float64) error {
	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return err
	}

	copy(data[0:4], magic)
	le.PutUint32(data[4:8], version)
	le.PutUint64(data[8:16], uint64(rows))
	le.PutUint64(data[16:24], uint64(cols))
	for idx, v := range src {
		le.PutUint64(data[headerSize+idx*elemSize:], math.Float64bits(v))
	}

	if err = data.Flush(); err != nil {
		_ = data.Unmap()
		return err
	}

	return data.Unmap()
}

// Open maps path read-only.
func Open(path string) (*File, error) {
	return open(path, false)
}

// OpenRW maps path read-write; Set writes through to the file.
func OpenRW(path string) (*File, error) {
	return open(path, true)
}

func open(path string, writable bool) (mf *File, err error) {
	flag, prot := os.O_RDONLY, mmap.RDONLY
	if writable {
		flag, prot = os.O_RDWR, mmap.RDWR
	}

	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("mmfile.Open: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("mmfile.Open: %w", err)
	}
	if info.Size() < headerSize {
		return nil, fmt.Errorf("mmfile.Open: %d bytes: %w", info.Size(), ErrCorrupt)
	}

	data, err := mmap.Map(f, prot, 0)
	if err != nil {
		return nil, fmt.Errorf("mmfile.Open: %w", err)
	}
	rows, cols, err := validateHeader(data, info.Size())
	if err != nil {
		_ = data.Unmap()
		return nil, fmt.Errorf("mmfile.Open: %w", err)
	}

	return &File{file: f, data: data, rows: rows, cols: cols, writable: writable}, nil
}

// validateHeader checks magic, version and that the size matches the extents.
func validateHeader(data []byte, size int64) (rows, cols int, err error) {
	if string(data[0:4]) != magic || le.Uint32(data[4:8]) != version {
		return 0, 0, ErrBadMagic
	}
	r, c := le.Uint64(data[8:16]), le.Uint64(data[16:24])
	want, ok := fileSize(r, c)
	if !ok || want != size || r > math.MaxInt || c > math.MaxInt {
		return 0, 0, fmt.Errorf("header %dx%d, %d bytes: %w", r, c, size, ErrCorrupt)
	}

	return int(r), int(c), nil
}

// Load reads the file at path into a new *matrix.Dense.
func Load(path string) (*matrix.Dense, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Dense()
}

// Rows returns the row count from the header.
func (f *File) Rows() int { return f.rows }

// Cols returns the column count from the header.
func (f *File) Cols() int { return f.cols }

func (f *File) offset(i, j int) (int, error) {
	if f.data == nil {
		return 0, ErrClosed
	}
	if i < 0 || i >= f.rows || j < 0 || j >= f.cols {
		return 0, fmt.Errorf("(%d,%d): %w", i, j, matrix.ErrIndexOutOfBounds)
	}

	return headerSize + (i*f.cols+j)*elemSize, nil
}

// At reads element (i, j) from the mapping.
func (f *File) At(i, j int) (float64, error) {
	off, err := f.offset(i, j)
	if err != nil {
		return 0, fmt.Errorf("mmfile.At: %w", err)
	}

	return math.Float64frombits(le.Uint64(f.data[off:])), nil
}

// Set writes element (i, j) into the mapping. Call Flush to force it to disk.
func (f *File) Set(i, j int, v float64) error {
	off, err := f.offset(i, j)
	if err != nil {
		return fmt.Errorf("mmfile.Set: %w", err)
	}
	if !f.writable {
		return fmt.Errorf("mmfile.Set: %w", ErrReadOnly)
	}
	le.PutUint64(f.data[off:], math.Float64bits(v))

	return nil
}

// Clone copies the mapped contents into an independent *matrix.Dense.
// A closed file clones to the empty matrix.
func (f *File) Clone() matrix.Matrix {
	d, err := f.Dense()
	if err != nil {
		return matrix.NewEmpty()
	}

	return d
}

// Dense copies the mapped contents into a new *matrix.Dense.
func (f *File) Dense() (*matrix.Dense, error) {
	if f.data == nil {
		return nil, fmt.Errorf("mmfile.Dense: %w", ErrClosed)
	}
	buf := make([]float64, f.rows*f.cols)
	for idx := range buf {
		buf[idx] = math.Float64frombits(le.Uint64(f.data[headerSize+idx*elemSize:]))
	}

	return matrix.NewFromData(f.rows, f.cols, buf)
}

// Flush writes dirty pages of a read-write mapping back to the file.
func (f *File) Flush() error {
	if f.data == nil {
		return fmt.Errorf("mmfile.Flush: %w", ErrClosed)
	}
	if !f.writable {
		return nil
	}
	if err := f.data.Flush(); err != nil {
		return fmt.Errorf("mmfile.Flush: %w", err)
	}

	return nil
}

// Close unmaps and closes the file. Closing twice is a no-op.
func (f *File) Close() error {
	if f.data == nil {
		return nil
	}
	uerr := f.data.Unmap()
	f.data = nil
	cerr := f.file.Close()

	return errors.Join(uerr, cerr)
}
