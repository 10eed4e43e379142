package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for matrix construction.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
	// ErrEmptyMatrix indicates FromRows received no rows or no columns.
	ErrEmptyMatrix = errors.New("matrix: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")
	// ErrNilFill indicates Generate received a nil fill function.
	ErrNilFill = errors.New("matrix: fill function must be non-nil")
)

// ElemSize is the size of one element in bytes. All cache reasoning in this
// module (line spans, set congruences) assumes 4-byte elements.
const ElemSize = 4

// Matrix is a dense row-major matrix of int32 values.
// rows and cols give the logical shape; data holds rows*cols elements.
// probe, when non-nil, observes the byte offset of every At/Set access
// relative to base (see Observe).
type Matrix struct {
	rows, cols int
	data       []int32 // flat backing storage, length == rows*cols
	probe      Probe   // optional access observer, nil when detached
	base       int     // virtual base byte address reported to the probe
}

// New creates a rows×cols Matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Matrix or ErrInvalidDimensions.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int) (*Matrix, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Allocate flat slice and return
	return &Matrix{rows: rows, cols: cols, data: make([]int32, rows*cols)}, nil
}

// FromRows builds a Matrix from a 2D slice, copying every element.
// Stage 1 (Validate): non-empty input, all rows of equal length.
// Stage 2 (Execute): copy row by row into flat storage.
// Complexity: O(rows*cols) time and memory.
func FromRows(rows [][]int32) (*Matrix, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	cols := len(rows[0])

	// Validate rectangularity before any allocation
	var i int
	for i = range rows {
		if len(rows[i]) != cols {
			return nil, ErrNonRectangular
		}
	}

	// Copy into flat storage
	m := &Matrix{rows: len(rows), cols: cols, data: make([]int32, len(rows)*cols)}
	for i = range rows {
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// Generate creates a rows×cols Matrix with each cell (i, j) set to fill(i, j).
// Useful for the deterministic test patterns the harness evaluates on.
// Complexity: O(rows*cols) time and memory.
func Generate(rows, cols int, fill func(i, j int) int32) (*Matrix, error) {
	if fill == nil {
		return nil, ErrNilFill
	}
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	// Fill deterministically in row-major order
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.data[i*cols+j] = fill(i, j)
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.rows // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.cols // return stored column count
}

// At returns the element at (i, j).
//
// This is the kernels' trusted hot path: indices are NOT bounds-checked
// (out-of-range access is a caller bug, surfaced by the runtime), and the
// attached probe, if any, observes the element's byte offset as a load.
// Complexity: O(1); allocation-free.
func (m *Matrix) At(i, j int) int32 {
	if m.probe != nil {
		m.probe.Load(m.base + ElemSize*(i*m.cols+j))
	}

	return m.data[i*m.cols+j]
}

// Set assigns v at (i, j).
// Trusted hot path, mirror of At: unchecked indices, probe observes a store.
// Complexity: O(1); allocation-free.
func (m *Matrix) Set(i, j int, v int32) {
	if m.probe != nil {
		m.probe.Store(m.base + ElemSize*(i*m.cols+j))
	}
	m.data[i*m.cols+j] = v
}

// Data exposes the flat backing slice (row-major, length rows*cols).
// The slice is shared, not copied; mutating it mutates the matrix.
func (m *Matrix) Data() []int32 {
	return m.data
}

// Clone returns a deep copy of the matrix. The probe attachment is NOT
// cloned: observation is a property of one evaluation run, not of the data.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix) Clone() *Matrix {
	// Allocate and copy backing storage
	cp := make([]int32, len(m.data))
	copy(cp, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: cp}
}

// Equal reports whether m and other have identical shape and contents.
// Comparison bypasses probes: it reads storage directly.
// Complexity: O(rows*cols).
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	var k int
	for k = range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(rows*cols) for string construction.
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ { // iterate over rows
		sb.WriteByte('[')            // open row
		for j = 0; j < m.cols; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%d", m.data[i*m.cols+j])
			if j < m.cols-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
