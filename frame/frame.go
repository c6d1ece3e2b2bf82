// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/mixcluster/matrix"
)

var (
	// ErrNilFrame indicates that a nil *Frame was passed where a frame is required.
	ErrNilFrame = errors.New("frame: nil frame")

	// ErrNoIdentities is returned when a constructor receives an empty row or
	// column identity set.
	ErrNoIdentities = errors.New("frame: empty identity set")

	// ErrDuplicateID is returned when a row or column identity occurs twice.
	ErrDuplicateID = errors.New("frame: duplicate identity")

	// ErrUnknownID indicates a lookup with an identity the frame does not contain.
	ErrUnknownID = errors.New("frame: unknown identity")
)

// Frame is a dense float64 matrix whose rows and columns carry stable string
// identities. All cells start at zero.
type Frame struct {
	rowIDs []string       // row identities in index order
	colIDs []string       // column identities in index order
	rowIdx map[string]int // identity → row index
	colIdx map[string]int // identity → column index
	mat    *matrix.Dense  // backing storage, rows×cols
}

// indexIDs validates uniqueness and builds the identity → index map.
// Complexity: O(n) time and memory.
func indexIDs(ids []string) (map[string]int, error) {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, dup := idx[id]; dup {
			return nil, fmt.Errorf("frame: identity %q: %w", id, ErrDuplicateID)
		}
		idx[id] = i
	}

	return idx, nil
}

// New creates a zero-filled frame with the given row and column identities,
// in the exact order supplied.
// Stage 1 (Validate): non-empty, unique identities.
// Stage 2 (Prepare): index maps and backing Dense.
// Complexity: O(r·c) time and memory.
func New(rowIDs, colIDs []string) (*Frame, error) {
	// Stage 1: Validate
	if len(rowIDs) == 0 || len(colIDs) == 0 {
		return nil, ErrNoIdentities
	}

	// Stage 2: Prepare — defensive copies so callers cannot alias our order.
	rows := make([]string, len(rowIDs))
	copy(rows, rowIDs)
	cols := make([]string, len(colIDs))
	copy(cols, colIDs)

	rowIdx, err := indexIDs(rows)
	if err != nil {
		return nil, err
	}
	colIdx, err := indexIDs(cols)
	if err != nil {
		return nil, err
	}
	mat, err := matrix.NewDense(len(rows), len(cols))
	if err != nil {
		return nil, fmt.Errorf("frame.New: %w", err)
	}

	return &Frame{rowIDs: rows, colIDs: cols, rowIdx: rowIdx, colIdx: colIdx, mat: mat}, nil
}

// NewSorted creates a zero-filled frame with identities sorted
// lexicographically, so equal identity sets always yield identical frames
// regardless of input order.
// Complexity: O(r log r + c log c + r·c).
func NewSorted(rowIDs, colIDs []string) (*Frame, error) {
	rows := make([]string, len(rowIDs))
	copy(rows, rowIDs)
	cols := make([]string, len(colIDs))
	copy(cols, colIDs)
	sort.Strings(rows)
	sort.Strings(cols)

	return New(rows, cols)
}

// Rows returns the number of rows. Complexity: O(1).
func (f *Frame) Rows() int { return len(f.rowIDs) }

// Cols returns the number of columns. Complexity: O(1).
func (f *Frame) Cols() int { return len(f.colIDs) }

// RowIDs returns a copy of the row identities in index order.
// Complexity: O(r).
func (f *Frame) RowIDs() []string {
	out := make([]string, len(f.rowIDs))
	copy(out, f.rowIDs)

	return out
}

// ColumnIDs returns a copy of the column identities in index order.
// Complexity: O(c).
func (f *Frame) ColumnIDs() []string {
	out := make([]string, len(f.colIDs))
	copy(out, f.colIDs)

	return out
}

// RowIndex returns the index of the row with identity id.
// Complexity: O(1).
func (f *Frame) RowIndex(id string) (int, bool) {
	i, ok := f.rowIdx[id]

	return i, ok
}

// ColumnIndex returns the index of the column with identity id.
// Complexity: O(1).
func (f *Frame) ColumnIndex(id string) (int, bool) {
	j, ok := f.colIdx[id]

	return j, ok
}

// At retrieves the cell at (row i, column j).
// Returns matrix.ErrOutOfRange for invalid indices. Complexity: O(1).
func (f *Frame) At(i, j int) (float64, error) { return f.mat.At(i, j) }

// Set assigns v at (row i, column j).
// Returns matrix.ErrOutOfRange for invalid indices. Complexity: O(1).
func (f *Frame) Set(i, j int, v float64) error { return f.mat.Set(i, j, v) }

// AtID retrieves the cell addressed by identities.
// Returns ErrUnknownID when either identity is absent. Complexity: O(1).
func (f *Frame) AtID(rowID, colID string) (float64, error) {
	i, ok := f.rowIdx[rowID]
	if !ok {
		return 0, fmt.Errorf("frame.AtID: row %q: %w", rowID, ErrUnknownID)
	}
	j, ok := f.colIdx[colID]
	if !ok {
		return 0, fmt.Errorf("frame.AtID: column %q: %w", colID, ErrUnknownID)
	}

	return f.mat.At(i, j)
}

// SetID assigns v at the cell addressed by identities.
// Returns ErrUnknownID when either identity is absent. Complexity: O(1).
func (f *Frame) SetID(rowID, colID string, v float64) error {
	i, ok := f.rowIdx[rowID]
	if !ok {
		return fmt.Errorf("frame.SetID: row %q: %w", rowID, ErrUnknownID)
	}
	j, ok := f.colIdx[colID]
	if !ok {
		return fmt.Errorf("frame.SetID: column %q: %w", colID, ErrUnknownID)
	}

	return f.mat.Set(i, j, v)
}

// Row returns a copy of row i. Complexity: O(c).
func (f *Frame) Row(i int) ([]float64, error) { return f.mat.Row(i) }

// RowByID returns a copy of the row with identity id.
// Complexity: O(c).
func (f *Frame) RowByID(id string) ([]float64, error) {
	i, ok := f.rowIdx[id]
	if !ok {
		return nil, fmt.Errorf("frame.RowByID: %q: %w", id, ErrUnknownID)
	}

	return f.mat.Row(i)
}

// Column returns a copy of column j. Complexity: O(r).
func (f *Frame) Column(j int) ([]float64, error) { return f.mat.Col(j) }

// Dense exposes the backing matrix for numeric routines.
// The frame owns this storage: treat it as read-only and Clone the frame
// before mutating.
func (f *Frame) Dense() *matrix.Dense { return f.mat }

// Clone returns a deep copy of the frame (identities and values).
// Complexity: O(r·c).
func (f *Frame) Clone() *Frame {
	out := &Frame{
		rowIDs: make([]string, len(f.rowIDs)),
		colIDs: make([]string, len(f.colIDs)),
		rowIdx: make(map[string]int, len(f.rowIdx)),
		colIdx: make(map[string]int, len(f.colIdx)),
		mat:    f.mat.Clone().(*matrix.Dense),
	}
	copy(out.rowIDs, f.rowIDs)
	copy(out.colIDs, f.colIDs)
	for id, i := range f.rowIdx {
		out.rowIdx[id] = i
	}
	for id, j := range f.colIdx {
		out.colIdx[id] = j
	}

	return out
}

// EmptyLike returns a zero-filled frame with the same identities as f.
// Complexity: O(r·c).
func (f *Frame) EmptyLike() *Frame {
	out, _ := New(f.rowIDs, f.colIDs) // identities already validated

	return out
}

// Validate reports ErrNilFrame for a nil receiver; the zero-size case cannot
// occur because constructors reject empty identity sets.
func Validate(f *Frame) error {
	if f == nil || f.mat == nil {
		return ErrNilFrame
	}

	return nil
}
