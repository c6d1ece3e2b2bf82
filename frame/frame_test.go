// SPDX-License-Identifier: MIT

package frame_test

import (
	"testing"

	"github.com/katalvlaran/mixcluster/frame"
	"github.com/katalvlaran/mixcluster/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_PreservesOrderAndZeroFills verifies identity order, zero cells, and
// the defensive copy of the input slices.
func TestNew_PreservesOrderAndZeroFills(t *testing.T) {
	rows := []string{"Negroni", "Martini"}
	cols := []string{"Gin", "Campari"}

	f, err := frame.New(rows, cols)
	require.NoError(t, err)
	assert.Equal(t, []string{"Negroni", "Martini"}, f.RowIDs(), "input order must survive")
	assert.Equal(t, []string{"Gin", "Campari"}, f.ColumnIDs())

	v, err := f.AtID("Martini", "Gin")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "cells start at zero")

	// Mutating the caller's slice must not move the frame's identities.
	rows[0] = "Mojito"
	assert.Equal(t, "Negroni", f.RowIDs()[0], "constructor must copy identities")
}

// TestNew_Rejections covers the empty-set and duplicate-identity errors.
func TestNew_Rejections(t *testing.T) {
	_, err := frame.New(nil, []string{"Gin"})
	assert.ErrorIs(t, err, frame.ErrNoIdentities, "no rows")

	_, err = frame.New([]string{"Negroni"}, nil)
	assert.ErrorIs(t, err, frame.ErrNoIdentities, "no columns")

	_, err = frame.New([]string{"Negroni", "Negroni"}, []string{"Gin"})
	assert.ErrorIs(t, err, frame.ErrDuplicateID, "duplicate row identity")

	_, err = frame.New([]string{"Negroni"}, []string{"Gin", "Gin"})
	assert.ErrorIs(t, err, frame.ErrDuplicateID, "duplicate column identity")
}

// TestNewSorted verifies lexicographic identity order regardless of input
// order, so equal identity sets always produce identical frames.
func TestNewSorted(t *testing.T) {
	f, err := frame.NewSorted([]string{"Negroni", "Americano", "Martini"}, []string{"Vodka", "Gin"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Americano", "Martini", "Negroni"}, f.RowIDs())
	assert.Equal(t, []string{"Gin", "Vodka"}, f.ColumnIDs())
}

// TestFrame_IDAccessors verifies SetID/AtID round trips and unknown-identity
// rejection.
func TestFrame_IDAccessors(t *testing.T) {
	f, err := frame.New([]string{"Negroni"}, []string{"Gin", "Campari"})
	require.NoError(t, err)

	require.NoError(t, f.SetID("Negroni", "Campari", 1.0))
	v, err := f.AtID("Negroni", "Campari")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = f.AtID("Mojito", "Gin")
	assert.ErrorIs(t, err, frame.ErrUnknownID, "unknown row")
	_, err = f.AtID("Negroni", "Rum")
	assert.ErrorIs(t, err, frame.ErrUnknownID, "unknown column")
	assert.ErrorIs(t, f.SetID("Mojito", "Gin", 2.0), frame.ErrUnknownID)
}

// TestFrame_IndexAccessors verifies positional access and range errors.
func TestFrame_IndexAccessors(t *testing.T) {
	f, err := frame.New([]string{"a", "b"}, []string{"x", "y", "z"})
	require.NoError(t, err)

	require.NoError(t, f.Set(1, 2, 3.5))
	v, err := f.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	_, err = f.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	i, ok := f.RowIndex("b")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = f.ColumnIndex("w")
	assert.False(t, ok)
}

// TestFrame_RowColumnCopies verifies that Row/RowByID/Column return copies
// detached from the backing storage.
func TestFrame_RowColumnCopies(t *testing.T) {
	f, err := frame.New([]string{"a", "b"}, []string{"x", "y"})
	require.NoError(t, err)
	require.NoError(t, f.SetID("b", "y", 7.0))

	row, err := f.RowByID("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 7}, row)

	row[0] = 99 // must not write through
	v, _ := f.AtID("b", "x")
	assert.Equal(t, 0.0, v, "Row must return a copy")

	col, err := f.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 7}, col)

	_, err = f.RowByID("missing")
	assert.ErrorIs(t, err, frame.ErrUnknownID)
}

// TestFrame_CloneIndependence verifies a deep copy: writes to the clone never
// reach the original.
func TestFrame_CloneIndependence(t *testing.T) {
	f, err := frame.New([]string{"a"}, []string{"x"})
	require.NoError(t, err)
	require.NoError(t, f.SetID("a", "x", 1.0))

	clone := f.Clone()
	require.NoError(t, clone.SetID("a", "x", 2.0))

	v, _ := f.AtID("a", "x")
	assert.Equal(t, 1.0, v, "clone writes must not reach the original")
}

// TestFrame_EmptyLike verifies identity reuse with zeroed values.
func TestFrame_EmptyLike(t *testing.T) {
	f, err := frame.New([]string{"a", "b"}, []string{"x"})
	require.NoError(t, err)
	require.NoError(t, f.SetID("a", "x", 5.0))

	empty := f.EmptyLike()
	assert.Equal(t, f.RowIDs(), empty.RowIDs())
	assert.Equal(t, f.ColumnIDs(), empty.ColumnIDs())
	v, _ := empty.AtID("a", "x")
	assert.Equal(t, 0.0, v, "EmptyLike must reset values")
}

// TestValidate covers the nil-frame guard.
func TestValidate(t *testing.T) {
	assert.ErrorIs(t, frame.Validate(nil), frame.ErrNilFrame)

	f, err := frame.New([]string{"a"}, []string{"x"})
	require.NoError(t, err)
	assert.NoError(t, frame.Validate(f))
}
