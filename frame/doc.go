// Package frame provides the labeled dense matrix that every pipeline stage
// exchanges: rows identified by cocktail names, columns by feature names.
//
// The frame package provides:
//
//   - Frame, a dense float64 matrix with unique, ordered row and column
//     identities and O(1) label→index lookup.
//   - Constructors that validate identity uniqueness up front, so numeric
//     code downstream never re-checks labels.
//   - Copy-based accessors (Row, Column, RowByID) for external consumers
//     such as plotting collaborators.
//
// Frames are values: producers build a frame, hand it to the caller and keep
// no reference. Treat a received frame as immutable; use Clone before any
// in-place experimentation.
//
// Row order carries no meaning beyond indexing. New preserves the caller's
// identity order; NewSorted sorts labels lexicographically so equal identity
// sets always produce identical frames.
package frame
