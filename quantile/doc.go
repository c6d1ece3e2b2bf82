// Package quantile reshapes each column of a frame onto a reference
// distribution by rank, making heterogeneous feature scales comparable
// before clustering.
//
// Transform estimates each column's empirical distribution from the column's
// own values at quantileCount evenly spaced probabilities, then maps every
// value to its cumulative position: uniform [0,1] output by default, or the
// standard normal via the probit function with WithGaussianReference.
//
// The transform is fit and applied on the same matrix — there is no separate
// held-out fit set. Degenerate (constant) columns map every row to the
// distribution midpoint instead of dividing by zero.
package quantile
