package feature

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mixcluster/frame"
)

// styleAttributes lists the encoded categorical attributes in column-group
// order. ABV is intentionally excluded: it is too sparsely populated
// upstream, so the categorical Strength class stands in for it.
var styleAttributes = []string{"glass", "prep_method", "strength"}

// attributeValue extracts the named categorical attribute from a cocktail.
func attributeValue(c Cocktail, attr string) string {
	switch attr {
	case "glass":
		return c.Glass
	case "prep_method":
		return c.PrepMethod
	default: // "strength"
		return c.Strength
	}
}

// StyleEncoder one-hot encodes the categorical cocktail attributes
// {glass, prep_method, strength}. Levels are learned by Fit; Transform then
// produces one indicator column per learned (attribute, level) pair.
//
// A level seen at transform time but not at fit time is encoded as all-zero
// within its attribute block — never an error — so the encoder stays usable
// on held-out cocktails.
type StyleEncoder struct {
	levels map[string][]string // attribute → sorted distinct levels
}

// Fit learns the distinct levels of each encoded attribute from cocktails.
// Levels are sorted lexicographically so column order is stable across runs.
// The empty string is a level like any other (missing category upstream).
// Complexity: O(n·a + L log L) for n cocktails, a attributes, L levels.
func (e *StyleEncoder) Fit(cocktails []Cocktail) error {
	// Stage 1: Validate
	if len(cocktails) == 0 {
		return ErrNoCocktails
	}

	// Stage 2: Collect distinct levels per attribute.
	e.levels = make(map[string][]string, len(styleAttributes))
	for _, attr := range styleAttributes {
		seen := make(map[string]struct{})
		for _, c := range cocktails {
			seen[attributeValue(c, attr)] = struct{}{}
		}
		levels := make([]string, 0, len(seen))
		for lv := range seen {
			levels = append(levels, lv)
		}
		sort.Strings(levels)
		e.levels[attr] = levels
	}

	return nil
}

// ColumnIDs returns the encoded column names in output order:
// "attribute=level" per learned level, attribute blocks in fixed order.
// Returns ErrNotFitted before Fit.
func (e *StyleEncoder) ColumnIDs() ([]string, error) {
	if e.levels == nil {
		return nil, ErrNotFitted
	}
	var cols []string
	for _, attr := range styleAttributes {
		for _, lv := range e.levels[attr] {
			cols = append(cols, attr+"="+lv)
		}
	}

	return cols, nil
}

// Transform one-hot encodes cocktails against the fitted levels.
// Rows keep the input order of cocktails (names must be unique); unknown
// levels leave their attribute block all-zero.
// Complexity: O(n·L) time and memory.
func (e *StyleEncoder) Transform(cocktails []Cocktail) (*frame.Frame, error) {
	// Stage 1: Validate
	if e.levels == nil {
		return nil, ErrNotFitted
	}
	if len(cocktails) == 0 {
		return nil, ErrNoCocktails
	}

	// Stage 2: Prepare the frame with fitted column identities.
	cols, err := e.ColumnIDs()
	if err != nil {
		return nil, err
	}
	rows := make([]string, len(cocktails))
	for i, c := range cocktails {
		rows[i] = c.Name
	}
	f, err := frame.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("StyleEncoder.Transform: %w", err)
	}

	// Stage 3: Execute — set the matching indicator per attribute block.
	// An unknown level simply finds no column and the block stays zero.
	for i, c := range cocktails {
		for _, attr := range styleAttributes {
			col := attr + "=" + attributeValue(c, attr)
			if j, ok := f.ColumnIndex(col); ok {
				_ = f.Set(i, j, 1.0) // indices are in range by construction
			}
		}
	}

	return f, nil
}

// BuildStyleMatrix is the one-shot fit-and-transform convenience used when
// no held-out set exists: levels are learned from cocktails and the same
// cocktails are encoded.
// Complexity: as Fit + Transform.
func BuildStyleMatrix(cocktails []Cocktail) (*frame.Frame, error) {
	var enc StyleEncoder
	if err := enc.Fit(cocktails); err != nil {
		return nil, err
	}

	return enc.Transform(cocktails)
}
