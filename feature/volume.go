package feature

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mixcluster/frame"
)

// BuildVolumeMatrix pivots composition rows into a dense cocktail×ingredient
// volume frame.
//
// Policies (all deterministic, all tested):
//   - Rows are the distinct cocktail names, columns the distinct ingredient
//     names, both sorted lexicographically.
//   - A nil VolumeOz becomes DefaultMissingVolume (present but unmeasured).
//   - A (cocktail, ingredient) pair never mentioned in comps stays 0.
//   - Duplicate (cocktail, ingredient) pairs resolve last-wins in input
//     order, mirroring the upstream pivot behavior.
//
// Stage 1 (Validate): at least one composition row.
// Stage 2 (Prepare): collect identities, allocate the frame.
// Stage 3 (Execute): write volumes in input order (last-wins).
// Complexity: O(m + r·c) time, O(r·c) memory for m rows, r cocktails,
// c ingredients.
func BuildVolumeMatrix(comps []Composition) (*frame.Frame, error) {
	// Stage 1: Validate
	if len(comps) == 0 {
		return nil, ErrNoCompositions
	}

	// Stage 2: Prepare — distinct identities in sorted order.
	var (
		cocktailSet   = make(map[string]struct{})
		ingredientSet = make(map[string]struct{})
	)
	for _, cmp := range comps {
		cocktailSet[cmp.CocktailName] = struct{}{}
		ingredientSet[cmp.IngredientName] = struct{}{}
	}
	cocktails := make([]string, 0, len(cocktailSet))
	for name := range cocktailSet {
		cocktails = append(cocktails, name)
	}
	ingredients := make([]string, 0, len(ingredientSet))
	for name := range ingredientSet {
		ingredients = append(ingredients, name)
	}
	sort.Strings(cocktails)
	sort.Strings(ingredients)

	f, err := frame.New(cocktails, ingredients)
	if err != nil {
		return nil, fmt.Errorf("BuildVolumeMatrix: %w", err)
	}

	// Stage 3: Execute — input order, so later duplicates overwrite earlier
	// ones (last-wins).
	for _, cmp := range comps {
		if err = f.SetID(cmp.CocktailName, cmp.IngredientName, volumeOrDefault(cmp)); err != nil {
			return nil, fmt.Errorf("BuildVolumeMatrix: %w", err)
		}
	}

	return f, nil
}
