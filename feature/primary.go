package feature

import "sort"

// joinedRow is one composition row after the inner join with the ingredient
// table: the cocktail, the ingredient's type, and the effective volume.
type joinedRow struct {
	cocktail string
	typ      string
	volume   float64
}

// PrimaryAlcoholTypes derives, for every cocktail, the `type` of its
// alcoholic ingredient with the largest volume.
//
// Join and drop policy (silent by contract, asserted by tests):
//   - Composition rows referencing an ingredient absent from ingredients are
//     dropped (inner-join semantics), never errored.
//   - Rows whose ingredient has an empty Type are dropped.
//   - Only ingredients with GeneralizedType == GeneralizedAlcoholic count;
//     a cocktail with no alcoholic ingredient gets no entry.
//   - A nil VolumeOz ranks as DefaultMissingVolume.
//
// Tie-break: rows are stably sorted by (cocktail asc, volume desc); the
// first row per cocktail wins, so equal volumes resolve to the earliest
// composition row in input order. This is an explicit, documented policy.
//
// Stage 1 (Validate): non-empty inputs.
// Stage 2 (Prepare): index ingredients, inner-join and filter.
// Stage 3 (Execute): stable sort, keep first per cocktail.
// Complexity: O(m log m) time for m surviving rows, O(m) memory.
func PrimaryAlcoholTypes(ingredients []Ingredient, comps []Composition) (map[string]string, error) {
	// Stage 1: Validate
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}
	if len(comps) == 0 {
		return nil, ErrNoCompositions
	}

	// Stage 2: Prepare — ingredient lookup by name (first occurrence wins on
	// duplicate names; names are unique by contract).
	byName := make(map[string]Ingredient, len(ingredients))
	for _, ing := range ingredients {
		if _, seen := byName[ing.Name]; !seen {
			byName[ing.Name] = ing
		}
	}

	// Inner join + filters, preserving composition input order.
	rows := make([]joinedRow, 0, len(comps))
	for _, cmp := range comps {
		ing, ok := byName[cmp.IngredientName]
		if !ok {
			continue // unmatched ingredient: silent inner-join drop
		}
		if ing.Type == "" {
			continue // missing type: silent drop
		}
		if ing.GeneralizedType != GeneralizedAlcoholic {
			continue // non-alcoholic ingredients never become primary
		}
		rows = append(rows, joinedRow{
			cocktail: cmp.CocktailName,
			typ:      ing.Type,
			volume:   volumeOrDefault(cmp),
		})
	}

	// Stage 3: Execute — stable (cocktail asc, volume desc) sort, then the
	// first row per cocktail is its primary alcohol type.
	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].cocktail != rows[b].cocktail {
			return rows[a].cocktail < rows[b].cocktail
		}

		return rows[a].volume > rows[b].volume
	})

	primary := make(map[string]string)
	for _, row := range rows {
		if _, seen := primary[row.cocktail]; !seen {
			primary[row.cocktail] = row.typ
		}
	}

	return primary, nil
}
