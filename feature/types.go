package feature

import "errors"

// DefaultMissingVolume is substituted when a composition row is present but
// its volume is unmeasured (nil). The value is intentionally a small positive
// epsilon, not zero: zero is reserved for "ingredient absent from cocktail".
const DefaultMissingVolume = 0.01

// GeneralizedAlcoholic is the generalized_type value that marks an
// ingredient as alcoholic for primary-type derivation.
const GeneralizedAlcoholic = "Alcoholic"

var (
	// ErrNoCompositions is returned when a builder receives zero composition rows.
	ErrNoCompositions = errors.New("feature: no composition records")

	// ErrNoCocktails is returned when a builder receives zero cocktail rows.
	ErrNoCocktails = errors.New("feature: no cocktail records")

	// ErrNoIngredients is returned when a builder receives zero ingredient rows.
	ErrNoIngredients = errors.New("feature: no ingredient records")

	// ErrNotFitted is returned by StyleEncoder.Transform before Fit was called.
	ErrNotFitted = errors.New("feature: encoder not fitted")
)

// Cocktail is one row of the cocktails table. Immutable input.
// ABV is optional; a nil pointer means the value is unknown.
type Cocktail struct {
	Name       string   // unique identity
	Glass      string   // serving glass (categorical)
	PrepMethod string   // preparation method (categorical)
	Strength   string   // strength class (categorical)
	ABV        *float64 // alcohol by volume, often missing upstream
}

// Ingredient is one row of the ingredients table. Immutable input.
type Ingredient struct {
	Name            string // unique identity
	Type            string // spirit kind, e.g. "Gin" (categorical)
	GeneralizedType string // "Alcoholic" / "Non-alcoholic"
}

// Composition is one row of the many-to-many join table between cocktails
// and ingredients. VolumeOz is optional; nil means the ingredient is present
// but its volume was not measured (see DefaultMissingVolume).
type Composition struct {
	CocktailName   string
	IngredientName string
	VolumeOz       *float64
}

// volumeOrDefault resolves the effective volume of a composition row:
// the measured value, or DefaultMissingVolume when unmeasured.
func volumeOrDefault(c Composition) float64 {
	if c.VolumeOz == nil {
		return DefaultMissingVolume
	}

	return *c.VolumeOz
}
