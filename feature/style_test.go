package feature_test

import (
	"testing"

	"github.com/katalvlaran/mixcluster/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStyleEncoder_FitTransform verifies one indicator per attribute block,
// stable column naming, and row order following the input.
func TestStyleEncoder_FitTransform(t *testing.T) {
	cocktails := []feature.Cocktail{
		{Name: "Negroni", Glass: "Rocks", PrepMethod: "Stirred", Strength: "Strong"},
		{Name: "Daiquiri", Glass: "Coupe", PrepMethod: "Shaken", Strength: "Medium"},
	}

	var enc feature.StyleEncoder
	require.NoError(t, enc.Fit(cocktails))

	cols, err := enc.ColumnIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"glass=Coupe", "glass=Rocks",
		"prep_method=Shaken", "prep_method=Stirred",
		"strength=Medium", "strength=Strong",
	}, cols, "levels sorted within fixed attribute blocks")

	f, err := enc.Transform(cocktails)
	require.NoError(t, err)
	assert.Equal(t, []string{"Negroni", "Daiquiri"}, f.RowIDs(), "rows keep input order")

	// Each row carries exactly one indicator per attribute block.
	one := func(row, col string) float64 {
		v, atErr := f.AtID(row, col)
		require.NoError(t, atErr)

		return v
	}
	assert.Equal(t, 1.0, one("Negroni", "glass=Rocks"))
	assert.Equal(t, 0.0, one("Negroni", "glass=Coupe"))
	assert.Equal(t, 1.0, one("Negroni", "prep_method=Stirred"))
	assert.Equal(t, 1.0, one("Negroni", "strength=Strong"))
	assert.Equal(t, 1.0, one("Daiquiri", "glass=Coupe"))
	assert.Equal(t, 1.0, one("Daiquiri", "prep_method=Shaken"))
	assert.Equal(t, 1.0, one("Daiquiri", "strength=Medium"))
}

// TestStyleEncoder_UnknownLevelIsZeroBlock verifies that a level unseen at
// fit time encodes as an all-zero attribute block, never an error.
func TestStyleEncoder_UnknownLevelIsZeroBlock(t *testing.T) {
	var enc feature.StyleEncoder
	require.NoError(t, enc.Fit([]feature.Cocktail{
		{Name: "Negroni", Glass: "Rocks", PrepMethod: "Stirred", Strength: "Strong"},
	}))

	f, err := enc.Transform([]feature.Cocktail{
		{Name: "Hurricane", Glass: "Tiki", PrepMethod: "Stirred", Strength: "Strong"},
	})
	require.NoError(t, err, "unknown levels must not fail the transform")

	v, err := f.AtID("Hurricane", "glass=Rocks")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "the whole glass block stays zero for the unseen level")

	v, err = f.AtID("Hurricane", "prep_method=Stirred")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "known attributes still encode normally")
}

// TestStyleEncoder_EmptyStringIsALevel verifies that a missing category
// upstream (empty string) is a learnable level like any other.
func TestStyleEncoder_EmptyStringIsALevel(t *testing.T) {
	cocktails := []feature.Cocktail{
		{Name: "Mystery", Glass: "", PrepMethod: "Shaken", Strength: "Light"},
	}

	f, err := feature.BuildStyleMatrix(cocktails)
	require.NoError(t, err)

	v, err := f.AtID("Mystery", "glass=")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestStyleEncoder_NotFittedAndEmpty covers ErrNotFitted and the empty-input
// sentinels on both phases.
func TestStyleEncoder_NotFittedAndEmpty(t *testing.T) {
	var enc feature.StyleEncoder

	_, err := enc.ColumnIDs()
	assert.ErrorIs(t, err, feature.ErrNotFitted)
	_, err = enc.Transform([]feature.Cocktail{{Name: "Negroni"}})
	assert.ErrorIs(t, err, feature.ErrNotFitted)

	assert.ErrorIs(t, enc.Fit(nil), feature.ErrNoCocktails)

	require.NoError(t, enc.Fit([]feature.Cocktail{{Name: "Negroni"}}))
	_, err = enc.Transform(nil)
	assert.ErrorIs(t, err, feature.ErrNoCocktails)
}
