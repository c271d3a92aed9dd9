package species

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestCatalogInvariants(t *testing.T) {
	for _, s := range All() {
		t.Run(s.ID, func(t *testing.T) {
			assert.LessOrEqual(t, s.OptimalTemp.Low, s.OptimalTemp.High)
			assert.LessOrEqual(t, s.AcceptableTemp.Low, s.AcceptableTemp.High)
			assert.GreaterOrEqual(t, s.OptimalTemp.Low, s.AcceptableTemp.Low,
				"optimal range must sit inside acceptable range")
			assert.LessOrEqual(t, s.OptimalTemp.High, s.AcceptableTemp.High,
				"optimal range must sit inside acceptable range")
			assert.NotEmpty(t, s.Name)
		})
	}
}

func TestGet(t *testing.T) {
	sp, ok := Get("catfish")
	require.True(t, ok)
	assert.Equal(t, "Catfish", sp.Name)
	assert.Equal(t, TempRange{70, 85}, sp.OptimalTemp)
	assert.Equal(t, TempRange{65, 90}, sp.AcceptableTemp)
	assert.True(t, sp.PrefersOvercast)

	_, ok = Get("golden-trout")
	assert.False(t, ok)
}

func TestDefaultSpeciesExists(t *testing.T) {
	sp, ok := Get(DefaultID)
	require.True(t, ok)
	assert.Equal(t, "Largemouth Bass", sp.Name)
}

func TestAllSortedAndComplete(t *testing.T) {
	all := All()
	require.Len(t, all, 9)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}
}

func TestTempRangeContains(t *testing.T) {
	r := TempRange{60, 75}
	assert.True(t, r.Contains(60), "low bound is inclusive")
	assert.True(t, r.Contains(75), "high bound is inclusive")
	assert.True(t, r.Contains(70))
	assert.False(t, r.Contains(59.9))
	assert.False(t, r.Contains(75.1))
}
