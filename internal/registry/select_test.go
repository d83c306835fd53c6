package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/smellhound/internal/registry"
)

func patternCodes(entries []registry.Entry[registry.Pattern]) []string {
	codes := make([]string, 0, len(entries))
	for _, entry := range entries {
		codes = append(codes, entry.Code)
	}

	return codes
}

func metricCodes(entries []registry.Entry[registry.Metric]) []string {
	codes := make([]string, 0, len(entries))
	for _, entry := range entries {
		codes = append(codes, entry.Code)
	}

	return codes
}

func TestSelectPatterns_DefaultExcludesDisabledCodes(t *testing.T) {
	t.Parallel()

	reg, err := registry.New()
	require.NoError(t, err)

	selected, err := reg.SelectPatterns(registry.Request{})
	require.NoError(t, err)

	codes := patternCodes(selected)
	assert.Len(t, codes, 34)
	assert.NotContains(t, codes, "P9")
	assert.Equal(t, "P1", codes[0])
}

func TestSelectMetrics_DefaultExcludesDisabledCodes(t *testing.T) {
	t.Parallel()

	reg, err := registry.New()
	require.NoError(t, err)

	selected, err := reg.SelectMetrics(registry.Request{})
	require.NoError(t, err)

	codes := metricCodes(selected)
	assert.Equal(t, []string{"M2", "M4", "M6", "M9", "M10", "M11"}, codes)
}

func TestSelectPatterns_OnlyOverridesExclusion(t *testing.T) {
	t.Parallel()

	reg, err := registry.New()
	require.NoError(t, err)

	selected, err := reg.SelectPatterns(registry.Request{Only: []string{"P9"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"P9"}, patternCodes(selected))
}

func TestSelectPatterns_OnlyKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	reg, err := registry.New()
	require.NoError(t, err)

	selected, err := reg.SelectPatterns(registry.Request{Only: []string{"P20_7", "P1", "P13"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"P1", "P13", "P20_7"}, patternCodes(selected))
}

func TestSelectPatterns_UnknownCodeFails(t *testing.T) {
	t.Parallel()

	reg, err := registry.New()
	require.NoError(t, err)

	_, err = reg.SelectPatterns(registry.Request{Only: []string{"P999"}})

	require.ErrorIs(t, err, registry.ErrUnknownCode)
	assert.Contains(t, err.Error(), "P999")
}

func TestSelectPatterns_UnknownWithoutCodeFails(t *testing.T) {
	t.Parallel()

	reg, err := registry.New()
	require.NoError(t, err)

	_, err = reg.SelectPatterns(registry.Request{Without: []string{"P999"}})

	require.ErrorIs(t, err, registry.ErrUnknownCode)
}

func TestSelectPatterns_WithoutNarrowsDefault(t *testing.T) {
	t.Parallel()

	reg, err := registry.New()
	require.NoError(t, err)

	selected, err := reg.SelectPatterns(registry.Request{Without: []string{"P1", "P2"}})
	require.NoError(t, err)

	codes := patternCodes(selected)
	assert.Len(t, codes, 32)
	assert.NotContains(t, codes, "P1")
	assert.NotContains(t, codes, "P2")
	assert.NotContains(t, codes, "P9")
}

func TestSelect_ConflictingRequestFails(t *testing.T) {
	t.Parallel()

	reg, err := registry.New()
	require.NoError(t, err)

	_, err = reg.SelectPatterns(registry.Request{Only: []string{"P1"}, Without: []string{"P2"}})

	require.ErrorIs(t, err, registry.ErrConflictingRequest)
}
