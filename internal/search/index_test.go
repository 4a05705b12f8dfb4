package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholgate/shelfsearch/pkg/types"
)

func genesisRecords() []types.ResourceRecord {
	// Already in default title order.
	return []types.ResourceRecord{
		{ID: "1", Title: "Genesis", Author: "Moses"},
		{ID: "2", Title: "genesis commentary", Author: "Smith", Abbrev: "GenC"},
		{ID: "3", Title: "Psalms", Author: "David"},
	}
}

func titles(records []types.ResourceRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func TestSearch_EmptyQueryReturnsDefaultOrder(t *testing.T) {
	ix := NewIndex(genesisRecords(), DefaultOptions())

	got := ix.Search("", 0)
	assert.Equal(t, []string{"Genesis", "genesis commentary", "Psalms"}, titles(got))

	got = ix.Search("   \t ", 0)
	assert.Len(t, got, 3)
}

func TestSearch_EmptyQueryCappedAtPageSize(t *testing.T) {
	var records []types.ResourceRecord
	for i := 0; i < 60; i++ {
		records = append(records, types.ResourceRecord{
			ID:    fmt.Sprintf("%03d", i),
			Title: fmt.Sprintf("Volume %03d", i),
		})
	}
	ix := NewIndex(records, DefaultOptions())

	assert.Len(t, ix.Search("", 0), DefaultPageSize)
	assert.Len(t, ix.Search("", 5), 5)
	assert.Len(t, ix.Search("", 1000), DefaultPageSize)
}

func TestSearch_GenesisScenario(t *testing.T) {
	ix := NewIndex(genesisRecords(), DefaultOptions())

	got := ix.Search("genesis", 0)
	require.Len(t, got, 2)
	// Equal match quality, so the collated title order decides: the
	// prefix "Genesis" sorts before "genesis commentary".
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestSearch_NoMatchReturnsEmpty(t *testing.T) {
	ix := NewIndex(genesisRecords(), DefaultOptions())
	assert.Empty(t, ix.Search("xylophone", 0))
}

func TestSearch_EmptyIndex(t *testing.T) {
	ix := NewIndex(nil, DefaultOptions())
	assert.Empty(t, ix.Search("genesis", 0))
	assert.Empty(t, ix.Search("", 0))
	assert.Zero(t, ix.Len())
}

func TestSearch_AuthorFieldMatches(t *testing.T) {
	ix := NewIndex(genesisRecords(), DefaultOptions())

	got := ix.Search("moses", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "Genesis", got[0].Title)
}

func TestSearch_TitleMatchOutranksIDMatch(t *testing.T) {
	records := []types.ResourceRecord{
		{ID: "9", Title: "42 Stories"},
		{ID: "42", Title: "Genesis"},
	}
	ix := NewIndex(records, DefaultOptions())

	got := ix.Search("42", 0)
	require.Len(t, got, 2)
	assert.Equal(t, "42 Stories", got[0].Title)
	assert.Equal(t, "Genesis", got[1].Title)
}

func TestSearch_ShortTokenMatchesLongTitle(t *testing.T) {
	// The per-keystroke query shape: a two-rune prefix against a longer
	// title must clear the default threshold despite the length gap.
	ix := NewIndex(genesisRecords(), DefaultOptions())

	got := ix.Search("ps", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "Psalms", got[0].Title)

	got = ix.Search("gen", 0)
	require.Len(t, got, 2)
	assert.Equal(t, "Genesis", got[0].Title)
}

func TestSearch_AllTokensMustMatch(t *testing.T) {
	ix := NewIndex(genesisRecords(), DefaultOptions())

	got := ix.Search("genesis moses", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestSearch_ShortTokensDropped(t *testing.T) {
	ix := NewIndex(genesisRecords(), DefaultOptions())

	// A lone one-rune token behaves like an empty query.
	assert.Equal(t, 3, len(ix.Search("g", 0)))

	// Short tokens inside a longer query are ignored, not fatal.
	got := ix.Search("x genesis", 0)
	require.Len(t, got, 2)
}

func TestSearch_ZeroThresholdAdmitsOnlyPerfectMatches(t *testing.T) {
	ix := NewIndex(genesisRecords(), Options{Threshold: 0})

	assert.Len(t, ix.Search("genesis", 0), 2)
	// A gappy approximation no longer clears the bar.
	assert.Empty(t, ix.Search("gnsis", 0))
}

func TestSearch_ResultsAreCopies(t *testing.T) {
	ix := NewIndex(genesisRecords(), DefaultOptions())

	first := ix.Search("genesis", 0)
	require.NotEmpty(t, first)
	first[0].Title = "mutated"

	second := ix.Search("genesis", 0)
	assert.Equal(t, "Genesis", second[0].Title)
}

func TestTokenize(t *testing.T) {
	assert.Nil(t, tokenize(""))
	assert.Nil(t, tokenize("  a  b "))
	assert.Equal(t, []string{"genesis"}, tokenize("  GENESIS "))
	assert.Equal(t, []string{"ab", "cd"}, tokenize("ab x cd"))
}
