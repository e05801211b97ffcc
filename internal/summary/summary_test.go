// ABOUTME: Tests for the summary analyzer.
// ABOUTME: Covers tie detection, first-seen tie breaking and top-N selection.

package summary

import (
	"testing"

	"github.com/harper/wordcloud/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMostFrequentTieReturnsFirstSeen(t *testing.T) {
	entries := []models.FrequencyEntry{
		{Word: "a", Count: 2},
		{Word: "b", Count: 2},
		{Word: "c", Count: 1},
	}

	got := MostFrequent(entries)

	require.NotNil(t, got)
	assert.Equal(t, models.MostFrequent{Word: "a", Count: 2, IsTie: true}, *got)
}

func TestMostFrequentIsNotAlphabetical(t *testing.T) {
	entries := []models.FrequencyEntry{
		{Word: "zebra", Count: 1},
		{Word: "yak", Count: 4},
		{Word: "ant", Count: 4},
	}

	got := MostFrequent(entries)

	require.NotNil(t, got)
	assert.Equal(t, "yak", got.Word)
	assert.True(t, got.IsTie)
}

func TestMostFrequentSingleWinner(t *testing.T) {
	entries := []models.FrequencyEntry{
		{Word: "a", Count: 1},
		{Word: "b", Count: 5},
		{Word: "c", Count: 2},
	}

	got := MostFrequent(entries)

	require.NotNil(t, got)
	assert.Equal(t, models.MostFrequent{Word: "b", Count: 5}, *got)
}

func TestMostFrequentEmpty(t *testing.T) {
	assert.Nil(t, MostFrequent(nil))
	assert.Nil(t, MostFrequent([]models.FrequencyEntry{}))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, `Most frequent word: "cat" (3 times)`, Describe(&models.MostFrequent{Word: "cat", Count: 3}))
	assert.Equal(t, `Most frequent word: "a" (1 time) (tie)`, Describe(&models.MostFrequent{Word: "a", Count: 1, IsTie: true}))
	assert.Empty(t, Describe(nil))
}

func TestTop(t *testing.T) {
	entries := []models.FrequencyEntry{
		{Word: "a", Count: 1},
		{Word: "b", Count: 4},
		{Word: "c", Count: 2},
		{Word: "d", Count: 4},
	}

	got := Top(entries, 3)

	assert.Equal(t, []models.FrequencyEntry{
		{Word: "b", Count: 4},
		{Word: "d", Count: 4},
		{Word: "c", Count: 2},
	}, got)
	assert.Len(t, Top(entries, 10), 4)
	assert.Empty(t, Top(nil, DefaultTopN))
}
