package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/quizbank/internal/database"
)

func newTestStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestImportCSVCountsBadRowsWithoutAborting(t *testing.T) {
	store := newTestStore(t)

	csvData := strings.Join([]string{
		"question,option a,option b,option c,option d,correct,explanation",
		`"What is the capital of France?",Paris,London,Berlin,Madrid,A,"It has been since 508."`,
		`"Broken row missing options",only one option`,
	}, "\n")

	config := DefaultConfig("bank.csv")
	config.Category = "geography"

	result, err := ImportCSV(store, strings.NewReader(csvData), config)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Errors)
	assert.Len(t, result.RowErrors, 1)

	all, err := store.Questions.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "What is the capital of France?", all[0].Text)
	assert.Equal(t, "A", all[0].CorrectOption)
	assert.Equal(t, "geography", all[0].Category)
	assert.Equal(t, "It has been since 508.", all[0].Explanation)
}

func TestImportCSVSkipsHeaderAndBlankLines(t *testing.T) {
	store := newTestStore(t)

	csvData := "question,a,b,c,d,correct\n" +
		"Q1,one,two,three,four,B\n" +
		",,,,,\n" +
		"Q2,one,two,three,four,d\n"

	result, err := ImportCSV(store, strings.NewReader(csvData), DefaultConfig("bank.csv"))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 0, result.Errors)

	all, err := store.Questions.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Correct letters are normalized to upper case.
	assert.Equal(t, "D", all[1].CorrectOption)
}

func TestImportCSVKeepHeaderTreatsFirstRowAsData(t *testing.T) {
	store := newTestStore(t)

	config := DefaultConfig("bank.csv")
	config.SkipHeader = false

	result, err := ImportCSV(store, strings.NewReader("Q1,one,two,three,four,A\n"), config)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
}
