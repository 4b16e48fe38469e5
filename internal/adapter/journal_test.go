package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/bbarker/easytest/internal/model"
	"github.com/bbarker/easytest/pkg/easytest"
)

func TestJournalRoundTrip(t *testing.T) {
	journal, err := NewJournal(m.Path(t.TempDir()))
	require.NoError(t, err)

	results := []easytest.Result{
		{Name: "a", Status: easytest.StatusPassed, Trials: 1, Seed: easytest.NewSeed(1)},
		{
			Name:              "b",
			Status:            easytest.StatusFailed,
			Trials:            3,
			Message:           "falsified",
			Notes:             []string{"hint"},
			Seed:              easytest.NewSeed(2),
			Counterexample:    -5,
			HasCounterexample: true,
		},
	}

	for _, result := range results {
		require.NoError(t, journal.Append(result))
	}

	path := journal.Path()
	require.NoError(t, journal.Close())

	records, err := ReadJournal(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "a", records[0].Name)
	assert.Equal(t, "passed", records[0].Status)
	assert.Equal(t, easytest.NewSeed(1).String(), records[0].Seed)

	assert.Equal(t, "failed", records[1].Status)
	assert.Equal(t, "falsified", records[1].Message)
	assert.Equal(t, []string{"hint"}, records[1].Notes)
	assert.Equal(t, "-5", records[1].Counterexample)
}

func TestRecordFromResultOmitsAbsentCounterexample(t *testing.T) {
	record := RecordFromResult(easytest.Result{Name: "x", Status: easytest.StatusPassed})
	assert.Empty(t, record.Counterexample)
}

func TestReadJournalMissingFile(t *testing.T) {
	_, err := ReadJournal(m.Path("/nonexistent/journal.gob"))
	assert.Error(t, err)
}
