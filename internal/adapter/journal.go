package adapter

import (
	"fmt"

	"github.com/bbarker/easytest/internal/model"
	"github.com/bbarker/easytest/pkg/easytest"
	"github.com/bbarker/easytest/pkg/spill"
)

// Journal persists per-leaf results of a run so `easytest view` can
// re-render the report without executing anything.
type Journal interface {
	Append(result easytest.Result) error
	Path() model.Path
	Close() error
}

type localJournal struct {
	log spill.Spill[model.Record]
}

// NewJournal opens a fresh journal under dir.
func NewJournal(dir model.Path) (Journal, error) {
	log, err := spill.New[model.Record](string(dir))
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return &localJournal{log: log}, nil
}

func (j *localJournal) Append(result easytest.Result) error {
	return j.log.Append(RecordFromResult(result))
}

func (j *localJournal) Path() model.Path {
	return model.Path(j.log.Path())
}

func (j *localJournal) Close() error {
	return j.log.Close()
}

// ReadJournal loads all records from a journal file in execution order.
func ReadJournal(path model.Path) ([]model.Record, error) {
	log, err := spill.Open[model.Record](string(path))
	if err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, log.Len())
	err = log.Range(func(_ uint64, record model.Record) error {
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	return records, nil
}

// RecordFromResult flattens a Result into its journaled form.
func RecordFromResult(r easytest.Result) model.Record {
	record := model.Record{
		Name:     r.Name,
		Status:   r.Status.String(),
		Trials:   r.Trials,
		Discards: r.Discards,
		Message:  r.Message,
		Notes:    r.Notes,
		Seed:     r.Seed.String(),
	}
	if r.HasCounterexample {
		record.Counterexample = fmt.Sprintf("%v", r.Counterexample)
	}
	return record
}
