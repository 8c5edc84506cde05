package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupSize(t *testing.T) {
	single := Group{Base: "B", Keep: Candidate{Base: "B"}}
	assert.Equal(t, 1, single.Size())

	multi := Group{
		Base:   "A",
		Keep:   Candidate{Base: "A"},
		Delete: []Candidate{{Base: "A"}, {Base: "A"}},
	}
	assert.Equal(t, 3, multi.Size())
}

func TestReportDuplicates(t *testing.T) {
	report := &Report{
		Groups: []Group{
			{Base: "A", Delete: []Candidate{{}, {}}},
			{Base: "B"},
			{Base: "C", Delete: []Candidate{{}}},
		},
	}

	assert.Equal(t, 3, report.Duplicates())
	assert.True(t, report.HasDuplicates())

	empty := &Report{Groups: []Group{{Base: "A"}}}
	assert.Equal(t, 0, empty.Duplicates())
	assert.False(t, empty.HasDuplicates())
}

func TestOutcomeSucceeded(t *testing.T) {
	ok := &Outcome{Deleted: []DeletionResult{{}}}
	assert.True(t, ok.Succeeded())

	failed := &Outcome{Failed: []DeletionResult{{Err: errors.New("permission denied")}}}
	assert.False(t, failed.Succeeded())
}
