package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/barrelgen/internal/foundation/errors"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"regular", Regular},
		{"RECURSIVE", Recursive},
		{"regular-subfolders", RegularSubfolders},
		{"Regular_Subfolders", RegularSubfolders},
		{"subfolders", RegularSubfolders},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseStrategy("flat")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	classified, ok := errors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, `unknown generation type "flat" (expected one of: recursive, regular, regular_subfolders, subfolders)`, classified.Message())
}

func TestStrategyLabel(t *testing.T) {
	assert.Equal(t, "regular_subfolders", RegularSubfolders.Label())
	assert.True(t, Recursive.Valid())
	assert.False(t, Strategy("FLAT").Valid())
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "written", Written("/x").Kind().String())
	assert.Equal(t, "/x", Written("/x").Path())
	assert.Equal(t, OutcomeEmpty, Empty().Kind())
	assert.Nil(t, Empty().Err())
	assert.Equal(t, "failed", Failed(assert.AnError).Kind().String())
}
