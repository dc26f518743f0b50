package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"default data", "2, 4, 8, 16, 32", []int{2, 4, 8, 16, 32}},
		{"no spaces", "3,1,2", []int{3, 1, 2}},
		{"blank fields", " 1, ,2,,3, ", []int{1, 2, 3}},
		{"negative", "-5, 0, 5", []int{-5, 0, 5}},
		{"single", "42", []int{42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSequence(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSequenceErrors(t *testing.T) {
	_, err := ParseSequence("  , ,")
	assert.ErrorIs(t, err, ErrEmptySequence)

	_, err = ParseSequence("")
	assert.ErrorIs(t, err, ErrEmptySequence)

	_, err = ParseSequence("1, two, 3")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedValue)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "data", pe.Field)
	assert.Equal(t, 1, pe.Position)
	assert.Equal(t, "two", pe.Text)
	assert.Contains(t, err.Error(), `data[1] "two"`)
}

func TestParseTarget(t *testing.T) {
	v, err := ParseTarget(" 256 ")
	require.NoError(t, err)
	assert.Equal(t, 256, v)

	_, err = ParseTarget("   ")
	assert.ErrorIs(t, err, ErrEmptyTarget)

	_, err = ParseTarget("2.5")
	assert.ErrorIs(t, err, ErrMalformedValue)
	assert.Contains(t, err.Error(), `target "2.5"`)
}

func TestFormatSequence(t *testing.T) {
	assert.Equal(t, "1, 2, 3", FormatSequence([]int{1, 2, 3}))
	assert.Equal(t, "", FormatSequence(nil))

	back, err := ParseSequence(FormatSequence([]int{7, -1, 9}))
	require.NoError(t, err)
	assert.Equal(t, []int{7, -1, 9}, back)
}
