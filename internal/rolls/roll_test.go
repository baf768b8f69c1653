package rolls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SkipsMalformedTuples(t *testing.T) {
	raw := []any{
		[]any{100.0, 0.0, 5.0},
		"not a tuple",
		[]any{120.0, 0.0},
		[]any{130.0, 0.0, 0.0},
		[]any{140.0, 0.0, "3"},
		nil,
		[]any{150.0, 7.0, 2.0, "extra"},
	}

	got := Parse(raw)

	assert.Equal(t, []Roll{
		{Width: 100, Aux: 0, Quantity: 5},
		{Width: 150, Aux: 7, Quantity: 2},
	}, got)
}

func TestParse_FloatMatrix(t *testing.T) {
	got := Parse([][]float64{{100, 1, 2}, {200, 1}, {300, 1, -1}})

	assert.Equal(t, []Roll{{Width: 100, Aux: 1, Quantity: 2}}, got)
}

func TestParse_UnknownShape(t *testing.T) {
	assert.Nil(t, Parse(nil))
	assert.Nil(t, Parse(42.0))
	assert.Nil(t, Parse(map[string]any{}))
}

func TestParseJSON_BareArray(t *testing.T) {
	got, maxWidth, err := ParseJSON([]byte(`[[100, 0, 3], [250, 0, 2], [90, 0]]`))

	require.NoError(t, err)
	assert.Zero(t, maxWidth)
	assert.Equal(t, []Roll{{Width: 100, Quantity: 3}, {Width: 250, Quantity: 2}}, got)
}

func TestParseJSON_PropsObject(t *testing.T) {
	got, maxWidth, err := ParseJSON([]byte(`{"remainingRolls": [[100, 4, 3]], "maxWidth": 300}`))

	require.NoError(t, err)
	assert.Equal(t, 300.0, maxWidth)
	assert.Equal(t, []Roll{{Width: 100, Aux: 4, Quantity: 3}}, got)
}

func TestParseJSON_PropsWithoutRolls(t *testing.T) {
	got, _, err := ParseJSON([]byte(`{"maxWidth": 300}`))

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseJSON_FractionalNumbers(t *testing.T) {
	got, maxWidth, err := ParseJSON([]byte(`{"remainingRolls": [[99.5, 0, 1.0e0]], "maxWidth": 312.5}`))

	require.NoError(t, err)
	assert.Equal(t, 312.5, maxWidth)
	assert.Equal(t, []Roll{{Width: 99.5, Quantity: 1}}, got)
}

func TestParseJSON_TrailingData(t *testing.T) {
	_, _, err := ParseJSON([]byte(`[[100, 0, 3]] [[1, 0, 1]]`))

	assert.Error(t, err)
}

func TestParseJSON_InvalidDocument(t *testing.T) {
	_, _, err := ParseJSON([]byte(`[[100, 0, 3]`))

	assert.Error(t, err)
}

func TestFromFinalTrim(t *testing.T) {
	matrix := [][]float64{
		{250, 1, 1, 1, 11, 2},
		{100.7, 1, 1, 1, 10.2, 3.9},
		{180, 1, 1, 1, 12, 0},
		{90, 1, 1},
		{140, 1, 1, 1, 13, 0.5},
	}

	got := FromFinalTrim(matrix)

	assert.Equal(t, []Roll{
		{Width: 100, Aux: 10, Quantity: 3},
		{Width: 140, Aux: 13, Quantity: 0},
		{Width: 250, Aux: 11, Quantity: 2},
	}, got)
}

func TestFromFinalTrim_FractionalLeftoverIsListedButNotPaired(t *testing.T) {
	got := FromFinalTrim([][]float64{{140, 1, 1, 1, 13, 0.5}})

	require.Equal(t, []Roll{{Width: 140, Aux: 13, Quantity: 0}}, got)
	assert.Empty(t, Compute(got, 312))
}

func TestFromFinalTrim_Empty(t *testing.T) {
	assert.Empty(t, FromFinalTrim(nil))
}
