package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("01/01/2024")
	assert.Error(t, err)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 83.33, RoundWithTwoDecimalPlace(83.3333))
	assert.Equal(t, 0.67, RoundWithTwoDecimalPlace(0.666))
	assert.Equal(t, float64(0), RoundWithTwoDecimalPlace(math.NaN()))
	assert.Equal(t, float64(0), RoundWithTwoDecimalPlace(math.Inf(1)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float64(100), Clamp(120, 0, 100))
	assert.Equal(t, float64(0), Clamp(-5, 0, 100))
	assert.Equal(t, 42.5, Clamp(42.5, 0, 100))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, idLength)
	assert.NotEqual(t, first, second)
}
