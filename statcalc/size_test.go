package statcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	t.Run("species name resolves to canonical height", func(t *testing.T) {
		meters, err := ParseSize("Vaporeon")
		require.NoError(t, err)
		assert.InDelta(t, 1.0, meters, 0.001)
	})

	t.Run("feet and inches with apostrophe", func(t *testing.T) {
		meters, err := ParseSize(`5'11"`)
		require.NoError(t, err)
		assert.InDelta(t, 1.8034, meters, 0.001)
	})

	t.Run("feet and inches with ft", func(t *testing.T) {
		meters, err := ParseSize("5 ft 11")
		require.NoError(t, err)
		assert.InDelta(t, 1.8034, meters, 0.001)
	})

	t.Run("bare feet", func(t *testing.T) {
		meters, err := ParseSize("6'")
		require.NoError(t, err)
		assert.InDelta(t, 1.8288, meters, 0.001)
	})

	t.Run("bare inches", func(t *testing.T) {
		meters, err := ParseSize(`71"`)
		require.NoError(t, err)
		assert.InDelta(t, 1.8034, meters, 0.001)
	})

	t.Run("meters with suffix", func(t *testing.T) {
		meters, err := ParseSize("1.8m")
		require.NoError(t, err)
		assert.InDelta(t, 1.8, meters, 0.001)
	})

	t.Run("bare meters", func(t *testing.T) {
		meters, err := ParseSize("0.9")
		require.NoError(t, err)
		assert.InDelta(t, 0.9, meters, 0.001)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := ParseSize("tall")
		assert.Error(t, err)

		_, err = ParseSize("")
		assert.Error(t, err)
	})
}

func TestFormatFeetInches(t *testing.T) {
	assert.Equal(t, `5'11"`, FormatFeetInches(1.8034))
	assert.Equal(t, `6'0"`, FormatFeetInches(1.8288))
	assert.Equal(t, `1'0"`, FormatFeetInches(0.3048))
}

func TestHeightPercentile(t *testing.T) {
	assert.InDelta(t, 0.5, HeightPercentile(1.0, 1.0), 0.001)
	assert.Greater(t, HeightPercentile(1.0, 1.3), 0.9)
	assert.Less(t, HeightPercentile(1.0, 0.7), 0.1)
	assert.Equal(t, 0.0, HeightPercentile(0, 1.0))
}

func TestRenderHeightCurve(t *testing.T) {
	png, err := RenderHeightCurve(1.0, 1.1)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])

	_, err = RenderHeightCurve(0, 1.0)
	assert.Error(t, err)
}
