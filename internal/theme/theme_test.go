package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
	}{
		{"light", Light},
		{"dark", Dark},
		{"minimal-dark", MinimalDark},
		{"dark-minimal", MinimalDark},
		{" Dark ", Dark},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := Parse("solarized")
	assert.ErrorIs(t, err, ErrUnknownTheme)
	_, err = Parse("")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestNext_Cycles(t *testing.T) {
	assert.Equal(t, Dark, Light.Next())
	assert.Equal(t, MinimalDark, Dark.Next())
	assert.Equal(t, Light, MinimalDark.Next())
	assert.Equal(t, Light, Theme("bogus").Next())

	th := Light
	for range All {
		th = th.Next()
	}
	assert.Equal(t, Light, th)
}

func TestClassName(t *testing.T) {
	assert.Equal(t, "light-theme", Light.ClassName())
	assert.Equal(t, "dark-theme", Dark.ClassName())
	assert.Equal(t, "minimal-dark-theme", MinimalDark.ClassName())
}

func TestIsDark(t *testing.T) {
	assert.False(t, Light.IsDark())
	assert.True(t, Dark.IsDark())
	assert.True(t, MinimalDark.IsDark())
}
