package palette_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixelcal/palette"
)

func TestFor(t *testing.T) {
	d := palette.For(palette.Dark)
	require.Equal(t, "#161b22", d.Empty())
	require.Equal(t, "#39d353", d.Level(4))
	require.Equal(t, "#0d1117", d.Background)

	l := palette.For(palette.Light)
	require.Equal(t, "#ebedf0", l.Empty())
	require.Equal(t, "#216e39", l.Level(4))
}

func TestLevel_Clamps(t *testing.T) {
	p := palette.For(palette.Light)
	require.Equal(t, p.Level(0), p.Level(-2))
	require.Equal(t, p.Level(4), p.Level(99))
}

func TestParseTheme(t *testing.T) {
	th, err := palette.ParseTheme("LIGHT")
	require.NoError(t, err)
	require.Equal(t, palette.Light, th)
	require.Equal(t, "light", th.String())

	th, err = palette.ParseTheme("")
	require.NoError(t, err)
	require.Equal(t, palette.Dark, th)

	_, err = palette.ParseTheme("sepia")
	require.ErrorIs(t, err, palette.ErrUnknownTheme)
}
