package glyph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixelcal/glyph"
)

const supportedSet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!?.,:-+=()"

// TestLookup_PixelCoversSupportedSet checks every supported rune resolves to a 3×5 glyph.
func TestLookup_PixelCoversSupportedSet(t *testing.T) {
	for _, r := range supportedSet {
		b, ok := glyph.Lookup(glyph.Pixel, r)
		require.Truef(t, ok, "missing glyph %q", r)
		require.Equalf(t, 3, b.Width(), "width of %q", r)
		require.Equalf(t, glyph.Height(), b.Height(), "height of %q", r)
		require.True(t, glyph.Supported(r))
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	upper, ok := glyph.Lookup(glyph.Pixel, 'Q')
	require.True(t, ok)
	lower, ok := glyph.Lookup(glyph.Pixel, 'q')
	require.True(t, ok)
	require.Equal(t, upper.String(), lower.String())
}

func TestLookup_Absent(t *testing.T) {
	for _, r := range []rune{' ', '@', '#', 'é', '\t', '_'} {
		_, ok := glyph.Lookup(glyph.Pixel, r)
		require.Falsef(t, ok, "rune %q should be absent", r)
	}
	require.True(t, glyph.Supported(' '), "space is in the supported set")
	require.False(t, glyph.Supported('@'))
	require.Equal(t, 0, glyph.Width(glyph.Pixel, '@'))

	_, ok := glyph.Lookup(glyph.Font(42), 'A')
	require.False(t, ok, "unknown font has no glyphs")
}

// TestLookup_A pins the canonical 'A' bitmap.
func TestLookup_A(t *testing.T) {
	b, ok := glyph.Lookup(glyph.Pixel, 'A')
	require.True(t, ok)
	require.Equal(t, ".#.\n#.#\n###\n#.#\n#.#", b.String())
	require.True(t, b.On(0, 1))
	require.False(t, b.On(0, 0))
	require.False(t, b.On(-1, 0), "outside reads as off")
	require.False(t, b.On(0, 3), "outside reads as off")
}

func TestSlim_OverridesAndFallback(t *testing.T) {
	require.Equal(t, 1, glyph.Width(glyph.Slim, 'i'))
	require.Equal(t, 2, glyph.Width(glyph.Slim, '1'))
	// No slim override for 'W': falls back to Pixel.
	slimW, ok := glyph.Lookup(glyph.Slim, 'W')
	require.True(t, ok)
	pixW, _ := glyph.Lookup(glyph.Pixel, 'W')
	require.Equal(t, pixW.String(), slimW.String())
}

func TestBold_Dilation(t *testing.T) {
	b, ok := glyph.Lookup(glyph.Bold, '-')
	require.True(t, ok)
	require.Equal(t, "....\n....\n####\n....\n....", b.String())

	for _, r := range supportedSet {
		require.Equal(t, glyph.Width(glyph.Pixel, r)+1, glyph.Width(glyph.Bold, r))
	}
}

func TestBitmap_Scale(t *testing.T) {
	b, _ := glyph.Lookup(glyph.Pixel, '.')
	s := b.Scale(2)
	require.Equal(t, 6, s.Width())
	require.Equal(t, 10, s.Height())
	require.True(t, s.On(8, 2))
	require.True(t, s.On(9, 3))
	require.False(t, s.On(7, 2))
	require.Equal(t, b.String(), b.Scale(1).String(), "scale 1 is identity")
	require.Equal(t, b.String(), b.Scale(0).String(), "scale <1 is identity")
}

func TestBitmap_RowsIsCopy(t *testing.T) {
	b, _ := glyph.Lookup(glyph.Pixel, 'A')
	rows := b.Rows()
	rows[0][0] = true
	require.False(t, b.On(0, 0), "mutating Rows() must not leak into the atlas")
}

func TestMatchIcon(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		token string
		ok    bool
	}{
		{"NodeUpper", ":NODE: rocks", glyph.TokenNode, true},
		{"NodeLower", ":node:", glyph.TokenNode, true},
		{"Python", ":py:HI", glyph.TokenPython, true},
		{"Partial", ":NOD", "", false},
		{"NotAtStart", "A:PY:", "", false},
		{"Empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ic, ok := glyph.MatchIcon(tc.in)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.Equal(t, tc.token, ic.Token)
				require.Equal(t, 5, ic.Bitmap.Width())
			}
		})
	}
}

func TestIcons_Spans(t *testing.T) {
	ics := glyph.Icons()
	require.Len(t, ics, 2)
	require.Equal(t, 6, ics[0].Span())
	require.Equal(t, 4, ics[1].Span())
}

func TestParseFont(t *testing.T) {
	cases := []struct {
		in   string
		want glyph.Font
		err  error
	}{
		{"", glyph.Pixel, nil},
		{"pixel", glyph.Pixel, nil},
		{"SLIM", glyph.Slim, nil},
		{" bold ", glyph.Bold, nil},
		{"gothic", glyph.Pixel, glyph.ErrUnknownFont},
	}
	for _, tc := range cases {
		got, err := glyph.ParseFont(tc.in)
		if tc.err != nil {
			require.True(t, errors.Is(err, tc.err))
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
		require.True(t, got.Valid())
	}
	require.Equal(t, "bold", glyph.Bold.String())
	require.Equal(t, "Font(9)", glyph.Font(9).String())
}
