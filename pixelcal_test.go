package pixelcal_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixelcal"
	"github.com/katalvlaran/pixelcal/compose"
	"github.com/katalvlaran/pixelcal/grid"
	"github.com/katalvlaran/pixelcal/render"
	"github.com/katalvlaran/pixelcal/schedule"
	"github.com/katalvlaran/pixelcal/validate"
)

func TestValidateMessage_Scenarios(t *testing.T) {
	require.True(t, pixelcal.ValidateMessage("HELLO WORLD").Valid)
	require.Equal(t, validate.ReasonTooLong,
		pixelcal.ValidateMessage("TOO LONG MESSAGE THAT EXCEEDS THE THIRTY CHARACTER LIMIT").Reason)
	require.Equal(t, validate.ReasonCharset, pixelcal.ValidateMessage("SPECIAL @#$%").Reason)
	require.Equal(t, validate.ReasonEmpty, pixelcal.ValidateMessage("").Reason)
}

func TestRenderGrid_LetterA(t *testing.T) {
	g := pixelcal.RenderGrid("A")
	require.Equal(t, 52, g.Width())
	require.Equal(t, 7, g.Height())

	want := [][]int{
		{0, 4, 0},
		{4, 0, 4},
		{4, 4, 4},
		{4, 0, 4},
		{4, 0, 4},
	}
	for row, cells := range want {
		for col, v := range cells {
			require.Equal(t, v, g.At(col, row), "col %d row %d", col, row)
		}
	}
	for col := 3; col < g.Width(); col++ {
		require.Zero(t, g.ColumnSum(col), "col %d", col)
	}
	require.Equal(t, 4*grid.On, g.ColumnSum(0))
}

func TestRenderGrid_Empty(t *testing.T) {
	g := pixelcal.RenderGrid("")
	require.Zero(t, g.Sum())
	require.Equal(t, render.DefaultMaxWidth, g.Width())
}

func TestMeasureWidth_AgreesWithRenderer(t *testing.T) {
	for _, msg := range []string{"A", "HELLO WORLD", "PUSH :NODE:", "a b", "?!", "#@"} {
		res := render.Layout(msg, render.WithMaxWidth(1000))
		require.Equal(t, res.Cursor, pixelcal.MeasureWidth(msg)+1, msg)
	}
}

func TestGridToSchedule_TotalsMatchGrid(t *testing.T) {
	g := pixelcal.RenderGrid("HELLO WORLD")
	start := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	events, err := pixelcal.GridToSchedule(g, schedule.WithStart(start), schedule.WithMessage("HELLO WORLD"))
	require.NoError(t, err)

	totals := schedule.Totals(events)
	sum := 0
	for _, v := range totals {
		sum += v
	}
	require.Equal(t, g.Sum(), sum)

	_, err = pixelcal.GridToSchedule(nil)
	require.ErrorIs(t, err, schedule.ErrNilGrid)
}

func TestComposeGraphic(t *testing.T) {
	g := pixelcal.RenderGrid("HI")
	a, err := pixelcal.ComposeGraphic(g)
	require.NoError(t, err)
	b, err := pixelcal.ComposeGraphic(g)
	require.NoError(t, err)
	require.Equal(t, a, b)

	_, err = pixelcal.ComposeGraphic(nil)
	require.ErrorIs(t, err, compose.ErrNilGrid)
	require.Equal(t, "image/svg+xml", pixelcal.ContentType)
}

func TestBanner_ScrollsLongMessages(t *testing.T) {
	short, err := pixelcal.Banner("HI")
	require.NoError(t, err)
	require.NotContains(t, short, "animateTransform")

	long, err := pixelcal.Banner("CHARGING AT HOME TONIGHT")
	require.NoError(t, err)
	require.Contains(t, long, "animateTransform")
	require.Contains(t, long, "CHARGING AT HOME TONIGHT")

	static, err := pixelcal.Banner("CHARGING AT HOME TONIGHT", compose.WithScroll(false))
	require.NoError(t, err)
	require.NotContains(t, static, "animateTransform")
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	pixelcal.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { pixelcal.SetLogger(nil) })

	g := pixelcal.RenderGrid(strings.Repeat("W", 20), render.WithMaxWidth(grid.DefaultWeeks))
	require.NotEmpty(t, g.Lit())
	require.Contains(t, buf.String(), "truncated")
}
