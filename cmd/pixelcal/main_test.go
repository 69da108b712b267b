package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixelcal/schedule"
	"github.com/katalvlaran/pixelcal/validate"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func exitCode(err error) int {
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

func TestRun_Schedule(t *testing.T) {
	out, _, err := runCLI(t, "--mode", "schedule", "--start", "2026-01-04", "--max-width", "12", "hi!")
	require.NoError(t, err)

	events, err := schedule.Decode(strings.NewReader(out), schedule.FormatJSON)
	require.NoError(t, err)
	require.Len(t, events, 24)
	require.Equal(t, "2026-01-04", events[0].Day())
	require.Equal(t, "hi!", events[0].SourceMessage)
}

func TestRun_ScheduleDefaultWindow(t *testing.T) {
	now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	out, _, err := runCLI(t, "--mode", "schedule", "--format", "yaml", "A")
	require.NoError(t, err)
	events, err := schedule.Decode(strings.NewReader(out), schedule.FormatYAML)
	require.NoError(t, err)
	require.Equal(t, "2025-10-21", events[0].Day())
}

func TestRun_ScheduleWarnsOnTruncation(t *testing.T) {
	_, stderr, err := runCLI(t, "--mode", "schedule", "--max-width", "5", "HELLO")
	require.NoError(t, err)
	require.Contains(t, stderr, "truncated")
}

func TestRun_SVGToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	_, _, err := runCLI(t, "--out", path, "--theme", "light", "--animation", "random", "--seed", "3",
		"CHARGING AT HOME TONIGHT")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(data)
	require.True(t, strings.HasPrefix(doc, "<?xml"))
	require.Contains(t, doc, "animateTransform", "wide message scrolls")
	require.Contains(t, doc, "#ffffff")
}

func TestRun_Terminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	_, _, err := runCLI(t, "--mode", "terminal", "--max-width", "4", "--out", path, "A")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "··██····\n"))
}

func TestRun_PNG(t *testing.T) {
	out, _, err := runCLI(t, "--mode", "png", "--scale", "1", "OK")
	require.NoError(t, err)
	img, err := png.Decode(strings.NewReader(out))
	require.NoError(t, err)
	require.Positive(t, img.Bounds().Dx())
}

func TestRun_ConfigWithOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "pixelcal.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("schedule:\n  format: yaml\n  start: \"2026-01-04\"\n"), 0o600))

	out, _, err := runCLI(t, "--config", cfgPath, "--mode", "schedule", "--start", "2026-02-01", "-")
	require.NoError(t, err)
	events, err := schedule.Decode(strings.NewReader(out), schedule.FormatYAML)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, "2026-02-03", events[0].Day(), "'-' lights row 2, flag start wins")
}

func TestRun_History(t *testing.T) {
	hist := filepath.Join(t.TempDir(), "recent.txt")
	pickOnce := func() string {
		out, _, err := runCLI(t, "--mode", "schedule", "--start", "2026-01-04", "--history", hist, "ONE", "TWO")
		require.NoError(t, err)
		events, err := schedule.Decode(strings.NewReader(out), schedule.FormatJSON)
		require.NoError(t, err)
		return events[0].SourceMessage
	}

	require.Equal(t, "ONE", pickOnce())
	require.Equal(t, "TWO", pickOnce())
	require.Equal(t, "ONE", pickOnce(), "all recent, first candidate again")

	data, err := os.ReadFile(hist)
	require.NoError(t, err)
	require.Equal(t, "ONE\nTWO\nONE\n", string(data))
}

// TestRun_HistorySkipsInvalidCandidates checks a rejected message is never
// picked over a valid one and never recorded.
func TestRun_HistorySkipsInvalidCandidates(t *testing.T) {
	hist := filepath.Join(t.TempDir(), "recent.txt")

	out, _, err := runCLI(t, "--mode", "schedule", "--start", "2026-01-04", "--history", hist, "BAD@", "OK")
	require.NoError(t, err)
	events, err := schedule.Decode(strings.NewReader(out), schedule.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "OK", events[0].SourceMessage)

	data, err := os.ReadFile(hist)
	require.NoError(t, err)
	require.Equal(t, "OK\n", string(data))
}

func TestRun_HistoryUntouchedOnFailure(t *testing.T) {
	t.Run("invalid message", func(t *testing.T) {
		hist := filepath.Join(t.TempDir(), "recent.txt")
		_, _, err := runCLI(t, "--history", hist, "BAD@")
		require.Equal(t, 2, exitCode(err))
		require.ErrorIs(t, err, validate.ErrCharset)
		_, statErr := os.Stat(hist)
		require.ErrorIs(t, statErr, os.ErrNotExist)
	})
	t.Run("output fails", func(t *testing.T) {
		hist := filepath.Join(t.TempDir(), "recent.txt")
		require.NoError(t, os.WriteFile(hist, []byte("ONE\n"), 0o600))
		_, _, err := runCLI(t, "--mode", "gif", "--history", hist, "TWO")
		require.Equal(t, 2, exitCode(err))
		data, err := os.ReadFile(hist)
		require.NoError(t, err)
		require.Equal(t, "ONE\n", string(data))
	})
}

func TestRun_UsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		is   error
	}{
		{"no message", nil, nil},
		{"bad flag", []string{"--bogus", "HI"}, nil},
		{"bad mode", []string{"--mode", "gif", "HI"}, nil},
		{"bad theme", []string{"--theme", "sepia", "HI"}, nil},
		{"bad level", []string{"--log-level", "loud", "HI"}, nil},
		{"charset", []string{"SPECIAL @#$%"}, validate.ErrCharset},
		{"too long", []string{"TOO LONG MESSAGE THAT EXCEEDS THE THIRTY CHARACTER LIMIT"}, validate.ErrTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runCLI(t, tc.args...)
			require.Error(t, err)
			require.Equal(t, 2, exitCode(err))
			if tc.is != nil {
				require.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	_, stderr, err := runCLI(t, "--help")
	require.NoError(t, err)
	require.Contains(t, stderr, "Usage:")
}

func TestRun_RuntimeErrorExitsOne(t *testing.T) {
	_, _, err := runCLI(t, "--out", filepath.Join(t.TempDir(), "missing", "out.svg"), "HI")
	require.Error(t, err)
	require.Equal(t, 1, exitCode(err))
}
