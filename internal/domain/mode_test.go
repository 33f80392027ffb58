package domain

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		arg  string
		want Mode
	}{
		{"", Mode{Now: true}},
		{"now", Mode{Now: true}},
		{"0", Mode{}},
		{"OFF", Mode{}},
		{"1", Mode{Settings: Settings{Enabled: true}}},
		{"explicit", Mode{Settings: Settings{Enabled: true}}},
		{"2", Mode{Settings: Settings{Enabled: true, CheckAll: true}}},
		{"All", Mode{Settings: Settings{Enabled: true, CheckAll: true}}},
		{"3", Mode{Settings: Settings{Enabled: true, CheckAll: true, AutoloadNew: true}}},
		{" complete ", Mode{Settings: Settings{Enabled: true, CheckAll: true, AutoloadNew: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := ParseMode(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMode_Unknown(t *testing.T) {
	_, err := ParseMode("sometimes")
	require.ErrorIs(t, err, ErrUnknownMode)
	assert.EqualError(t, err, `unrecognized autoreload mode "sometimes"`)
}

func TestSettings_String(t *testing.T) {
	for _, arg := range []string{"off", "explicit", "all", "complete"} {
		mode, err := ParseMode(arg)
		require.NoError(t, err)
		assert.Equal(t, arg, mode.Settings.String())
	}
}

func TestReporter(t *testing.T) {
	var printed []string
	var logged bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&logged, nil))
	print := func(msg string) { printed = append(printed, msg) }

	assert.Nil(t, Reporter(print, logger, false, false))

	Reporter(print, logger, true, false)("one")
	assert.Equal(t, []string{"one"}, printed)
	assert.Empty(t, logged.String())

	Reporter(print, logger, false, true)("two")
	assert.Contains(t, logged.String(), "msg=two")

	Reporter(print, logger, true, true)("three")
	assert.Equal(t, []string{"one", "three"}, printed)
	assert.Contains(t, logged.String(), "msg=three")
}
