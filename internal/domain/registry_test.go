package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_IsSkipped(t *testing.T) {
	reg := NewRegistry()
	reg.MarkSkipped("pkg")

	tests := []struct {
		name string
		want bool
	}{
		{"builtins", true},
		{"__main__", true},
		{"pkg", true},
		{"pkg.sub", true},
		{"pkg.sub.leaf", true},
		{"pkgx", false},
		{"other.pkg", false},
		{"shapes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.IsSkipped(tt.name))
		})
	}
}

func TestRegistry_MarkMovesBetweenSets(t *testing.T) {
	reg := NewRegistry()

	reg.MarkReloadable("a")
	reg.MarkReloadable("b")
	assert.Equal(t, []string{"a", "b"}, reg.Reloadable())

	reg.MarkSkipped("a")
	assert.Equal(t, []string{"b"}, reg.Reloadable())
	assert.Contains(t, reg.Skipped(), "a")

	reg.MarkReloadable("builtins")
	assert.False(t, reg.IsSkipped("builtins"))
	assert.Equal(t, []string{"__main__", "__mp_main__", "a"}, reg.Skipped())
}

func TestRegistry_Times(t *testing.T) {
	reg := NewRegistry()
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, ok := reg.ModTime("m")
	assert.False(t, ok)

	reg.SetModTime("m", at)
	got, ok := reg.ModTime("m")
	assert.True(t, ok)
	assert.Equal(t, at, got)

	reg.SetFailed("m", at)
	failed, ok := reg.FailedAt("m")
	assert.True(t, ok)
	assert.Equal(t, at, failed)

	reg.ClearFailed("m")
	_, ok = reg.FailedAt("m")
	assert.False(t, ok)
}
