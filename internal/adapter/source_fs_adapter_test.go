package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/graft/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.yaml"), "[]\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.yaml"), "[]\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.yaml")} {
			assert.Falsef(t, containsPath(visited, forbidden), "Walk() unexpectedly visited %s when recursive is false", forbidden)
		}

		assert.True(t, containsPath(visited, filepath.Join(root, "main.yaml")), "Walk() did not visit top-level file")
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.yaml")
		writeTestFile(t, child, "[]\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, child), "Walk() did not visit nested file when recursive")
	})
}

func TestLocalSourceFSAdapter_ReadFileAndHash(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "unit.yaml")
	content := "- let: x\n  value: 1\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, content, string(got))

	hash, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, hashBytes([]byte(content)), hash)

	_, err = adapter.HashFile(m.Path(filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)
}

func TestLocalSourceFSAdapter_FindUnit(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	first := t.TempDir()
	second := t.TempDir()

	mustMkdir(t, filepath.Join(second, "pkg"))
	writeTestFile(t, filepath.Join(second, "pkg", "mod.yml"), "[]\n")
	writeTestFile(t, filepath.Join(second, "top.yaml"), "[]\n")
	writeTestFile(t, filepath.Join(first, "top.yaml"), "[]\n")

	tests := []struct {
		name    string
		unit    string
		want    string
		wantErr bool
	}{
		{name: "first root wins", unit: "top", want: filepath.Join(first, "top.yaml")},
		{name: "dotted name maps to directories", unit: "pkg.mod", want: filepath.Join(second, "pkg", "mod.yml")},
		{name: "missing", unit: "nope", wantErr: true},
		{name: "invalid", unit: "a..b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := adapter.FindUnit([]m.Path{m.Path(first), m.Path(second)}, tt.unit, DefaultExtensions)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, m.Path(tt.want), got)
		})
	}

	_, err := adapter.FindUnit([]m.Path{m.Path(first)}, "nope", DefaultExtensions)
	require.ErrorIs(t, err, ErrUnitNotFound)
}

func TestLocalSourceFSAdapter_UnitFiles(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.yaml"), "[]\n")
	writeTestFile(t, filepath.Join(root, "a.yml"), "[]\n")
	writeTestFile(t, filepath.Join(root, "notes.txt"), "")
	mustMkdir(t, filepath.Join(root, "pkg"))
	writeTestFile(t, filepath.Join(root, "pkg", "b.yaml"), "[]\n")
	mustMkdir(t, filepath.Join(root, ".hidden"))
	writeTestFile(t, filepath.Join(root, ".hidden", "c.yaml"), "[]\n")

	flat, err := adapter.UnitFiles(m.Path(root), DefaultExtensions)
	require.NoError(t, err)
	assert.Equal(t, map[string]m.Path{"a": m.Path(filepath.Join(root, "a.yaml"))}, flat)

	deep, err := adapter.UnitFiles(m.Path(root+"/..."), DefaultExtensions)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "pkg.b"}, SortedNames(deep))

	_, err = adapter.UnitFiles(m.Path(filepath.Join(root, "a.yaml")), DefaultExtensions)
	require.Error(t, err)
}

func TestHasExtension(t *testing.T) {
	assert.True(t, HasExtension("x/y.yaml", DefaultExtensions))
	assert.True(t, HasExtension("x/y.yml", DefaultExtensions))
	assert.False(t, HasExtension("x/y.go", DefaultExtensions))
	assert.False(t, HasExtension("", DefaultExtensions))
}

func TestParseRootPath(t *testing.T) {
	path, recursive := parseRootPath("./units/...")
	assert.Equal(t, "./units", path)
	assert.True(t, recursive)

	path, recursive = parseRootPath("units")
	assert.Equal(t, "units", path)
	assert.False(t, recursive)
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}

func hashBytes(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

func examplePath(t *testing.T, elem ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)

	repoRoot := filepath.Clean(filepath.Join(wd, "..", ".."))
	parts := append([]string{repoRoot, "examples"}, elem...)

	return filepath.Join(parts...)
}
