// Package adapter contains filesystem, source loading and UI adapters for
// the graft CLI.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/mouse-blink/graft/internal/model"
)

// DefaultExtensions are the unit source extensions recognised out of the box.
var DefaultExtensions = []string{".yaml", ".yml"}

// SourceFSAdapter abstracts the filesystem operations the loader and the
// reloader rely on. It hides direct `os` access so change detection can be
// tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path; the reloader reads modification
	// times through it.
	FileInfo(path m.Path) (os.FileInfo, error)

	// FindUnit resolves a dotted unit name to a source file under roots.
	FindUnit(roots []m.Path, name string, exts []string) (m.Path, error)

	// UnitFiles lists the unit sources under root keyed by unit name.
	UnitFiles(root m.Path, exts []string) (map[string]m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// ErrUnitNotFound is returned by FindUnit when no root holds the unit.
var ErrUnitNotFound = errors.New("unit not found")

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the loader and reloader.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - unit sources are chosen by the user
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// FindUnit maps "a.b" to <root>/a/b<ext>, trying roots then extensions in order.
func (a *LocalSourceFSAdapter) FindUnit(roots []m.Path, name string, exts []string) (m.Path, error) {
	if name == "" || strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid unit name %q", name)
	}

	rel := filepath.Join(strings.Split(name, ".")...)

	for _, root := range roots {
		rootPath, _, err := normalizeRootPath(string(root))
		if err != nil {
			return "", err
		}

		for _, ext := range exts {
			candidate := filepath.Join(rootPath, rel+ext)

			info, err := a.FileInfo(m.Path(candidate))
			if err == nil && !info.IsDir() {
				return m.Path(candidate), nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnitNotFound, name)
}

// UnitFiles walks root and maps every unit source to its dotted name. A
// root ending in "/..." is scanned recursively; nested directories map to
// dotted prefixes. The first extension in exts wins for duplicate names.
func (a *LocalSourceFSAdapter) UnitFiles(root m.Path, exts []string) (map[string]m.Path, error) {
	rootPath, recursive, err := normalizeRootPath(string(root))
	if err != nil {
		return nil, err
	}

	info, err := a.FileInfo(m.Path(rootPath))
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("root path %s is not a directory", rootPath)
	}

	found := make(map[string]m.Path)
	rank := make(map[string]int)

	err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != rootPath && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}

			return nil
		}

		ext := filepath.Ext(path)

		idx := indexOf(exts, ext)
		if idx < 0 {
			return nil
		}

		rel, err := filepath.Rel(rootPath, strings.TrimSuffix(path, ext))
		if err != nil {
			return err
		}

		name := strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
		if strings.HasPrefix(filepath.Base(rel), ".") {
			return nil
		}

		if prev, exists := rank[name]; exists && prev <= idx {
			return nil
		}

		rank[name] = idx
		found[name] = m.Path(path)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// SortedNames returns the keys of a UnitFiles result in order.
func SortedNames(files map[string]m.Path) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// HasExtension reports whether path carries one of exts.
func HasExtension(path m.Path, exts []string) bool {
	return indexOf(exts, filepath.Ext(string(path))) >= 0
}

func indexOf(list []string, s string) int {
	for i, item := range list {
		if item == s {
			return i
		}
	}

	return -1
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
