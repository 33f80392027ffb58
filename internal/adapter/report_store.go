package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/graft/internal/model"
)

// ReportStore persists and retrieves reload pass reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.PassReport) error
	LoadReports(path m.Path) ([]m.PassReport, error)
}

// LocalReportStore keeps the history as a stream of YAML documents, one per
// pass, appended to a single file.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type failureYAML struct {
	Unit  string `yaml:"unit"`
	Error string `yaml:"error"`
}

type reportYAML struct {
	ID       string        `yaml:"id"`
	Started  time.Time     `yaml:"started"`
	Duration string        `yaml:"duration"`
	Forced   bool          `yaml:"forced,omitempty"`
	Patched  int           `yaml:"patched"`
	Reloaded []string      `yaml:"reloaded,omitempty"`
	Failed   []failureYAML `yaml:"failed,omitempty"`
}

func toReportYAML(r m.PassReport) reportYAML {
	out := reportYAML{
		ID:       r.ID,
		Started:  r.Started.UTC(),
		Duration: r.Duration.String(),
		Forced:   r.Forced,
		Patched:  r.Patched,
		Reloaded: r.Reloaded,
	}

	for _, f := range r.Failed {
		out.Failed = append(out.Failed, failureYAML{Unit: f.Name, Error: f.Error})
	}

	return out
}

func (ry reportYAML) toModel() (m.PassReport, error) {
	d, err := time.ParseDuration(ry.Duration)
	if err != nil {
		return m.PassReport{}, fmt.Errorf("report %s: invalid duration %q: %w", ry.ID, ry.Duration, err)
	}

	out := m.PassReport{
		ID:       ry.ID,
		Started:  ry.Started,
		Duration: d,
		Forced:   ry.Forced,
		Patched:  ry.Patched,
		Reloaded: ry.Reloaded,
	}

	for _, f := range ry.Failed {
		out.Failed = append(out.Failed, m.UnitFailure{Name: f.Unit, Error: f.Error})
	}

	return out, nil
}

// SaveReports appends reports to the history file at path.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.PassReport) error {
	if len(reports) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	// #nosec G304 - history path comes from the user's configuration
	f, err := os.OpenFile(string(path), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}

	defer func() { _ = f.Close() }()

	for _, r := range reports {
		data, err := yaml.Marshal(toReportYAML(r))
		if err != nil {
			return fmt.Errorf("failed to encode report %s: %w", r.ID, err)
		}

		if _, err := f.Write(append([]byte("---\n"), data...)); err != nil {
			return fmt.Errorf("failed to write history file: %w", err)
		}
	}

	return nil
}

// LoadReports reads every report from path. A missing file is an empty history.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.PassReport, error) {
	// #nosec G304 - history path comes from the user's configuration
	f, err := os.Open(string(path))
	if errors.Is(err, os.ErrNotExist) {
		return []m.PassReport{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}

	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	reports := []m.PassReport{}

	for {
		var ry reportYAML

		err := dec.Decode(&ry)
		if errors.Is(err, io.EOF) {
			return reports, nil
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode history file: %w", err)
		}

		r, err := ry.toModel()
		if err != nil {
			return nil, err
		}

		reports = append(reports, r)
	}
}
