package shell

import (
	"context"
	"fmt"
	"strings"
)

// bindingName is the identifier an imported unit is bound to: its last
// dotted component.
func bindingName(unit string) string {
	if i := strings.LastIndexByte(unit, '.'); i >= 0 {
		return unit[i+1:]
	}

	return unit
}

// splitAlias parses "name" or "name as alias".
func splitAlias(clause string) (name, alias string, err error) {
	fields := strings.Fields(clause)

	switch {
	case len(fields) == 1:
		return fields[0], "", nil
	case len(fields) == 3 && fields[1] == "as":
		return fields[0], fields[2], nil
	}

	return "", "", fmt.Errorf("invalid import clause %q", strings.TrimSpace(clause))
}

// importLine handles "import a.b [as x], c".
func (s *Shell) importLine(ctx context.Context, rest string) error {
	if rest == "" {
		return fmt.Errorf("import: missing unit name")
	}

	for _, clause := range strings.Split(rest, ",") {
		name, alias, err := splitAlias(clause)
		if err != nil {
			return err
		}

		unit, err := s.loader.Import(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", name, err)
		}

		if alias == "" {
			alias = bindingName(name)
		}

		s.scope.Set(alias, unit)
	}

	return nil
}

// fromLine handles "from a import x, y as z" and "from a import *".
func (s *Shell) fromLine(ctx context.Context, rest string) error {
	unitName, names, ok := strings.Cut(rest, " import ")
	unitName = strings.TrimSpace(unitName)

	if !ok || unitName == "" || strings.TrimSpace(names) == "" {
		return fmt.Errorf("from: expected 'from <unit> import <names>'")
	}

	unit, err := s.loader.Import(ctx, unitName)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", unitName, err)
	}

	if strings.TrimSpace(names) == "*" {
		for _, b := range unit.Namespace.Snapshot() {
			if !strings.HasPrefix(b.Name, "_") {
				s.scope.Set(b.Name, b.Value)
			}
		}

		return nil
	}

	for _, clause := range strings.Split(names, ",") {
		name, alias, err := splitAlias(clause)
		if err != nil {
			return err
		}

		v, ok := unit.Namespace.Get(name)
		if !ok {
			return fmt.Errorf("cannot import name %q from %q", name, unitName)
		}

		if alias == "" {
			alias = name
		}

		s.scope.Set(alias, v)
	}

	return nil
}
