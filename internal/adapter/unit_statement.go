package adapter

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// statement is one top-level or class-body entry of a unit source.
type statement struct {
	Let      string            `yaml:"let"`
	Value    yaml.Node         `yaml:"value"`
	Expr     string            `yaml:"expr"`
	Run      string            `yaml:"run"`
	Def      string            `yaml:"def"`
	Params   []string          `yaml:"params"`
	Body     string            `yaml:"body"`
	Doc      string            `yaml:"doc"`
	Captures map[string]string `yaml:"captures"`
	Meta     yaml.Node         `yaml:"meta"`
	Class    string            `yaml:"class"`
	Bases    []string          `yaml:"bases"`
	Sealed   []string          `yaml:"sealed"`
	Members  yaml.Node         `yaml:"members"`
	Property string            `yaml:"property"`
	Get      string            `yaml:"get"`
	Set      string            `yaml:"set"`
	Del      string            `yaml:"del"`
	Enum     string            `yaml:"enum"`
	Values   yaml.Node         `yaml:"values"`
	Partial  string            `yaml:"partial"`
	Func     string            `yaml:"func"`
	Args     yaml.Node         `yaml:"args"`
	Keywords yaml.Node         `yaml:"keywords"`
	Method   bool              `yaml:"method"`
	Import   string            `yaml:"import"`
	As       string            `yaml:"as"`
	From     string            `yaml:"from"`
	Names    []string          `yaml:"names"`

	line int
}

func (st *statement) kind() (string, string, error) {
	kinds := map[string]string{
		"let":      st.Let,
		"run":      st.Run,
		"def":      st.Def,
		"class":    st.Class,
		"property": st.Property,
		"enum":     st.Enum,
		"partial":  st.Partial,
		"import":   st.Import,
		"from":     st.From,
	}

	var found []string

	for k, v := range kinds {
		if v != "" {
			found = append(found, k)
		}
	}

	switch len(found) {
	case 0:
		return "", "", fmt.Errorf("statement has no kind (one of let, run, def, class, property, enum, partial, import, from)")
	case 1:
		return found[0], kinds[found[0]], nil
	}

	sort.Strings(found)

	return "", "", fmt.Errorf("statement mixes kinds %s", strings.Join(found, ", "))
}

func (st *statement) describe() string {
	kind, name, err := st.kind()
	if err != nil {
		return "invalid"
	}

	if kind == "run" {
		return "run"
	}

	return kind + " " + name
}
