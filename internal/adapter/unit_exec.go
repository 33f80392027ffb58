package adapter

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/graft/internal/lang"
	m "github.com/mouse-blink/graft/internal/model"
)

// executor runs decoded statements of one unit into its fresh namespace.
type executor struct {
	loader  *unitLoader
	ctx     context.Context
	unit    string
	globals *m.Namespace
}

type binder func(name string, v m.Value) error

func (ex *executor) bindGlobal(name string, v m.Value) error {
	ex.globals.Set(name, v)
	return nil
}

// evalIn evaluates src with class-body members (if any) shadowing globals.
func (ex *executor) evalIn(src string, locals map[string]m.Value) (m.Value, error) {
	prog, err := lang.Compile(src)
	if err != nil {
		return nil, err
	}

	return prog.Run(&m.Frame{Scope: ex.globals, Locals: locals})
}

func (ex *executor) lookup(name string, locals map[string]m.Value) (m.Value, bool) {
	if v, ok := locals[name]; ok {
		return v, true
	}

	if v, ok := ex.globals.Get(name); ok {
		return v, true
	}

	return lang.Builtins().Get(name)
}

func (ex *executor) run(st statement, bind binder) error {
	return ex.runIn(st, bind, nil)
}

func (ex *executor) runIn(st statement, bind binder, locals map[string]m.Value) error {
	kind, name, err := st.kind()
	if err != nil {
		return err
	}

	var v m.Value

	switch kind {
	case "let":
		v, err = ex.let(st, locals)
	case "run":
		_, err = ex.evalIn(st.Run, locals)
		return err
	case "def":
		v, err = ex.def(name, st.Params, st.Body, st, locals)
	case "class":
		v, err = ex.class(st, locals)
	case "property":
		v, err = ex.property(st, locals)
	case "enum":
		v, err = ex.enum(st)
	case "partial":
		v, err = ex.partial(st, locals)
	case "import":
		return ex.importUnit(st, bind, locals)
	case "from":
		return ex.fromUnit(st, bind, locals)
	}

	if err != nil {
		return err
	}

	if locals != nil {
		locals[name] = v
	}

	return bind(name, v)
}

func (ex *executor) let(st statement, locals map[string]m.Value) (m.Value, error) {
	if st.Expr != "" {
		if st.Value.Kind != 0 {
			return nil, fmt.Errorf("let takes either value or expr, not both")
		}

		return ex.evalIn(st.Expr, locals)
	}

	return nodeValue(&st.Value)
}

func (ex *executor) def(name string, params []string, body string, st statement, locals map[string]m.Value) (*m.Function, error) {
	code, err := lang.Compile(body)
	if err != nil {
		return nil, err
	}

	names, defaults, err := ex.signature(params, locals)
	if err != nil {
		return nil, err
	}

	closure := make(map[string]m.Value, len(st.Captures))

	for cell, src := range st.Captures {
		v, err := ex.evalIn(src, locals)
		if err != nil {
			return nil, fmt.Errorf("capture %s: %w", cell, err)
		}

		closure[cell] = v
	}

	var meta map[string]m.Value

	if st.Meta.Kind != 0 {
		v, err := nodeValue(&st.Meta)
		if err != nil {
			return nil, fmt.Errorf("meta: %w", err)
		}

		d, ok := v.(*m.Dict)
		if !ok {
			return nil, fmt.Errorf("meta must be a mapping")
		}

		meta = make(map[string]m.Value, d.Len())
		for _, k := range d.Keys() {
			meta[k], _ = d.Get(k)
		}
	}

	return m.NewFunction(m.FunctionDef{
		Name:     name,
		Home:     ex.unit,
		Params:   names,
		Defaults: defaults,
		Code:     code,
		Closure:  closure,
		Doc:      st.Doc,
		Meta:     meta,
		Globals:  ex.globals,
	}), nil
}

// signature splits "name=expr" parameters into names and trailing defaults.
func (ex *executor) signature(params []string, locals map[string]m.Value) ([]string, []m.Value, error) {
	names := make([]string, 0, len(params))

	var defaults []m.Value

	for _, p := range params {
		pname, dflt, hasDefault := strings.Cut(p, "=")
		pname = strings.TrimSpace(pname)

		if pname == "" {
			return nil, nil, fmt.Errorf("empty parameter name in %q", p)
		}

		names = append(names, pname)

		if strings.HasPrefix(pname, "*") {
			continue
		}

		if !hasDefault {
			if len(defaults) > 0 {
				return nil, nil, fmt.Errorf("parameter %s without a default follows a parameter with one", pname)
			}

			continue
		}

		v, err := ex.evalIn(dflt, locals)
		if err != nil {
			return nil, nil, fmt.Errorf("default of %s: %w", pname, err)
		}

		defaults = append(defaults, v)
	}

	return names, defaults, nil
}

func (ex *executor) class(st statement, locals map[string]m.Value) (*m.Class, error) {
	bases := make([]*m.Class, 0, len(st.Bases))

	for _, b := range st.Bases {
		v, ok := ex.lookup(b, locals)
		if !ok {
			return nil, fmt.Errorf("base %s is not defined", b)
		}

		cls, ok := v.(*m.Class)
		if !ok {
			return nil, fmt.Errorf("base %s is a %s, not a class", b, m.TypeName(v))
		}

		bases = append(bases, cls)
	}

	cls := m.NewClass(m.ClassDef{Name: st.Class, Home: ex.unit, Bases: bases, Heap: ex.loader.heap})

	if st.Members.Kind != 0 {
		members, err := decodeStatementList(&st.Members)
		if err != nil {
			return nil, err
		}

		body := make(map[string]m.Value, len(members))

		for i, member := range members {
			kind, _, _ := member.kind()
			if kind == "import" || kind == "from" {
				return nil, fmt.Errorf("member %d: %s is not allowed in a class body", i+1, kind)
			}

			if err := ex.runIn(member, cls.SetAttr, body); err != nil {
				return nil, fmt.Errorf("member %d (%s): %w", i+1, member.describe(), err)
			}
		}
	}

	cls.Seal(st.Sealed...)

	return cls, nil
}

func (ex *executor) property(st statement, locals map[string]m.Value) (*m.Property, error) {
	p := &m.Property{}

	accessors := []struct {
		body   string
		params []string
		slot   *m.Value
	}{
		{st.Get, []string{"self"}, &p.Get},
		{st.Set, []string{"self", "value"}, &p.Set},
		{st.Del, []string{"self"}, &p.Del},
	}

	for _, a := range accessors {
		if a.body == "" {
			continue
		}

		fn, err := ex.def(st.Property, a.params, a.body, statement{}, locals)
		if err != nil {
			return nil, err
		}

		*a.slot = fn
	}

	if p.Get == nil && p.Set == nil && p.Del == nil {
		return nil, fmt.Errorf("property needs at least one of get, set, del")
	}

	return p, nil
}

func (ex *executor) enum(st statement) (*m.Class, error) {
	if st.Values.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("enum values must be a mapping")
	}

	members := make([]m.Binding, 0, len(st.Values.Content)/2)

	for i := 0; i+1 < len(st.Values.Content); i += 2 {
		v, err := nodeValue(st.Values.Content[i+1])
		if err != nil {
			return nil, err
		}

		members = append(members, m.Binding{Name: st.Values.Content[i].Value, Value: v})
	}

	return m.NewEnum(m.ClassDef{Name: st.Enum, Home: ex.unit}, members), nil
}

func (ex *executor) partial(st statement, locals map[string]m.Value) (*m.Partial, error) {
	if st.Func == "" {
		return nil, fmt.Errorf("partial needs func")
	}

	fn, err := ex.evalIn(st.Func, locals)
	if err != nil {
		return nil, fmt.Errorf("func: %w", err)
	}

	p := &m.Partial{Func: fn, Method: st.Method}

	if st.Args.Kind != 0 {
		v, err := nodeValue(&st.Args)
		if err != nil {
			return nil, err
		}

		list, ok := v.(*m.List)
		if !ok {
			return nil, fmt.Errorf("args must be a list")
		}

		p.Args = list.Items()
	}

	if st.Keywords.Kind != 0 {
		v, err := nodeValue(&st.Keywords)
		if err != nil {
			return nil, err
		}

		d, ok := v.(*m.Dict)
		if !ok {
			return nil, fmt.Errorf("keywords must be a mapping")
		}

		p.Keywords = make(map[string]m.Value, d.Len())
		for _, k := range d.Keys() {
			p.Keywords[k], _ = d.Get(k)
		}
	}

	return p, nil
}

func (ex *executor) importUnit(st statement, bind binder, locals map[string]m.Value) error {
	unit, err := ex.loader.Import(ex.ctx, st.Import)
	if err != nil {
		return err
	}

	alias := st.As
	if alias == "" {
		parts := strings.Split(st.Import, ".")
		alias = parts[len(parts)-1]
	}

	if locals != nil {
		locals[alias] = unit
	}

	return bind(alias, unit)
}

func (ex *executor) fromUnit(st statement, bind binder, locals map[string]m.Value) error {
	unit, err := ex.loader.Import(ex.ctx, st.From)
	if err != nil {
		return err
	}

	names := st.Names
	if len(names) == 1 && names[0] == "*" {
		names = nil

		for _, k := range unit.Namespace.Keys() {
			if !strings.HasPrefix(k, "_") {
				names = append(names, k)
			}
		}
	}

	for _, name := range names {
		v, ok := unit.Namespace.Get(name)
		if !ok {
			return fmt.Errorf("cannot import name %q from %q", name, st.From)
		}

		if locals != nil {
			locals[name] = v
		}

		if err := bind(name, v); err != nil {
			return err
		}
	}

	return nil
}

// nodeValue converts plain YAML data into model values.
func nodeValue(n *yaml.Node) (m.Value, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}

		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}

		return v, nil
	case yaml.SequenceNode:
		items := make([]m.Value, 0, len(n.Content))

		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}

			items = append(items, v)
		}

		return m.NewList(items...), nil
	case yaml.MappingNode:
		d := m.NewDict()

		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}

			d.Set(n.Content[i].Value, v)
		}

		return d, nil
	}

	return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}
