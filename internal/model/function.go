package model

import (
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// MaxCallDepth bounds how many function bodies may be running at once.
// Deeper calls fail with ErrRecursion instead of overflowing the Go stack.
const MaxCallDepth = 1000

var callDepth atomic.Int64

// Code is an executable body. Implementations must not retain fr.
type Code interface {
	Run(fr *Frame) (Value, error)
}

// CodeFunc adapts a Go function to Code.
type CodeFunc func(fr *Frame) (Value, error)

// Run calls f(fr).
func (f CodeFunc) Run(fr *Frame) (Value, error) {
	return f(fr)
}

// Callable is implemented by every invocable entity.
type Callable interface {
	CallWith(args []Value, kwargs map[string]Value) (Value, error)
}

// Call invokes v with positional arguments.
func Call(v Value, args ...Value) (Value, error) {
	return CallWith(v, args, nil)
}

// CallWith invokes v with positional and keyword arguments.
func CallWith(v Value, args []Value, kwargs map[string]Value) (Value, error) {
	c, ok := v.(Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotCallable, TypeName(v))
	}

	return c.CallWith(args, kwargs)
}

// Slot names a patchable part of a Function.
type Slot uint8

// Function slots. A sealed slot rejects writes with ErrReadOnly.
const (
	SlotCode Slot = 1 << iota
	SlotDefaults
	SlotClosure
	SlotDoc
	SlotMeta
	SlotGlobals

	SlotAll = SlotCode | SlotDefaults | SlotClosure | SlotDoc | SlotMeta | SlotGlobals
)

// FunctionDef describes a function to construct.
type FunctionDef struct {
	Name     string
	Home     string
	Params   []string
	Defaults []Value // values for the trailing parameters
	Code     Code
	Closure  map[string]Value
	Doc      string
	Meta     map[string]Value
	Globals  *Namespace
}

// Function is a plain callable. Everything but its name and home can be
// swapped in place, which is how the patch engine upgrades functions that
// are still referenced by running code.
type Function struct {
	mu       sync.RWMutex
	name     string
	home     string
	params   []string
	defaults []Value
	code     Code
	closure  map[string]Value
	doc      string
	meta     map[string]Value
	globals  *Namespace
	sealed   Slot
}

// NewFunction builds a Function from def.
func NewFunction(def FunctionDef) *Function {
	return &Function{
		name:     def.Name,
		home:     def.Home,
		params:   append([]string(nil), def.Params...),
		defaults: append([]Value(nil), def.Defaults...),
		code:     def.Code,
		closure:  maps.Clone(def.Closure),
		doc:      def.Doc,
		meta:     maps.Clone(def.Meta),
		globals:  def.Globals,
	}
}

// NewNative wraps a Go body as a sealed function.
func NewNative(name string, body CodeFunc, params ...string) *Function {
	fn := NewFunction(FunctionDef{Name: name, Home: "builtins", Params: params, Code: body})
	fn.sealed = SlotAll

	return fn
}

func (f *Function) Name() string { return f.name }
func (f *Function) Home() string { return f.home }

func (f *Function) Params() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return append([]string(nil), f.params...)
}

func (f *Function) Code() Code {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.code
}

func (f *Function) Defaults() []Value {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return append([]Value(nil), f.defaults...)
}

func (f *Function) Closure() map[string]Value {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return maps.Clone(f.closure)
}

func (f *Function) Doc() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.doc
}

func (f *Function) Meta() map[string]Value {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return maps.Clone(f.meta)
}

func (f *Function) Globals() *Namespace {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.globals
}

// Seal marks slots read-only.
func (f *Function) Seal(slots Slot) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sealed |= slots
}

func (f *Function) writable(slot Slot, what string) error {
	if f.sealed&slot != 0 {
		return fmt.Errorf("%w: %s of function %s", ErrReadOnly, what, f.name)
	}

	return nil
}

// SetCode replaces the signature and body together.
func (f *Function) SetCode(params []string, code Code) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.writable(SlotCode, "code"); err != nil {
		return err
	}

	f.params = append([]string(nil), params...)
	f.code = code

	return nil
}

func (f *Function) SetDefaults(defaults []Value) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.writable(SlotDefaults, "defaults"); err != nil {
		return err
	}

	f.defaults = append([]Value(nil), defaults...)

	return nil
}

func (f *Function) SetClosure(closure map[string]Value) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.writable(SlotClosure, "closure"); err != nil {
		return err
	}

	f.closure = maps.Clone(closure)

	return nil
}

func (f *Function) SetDoc(doc string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.writable(SlotDoc, "doc"); err != nil {
		return err
	}

	f.doc = doc

	return nil
}

func (f *Function) SetMeta(meta map[string]Value) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.writable(SlotMeta, "metadata"); err != nil {
		return err
	}

	f.meta = maps.Clone(meta)

	return nil
}

func (f *Function) SetGlobals(globals *Namespace) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.writable(SlotGlobals, "globals"); err != nil {
		return err
	}

	f.globals = globals

	return nil
}

// Call invokes the function with positional arguments.
func (f *Function) Call(args ...Value) (Value, error) {
	return f.CallWith(args, nil)
}

// CallWith binds args and kwargs to the current signature and runs the
// current body. A parameter spelled "*name" collects extra positionals into
// a *List and "**name" collects unknown keywords into a *Dict.
func (f *Function) CallWith(args []Value, kwargs map[string]Value) (Value, error) {
	f.mu.RLock()
	params, defaults, code := f.params, f.defaults, f.code
	f.mu.RUnlock()

	sig := parseSignature(params)
	locals := make(map[string]Value, len(params))

	if len(args) > len(sig.named) && sig.rest == "" {
		return nil, fmt.Errorf("%w: %s() takes %d arguments, got %d", ErrArity, f.name, len(sig.named), len(args))
	}

	for i, arg := range args {
		if i >= len(sig.named) {
			break
		}

		locals[sig.named[i]] = arg
	}

	if sig.rest != "" {
		var extra []Value
		if len(args) > len(sig.named) {
			extra = args[len(sig.named):]
		}

		locals[sig.rest] = NewList(extra...)
	}

	var extraKw *Dict
	if sig.kwrest != "" {
		extraKw = NewDict()
		locals[sig.kwrest] = extraKw
	}

	for _, name := range sortedKeys(kwargs) {
		v := kwargs[name]

		if !containsString(sig.named, name) {
			if extraKw == nil {
				return nil, fmt.Errorf("%w: %s() got an unexpected keyword argument %q", ErrArity, f.name, name)
			}

			extraKw.Set(name, v)

			continue
		}

		if _, dup := locals[name]; dup {
			return nil, fmt.Errorf("%w: %s() got multiple values for argument %q", ErrArity, f.name, name)
		}

		locals[name] = v
	}

	firstDefault := len(sig.named) - len(defaults)

	for i, p := range sig.named {
		if _, ok := locals[p]; ok {
			continue
		}

		if i < firstDefault {
			return nil, fmt.Errorf("%w: %s() missing argument %q", ErrArity, f.name, p)
		}

		locals[p] = defaults[i-firstDefault]
	}

	if code == nil {
		return nil, nil
	}

	if callDepth.Add(1) > MaxCallDepth {
		callDepth.Add(-1)
		return nil, fmt.Errorf("%w calling %s()", ErrRecursion, f.name)
	}
	defer callDepth.Add(-1)

	return code.Run(&Frame{Fn: f, Locals: locals})
}

type signature struct {
	named  []string
	rest   string
	kwrest string
}

func parseSignature(params []string) signature {
	var sig signature

	for _, p := range params {
		switch {
		case strings.HasPrefix(p, "**"):
			sig.kwrest = p[2:]
		case strings.HasPrefix(p, "*"):
			sig.rest = p[1:]
		default:
			sig.named = append(sig.named, p)
		}
	}

	return sig
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func (f *Function) String() string {
	return fmt.Sprintf("<function %s>", f.name)
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}

// Frame is the activation of one call, or of a top-level evaluation when
// Fn is nil and Scope is set.
type Frame struct {
	Fn     *Function
	Locals map[string]Value
	Scope  *Namespace
}

// Lookup resolves name through locals, closure cells and globals.
func (fr *Frame) Lookup(name string) (Value, bool) {
	if v, ok := fr.Locals[name]; ok {
		return v, true
	}

	if fr.Fn != nil {
		fr.Fn.mu.RLock()
		v, ok := fr.Fn.closure[name]
		globals := fr.Fn.globals
		fr.Fn.mu.RUnlock()

		if ok {
			return v, true
		}

		if globals != nil {
			return globals.Get(name)
		}

		return nil, false
	}

	if fr.Scope != nil {
		return fr.Scope.Get(name)
	}

	return nil, false
}

// Assign binds name in the frame: a local inside a call, the scope at top level.
func (fr *Frame) Assign(name string, v Value) {
	if fr.Fn == nil && fr.Scope != nil {
		fr.Scope.Set(name, v)
		return
	}

	if fr.Locals == nil {
		fr.Locals = make(map[string]Value)
	}

	fr.Locals[name] = v
}
