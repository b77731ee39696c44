// Package imports scans a file's own top-level import declarations against an
// allow-list of recognized modules and maps local names to known symbols.
//
// Tracking is the sole gate for concrete HKT resolution: absent a tracked
// import, no angle-bracket pattern is ever reinterpreted.
package imports

import (
	"sort"

	"sugarc/internal/optable"
)

// SymbolKind classifies a tracked symbol.
type SymbolKind uint8

const (
	// SymbolOperator is a type-application operator (the Kind head).
	SymbolOperator SymbolKind = iota
	// SymbolTypeFunc is a type function mapping an argument to a concrete
	// instantiated type.
	SymbolTypeFunc
	// SymbolDecorator is a macro decorator rewritten into a call form.
	SymbolDecorator
)

// Symbol describes one recognized export of a tracked module.
type Symbol struct {
	Kind SymbolKind
	// Canonical is the exporting module's name for the symbol, independent
	// of any local alias.
	Canonical string
	// Concrete is the concrete type a type function resolves to.
	Concrete string
	// Parameterized marks type functions that carry their own fixed
	// argument list, e.g. EitherF<string>.
	Parameterized bool
}

// Registry is the allow-list of recognized modules and their exports.
// Read-only after setup.
type Registry struct {
	modules map[string]map[string]Symbol
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]map[string]Symbol)}
}

// DefaultRegistry returns the built-in allow-list: the application operator,
// the shipped type functions, and the macro decorators.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Add("sugar/hkt", "$", Symbol{Kind: SymbolOperator, Canonical: "Kind"})
	r.Add("sugar/hkt", "Kind", Symbol{Kind: SymbolOperator, Canonical: "Kind"})
	r.Add("sugar/hkt/option", "OptionF", Symbol{Kind: SymbolTypeFunc, Canonical: "OptionF", Concrete: "Option"})
	r.Add("sugar/hkt/list", "ListF", Symbol{Kind: SymbolTypeFunc, Canonical: "ListF", Concrete: "List"})
	r.Add("sugar/hkt/array", "ArrayF", Symbol{Kind: SymbolTypeFunc, Canonical: "ArrayF", Concrete: "Array"})
	r.Add("sugar/hkt/either", "EitherF", Symbol{Kind: SymbolTypeFunc, Canonical: "EitherF", Concrete: "Either", Parameterized: true})
	r.Add("sugar/macros", "instance", Symbol{Kind: SymbolDecorator, Canonical: "instance"})
	r.Add("sugar/macros", "derive", Symbol{Kind: SymbolDecorator, Canonical: "derive"})
	return r
}

// Add registers one export of a module.
func (r *Registry) Add(module, name string, sym Symbol) {
	exports, ok := r.modules[module]
	if !ok {
		exports = make(map[string]Symbol)
		r.modules[module] = exports
	}
	exports[name] = sym
}

// Module returns the export table of a recognized module.
func (r *Registry) Module(name string) (map[string]Symbol, bool) {
	exports, ok := r.modules[name]
	return exports, ok
}

// Modules returns the recognized module names in sorted order.
func (r *Registry) Modules() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exports returns the export names of a module in sorted order.
func (r *Registry) Exports(module string) []string {
	exports, ok := r.modules[module]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(exports))
	for name := range exports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply extends the registry with modules from a sugar.toml config.
func (r *Registry) Apply(cfg optable.Config) {
	for _, mod := range cfg.Modules {
		for _, sc := range mod.Symbols {
			sym := Symbol{Canonical: sc.Name, Concrete: sc.Concrete, Parameterized: sc.Parameterized}
			switch sc.Kind {
			case "operator":
				sym.Kind = SymbolOperator
				if sym.Concrete != "" {
					sym.Canonical = sym.Concrete
				}
			case "typefunc":
				sym.Kind = SymbolTypeFunc
			case "decorator":
				sym.Kind = SymbolDecorator
			default:
				continue
			}
			r.Add(mod.Name, sc.Name, sym)
		}
	}
}
