// Package rewrite runs the full extension pipeline over one source file:
// tokenize and merge operators, track imports, collect replacements from the
// HKT, infix, and decorator extensions, and apply them in a single pass.
package rewrite

import (
	"sugarc/internal/decorator"
	"sugarc/internal/edit"
	"sugarc/internal/hkt"
	"sugarc/internal/imports"
	"sugarc/internal/infix"
	"sugarc/internal/lexer"
	"sugarc/internal/optable"
	"sugarc/internal/source"
	"sugarc/internal/stream"
)

// Mode selects the rewrite flavor.
type Mode uint8

const (
	// ModeMacro performs the full rewrite into plain host-language code.
	ModeMacro Mode = iota
	// ModeFormat replaces only HKT declaration placeholders with recoverable
	// marker comments so the file stays parseable for an external formatter.
	ModeFormat
)

// Options configures one rewrite run.
type Options struct {
	Mode Mode
	// Table is the operator table; nil means the default operators.
	Table *optable.Table
	// Registry is the import allow-list; nil means the built-in registry.
	Registry *imports.Registry
	// WithMap requests a source-map-v3 document for changed files.
	WithMap bool
}

// Result is the outcome of rewriting one file.
type Result struct {
	// Code is the rewritten text; byte-identical to the input when no
	// extension fired.
	Code string
	// Changed reports whether Code differs from the input.
	Changed bool
	// Map is the source-map-v3 JSON document, nil unless requested and
	// changed.
	Map []byte
}

// File rewrites one source file.
func File(file *source.File, opts Options) Result {
	table := opts.Table
	if table == nil {
		table = optable.Default()
	}
	reg := opts.Registry
	if reg == nil {
		reg = imports.DefaultRegistry()
	}

	st := stream.New(file, lexer.TokenizeMerged(file, table))
	tracked := imports.Track(st, reg)
	set := edit.NewSet(file)

	hkt.Apply(st, tracked, set, hkt.Options{Format: opts.Mode == ModeFormat})
	if opts.Mode == ModeMacro {
		infix.Apply(st, table, set)
		decorator.Apply(st, tracked, set)
	}

	var res Result
	if opts.WithMap {
		res.Code, res.Changed, res.Map = set.ApplyWithMap()
	} else {
		res.Code, res.Changed = set.Apply()
	}
	return res
}

// Source is a convenience wrapper that wraps raw content in a virtual file
// and rewrites it. The path only determines the host kind.
func Source(path string, content []byte, opts Options) Result {
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, content)
	return File(fs.Get(id), opts)
}
