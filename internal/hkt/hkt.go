// Package hkt implements the higher-kinded-type sugar of the rewrite engine:
// kind-polymorphic parameter declarations (F<_>), their scoped usages (F<A>),
// and concrete resolution of tracked type-function applications
// ($<OptionF, number> -> Option<number>).
//
// Usage normalization emits the explicit two-slot application form
// Kind<F, A> — the application spelled out through the Kind head is the one
// shape that stays parseable in type position once the declaration's
// placeholder list has been stripped.
//
// Everything here is token-driven; there is no AST. Scope is inferred by
// delimiter-depth scanning, so every unresolvable or ill-formed candidate is
// skipped silently rather than guessed at.
package hkt

import (
	"sugarc/internal/edit"
	"sugarc/internal/imports"
	"sugarc/internal/stream"
)

// Options selects the rewrite flavor.
type Options struct {
	// Format leaves recoverable marker comments instead of full rewrites,
	// for round-tripping through an external formatter.
	Format bool
}

// Apply runs the four phases over the stream and collects edits into set.
// Usage normalization and concrete resolution share one resolution pass:
// either kind of span can nest inside the other, and the outer rewrite must
// splice the inner's resolved text.
func Apply(st *stream.Stream, tracked *imports.Tracked, set *edit.Set, opts Options) {
	decls := discoverDecls(st)

	var usages []Usage
	if len(decls) > 0 {
		usages = discoverUsages(st, decls)
		rewriteDecls(st, decls, set, opts)
	}

	if !opts.Format {
		cands := collectConcrete(st, tracked, decls)
		resolveAll(st, usages, cands, set)
	}
}
