// Package token defines the lexical vocabulary of the host language as seen
// by the rewrite engine: token kinds, spans, and leading trivia.
//
// The engine never builds an AST; every downstream pass works directly on the
// token list produced here.
package token
