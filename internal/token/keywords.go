package token

var keywords = map[string]Kind{
	"import":    KwImport,
	"export":    KwExport,
	"from":      KwFrom,
	"as":        KwAs,
	"const":     KwConst,
	"let":       KwLet,
	"var":       KwVar,
	"type":      KwType,
	"interface": KwInterface,
	"extends":   KwExtends,
	"function":  KwFunction,
	"class":     KwClass,
	"return":    KwReturn,
	"new":       KwNew,
}

// LookupKeyword returns the keyword kind for the given identifier text.
// Keywords are case-sensitive (lowercase only).
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
