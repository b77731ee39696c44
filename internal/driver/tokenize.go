package driver

import (
	"sugarc/internal/lexer"
	"sugarc/internal/optable"
	"sugarc/internal/source"
	"sugarc/internal/token"
)

// TokenizeResult содержит результат токенизации одного файла
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
}

// Tokenize loads one file and returns its merged token stream. A nil table
// means the default operators.
func Tokenize(path string, table *optable.Table) (*TokenizeResult, error) {
	if table == nil {
		table = optable.Default()
	}
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	tokens := lexer.TokenizeMerged(fileSet.Get(fileID), table)
	return &TokenizeResult{FileSet: fileSet, FileID: fileID, Tokens: tokens}, nil
}
