package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sugarc/internal/driver"
	"sugarc/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file>",
	Short: "Tokenize a host source file",
	Long:  `Tokenize dumps the merged token stream of a host source file, custom operators included`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

// tokenPayload is one token of the JSON dump.
type tokenPayload struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	table, _, err := loadSetup(filePath)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(filePath, table)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	switch format {
	case "pretty":
		return dumpTokensPretty(cmd, result)
	case "json":
		return dumpTokensJSON(cmd, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func dumpTokensPretty(cmd *cobra.Command, result *driver.TokenizeResult) error {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	kindColor := color.New(color.FgCyan)
	posColor := color.New(color.FgHiBlack)
	if !useColor {
		kindColor.DisableColor()
		posColor.DisableColor()
	}

	out := cmd.OutOrStdout()
	file := result.FileSet.Get(result.FileID)
	for _, tok := range result.Tokens {
		pos := file.LineColAt(tok.Span.Start)
		fmt.Fprintf(out, "%s %s",
			posColor.Sprintf("%4d:%-3d", pos.Line, pos.Col),
			kindColor.Sprint(tok.Kind.String()))
		if tok.IsLiteral() || tok.IsIdent() || tok.IsCustomOperator() {
			fmt.Fprintf(out, " %q", tok.Text)
		}
		fmt.Fprintln(out)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

func dumpTokensJSON(cmd *cobra.Command, result *driver.TokenizeResult) error {
	file := result.FileSet.Get(result.FileID)
	payload := make([]tokenPayload, 0, len(result.Tokens))
	for _, tok := range result.Tokens {
		pos := file.LineColAt(tok.Span.Start)
		payload = append(payload, tokenPayload{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Line:  pos.Line,
			Col:   pos.Col,
		})
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
