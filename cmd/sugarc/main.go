package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sugarc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sugarc",
	Short: "Syntax extension rewriter for typed host sources",
	Long:  `sugarc rewrites custom operators, higher-kinded-type sugar, and macro decorators into plain host-language code`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
