package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sugarc/internal/driver"
	"sugarc/internal/rewrite"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [flags] <file-or-dir>",
	Short: "Rewrite syntax extensions into plain host code",
	Long: `Rewrite expands custom operators, HKT sugar, and macro decorators.
A single file prints to stdout unless --write is given; a directory always
requires --write or --out-dir.`,
	Args: cobra.ExactArgs(1),
	RunE: runRewrite,
}

func init() {
	rewriteCmd.Flags().Bool("write", false, "write results back in place")
	rewriteCmd.Flags().String("out-dir", "", "write results into this directory, mirroring the input tree")
	rewriteCmd.Flags().Bool("map", false, "emit a source map next to each changed output")
	rewriteCmd.Flags().Bool("format-mode", false, "leave recoverable markers instead of full rewrites")
	rewriteCmd.Flags().Bool("no-cache", false, "bypass the result cache")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	write, _ := cmd.Flags().GetBool("write")
	outDir, _ := cmd.Flags().GetString("out-dir")
	withMap, _ := cmd.Flags().GetBool("map")
	formatMode, _ := cmd.Flags().GetBool("format-mode")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	jobs, _ := cmd.Root().PersistentFlags().GetInt("jobs")

	table, registry, err := loadSetup(inputPath)
	if err != nil {
		return err
	}

	opts := rewrite.Options{
		Table:    table,
		Registry: registry,
		WithMap:  withMap,
	}
	if formatMode {
		opts.Mode = rewrite.ModeFormat
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return rewriteOne(cmd, inputPath, opts, write, outDir)
	}

	if !write && outDir == "" {
		return fmt.Errorf("rewriting a directory requires --write or --out-dir")
	}

	var cache *driver.DiskCache
	if !noCache {
		// ошибка открытия кэша не фатальна, работаем без него
		cache, _ = driver.OpenDiskCache("sugarc")
	}

	_, results, err := driver.RewriteDir(context.Background(), inputPath, opts, cache, jobs)
	if err != nil {
		return err
	}

	failed := 0
	changed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		if err := emitResult(inputPath, r.Path, r.Result, write, outDir); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, err)
			continue
		}
		if r.Result.Changed {
			changed++
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", changedMark(cmd), r.Path)
			}
		}
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%d file(s), %d changed\n", len(results), changed)
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

// rewriteOne handles the single-file form: stdout by default, in-place or
// mirrored with --write / --out-dir.
func rewriteOne(cmd *cobra.Command, path string, opts rewrite.Options, write bool, outDir string) error {
	res, err := driver.RewriteFile(path, opts)
	if err != nil {
		return err
	}
	if !write && outDir == "" {
		fmt.Fprint(cmd.OutOrStdout(), res.Code)
		if res.Map != nil {
			if err := os.WriteFile(path+".map", res.Map, 0o644); err != nil {
				return err
			}
		}
		return nil
	}
	return emitResult(filepath.Dir(path), path, res, write, outDir)
}

// emitResult writes one rewrite result to its destination. Unchanged files
// are written too when mirroring into --out-dir, so the output tree is
// complete; in-place mode leaves them untouched.
func emitResult(root, path string, res rewrite.Result, write bool, outDir string) error {
	dest := path
	if outDir != "" {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		dest = filepath.Join(outDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
	} else if !res.Changed {
		return nil
	}
	if err := os.WriteFile(dest, []byte(res.Code), 0o644); err != nil {
		return err
	}
	if res.Map != nil {
		return os.WriteFile(dest+".map", res.Map, 0o644)
	}
	return nil
}

func changedMark(cmd *cobra.Command) string {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	if colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)) {
		return color.New(color.FgGreen, color.Bold).Sprint("rewrote")
	}
	return "rewrote"
}
