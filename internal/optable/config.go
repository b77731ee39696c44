package optable

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the decoded sugar.toml manifest: extra operators plus extra
// tracked modules for the import scanner.
type Config struct {
	Operators []OperatorConfig `toml:"operators"`
	Modules   []ModuleConfig   `toml:"modules"`
}

// OperatorConfig is one [[operators]] entry.
type OperatorConfig struct {
	Symbol     string `toml:"symbol"`
	Precedence int    `toml:"precedence"`
	Assoc      string `toml:"assoc"`
	Call       string `toml:"call"`
}

// ModuleConfig is one [[modules]] entry extending the import allow-list.
type ModuleConfig struct {
	Name    string         `toml:"name"`
	Symbols []SymbolConfig `toml:"symbols"`
}

// SymbolConfig is one exported symbol of a tracked module.
type SymbolConfig struct {
	Name          string `toml:"name"`
	Kind          string `toml:"kind"` // operator | typefunc | decorator
	Concrete      string `toml:"concrete"`
	Parameterized bool   `toml:"parameterized"`
}

// FindManifest walks upward from startDir looking for sugar.toml.
func FindManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "sugar.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadConfig parses a sugar.toml manifest.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for i, op := range cfg.Operators {
		if strings.TrimSpace(op.Symbol) == "" {
			return Config{}, fmt.Errorf("%s: [[operators]] entry %d: missing symbol", path, i+1)
		}
		switch op.Assoc {
		case "", "left", "right":
		default:
			return Config{}, fmt.Errorf("%s: operator %q: assoc must be left or right, got %q", path, op.Symbol, op.Assoc)
		}
	}
	for i, mod := range cfg.Modules {
		if strings.TrimSpace(mod.Name) == "" {
			return Config{}, fmt.Errorf("%s: [[modules]] entry %d: missing name", path, i+1)
		}
		for _, sym := range mod.Symbols {
			if strings.TrimSpace(sym.Name) == "" {
				return Config{}, fmt.Errorf("%s: module %q: symbol with empty name", path, mod.Name)
			}
			switch sym.Kind {
			case "operator", "typefunc", "decorator":
			default:
				return Config{}, fmt.Errorf("%s: module %q: symbol %q: unknown kind %q", path, mod.Name, sym.Name, sym.Kind)
			}
		}
	}
	return cfg, nil
}

// Apply merges the configured operators into the table.
func (t *Table) Apply(cfg Config) {
	for _, op := range cfg.Operators {
		assoc := AssocLeft
		if op.Assoc == "right" {
			assoc = AssocRight
		}
		t.Register(Def{
			Symbol:     op.Symbol,
			Precedence: op.Precedence,
			Assoc:      assoc,
			Call:       op.Call,
		})
	}
}
