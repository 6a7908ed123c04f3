// Package catalog loads the options a combobox host offers. Loading is a
// one-shot, synchronous step done before the UI starts.
package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	appErrors "ariacombo/internal/errors"
)

// Item is one option as stored in a source.
type Item struct {
	ID          string `yaml:"id,omitempty" toml:"id,omitempty"`
	Label       string `yaml:"label" toml:"label"`
	Value       any    `yaml:"value,omitempty" toml:"value,omitempty"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty"`
}

// Payload returns the value handed back on selection: Value when set,
// otherwise the label.
func (it Item) Payload() any {
	if it.Value != nil {
		return it.Value
	}
	return it.Label
}

// Source yields items in display order.
type Source interface {
	Load(ctx context.Context) ([]Item, error)
}

// Open picks a source from a path's extension. An empty path yields the
// built-in sample.
func Open(path, table string) (Source, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Sample(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLFile{Path: path}, nil
	case ".toml":
		return TOMLFile{Path: path}, nil
	case ".db", ".sqlite", ".sqlite3":
		return SQLite{Path: path, Table: table}, nil
	}
	return nil, appErrors.New(appErrors.CodeSourceUnsupported, fmt.Sprintf("unsupported option source %q (want .yaml, .yml, .toml, .db, .sqlite)", path), nil)
}

// Static is an in-memory source.
type Static []Item

// Load implements Source.
func (s Static) Load(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Item, len(s))
	copy(out, s)
	return out, validate(out)
}

// Sample returns the options shown when no source is configured.
func Sample() Static {
	return Static{
		{ID: "go", Label: "Go", Value: "go", Description: "Statically typed, compiled, with **goroutines** and channels."},
		{ID: "rust", Label: "Rust", Value: "rust", Description: "Memory safety without a garbage collector."},
		{ID: "zig", Label: "Zig", Value: "zig", Description: "A small language with `comptime`."},
		{ID: "ocaml", Label: "OCaml", Value: "ocaml", Description: "ML family, with a fast native compiler."},
		{ID: "elixir", Label: "Elixir", Value: "elixir", Description: "Runs on the BEAM virtual machine."},
		{ID: "haskell", Label: "Haskell", Value: "haskell", Description: "Lazy, purely functional."},
		{ID: "kotlin", Label: "Kotlin", Value: "kotlin", Description: "JVM language with null safety in the type system."},
		{ID: "python", Label: "Python", Value: "python", Description: "Batteries included."},
	}
}

// validate rejects items without a label and duplicate explicit ids.
func validate(items []Item) error {
	seen := make(map[string]int, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.Label) == "" && it.Value == nil {
			return appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("option %d has neither label nor value", i+1), nil)
		}
		if it.ID == "" {
			continue
		}
		if prev, ok := seen[it.ID]; ok {
			return appErrors.New(appErrors.CodeDuplicateOption, fmt.Sprintf("option id %q used by options %d and %d", it.ID, prev+1, i+1), nil)
		}
		seen[it.ID] = i
	}
	return nil
}
