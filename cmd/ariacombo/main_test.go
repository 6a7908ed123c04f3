package main

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ariacombo/internal/config"
	appErrors "ariacombo/internal/errors"
	"ariacombo/internal/ui"
)

func parseFlags(t *testing.T, args ...string) runtimeOptions {
	t.Helper()
	fs := flag.NewFlagSet("ariacombo", flag.ContinueOnError)
	flags := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	visited := map[string]struct{}{}
	fs.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})
	return computeRuntimeOptions(fs, flags, visited)
}

func TestComputeRuntimeOptionsDefaults(t *testing.T) {
	cleanup := config.ResetForTesting(t)
	defer cleanup()

	got := parseFlags(t)
	if !got.autoExpand {
		t.Error("expected auto-expand to default on")
	}
	if got.collapseOnSelect {
		t.Error("expected collapse-on-select to default off")
	}
	if got.position != "below" {
		t.Errorf("position = %q, want below", got.position)
	}
	if got.maxVisible != config.DefaultMaxVisible {
		t.Errorf("maxVisible = %d, want %d", got.maxVisible, config.DefaultMaxVisible)
	}
	if got.mode != "release" {
		t.Errorf("mode = %q, want release", got.mode)
	}
	if got.table != config.DefaultSourceTable {
		t.Errorf("table = %q, want %q", got.table, config.DefaultSourceTable)
	}
}

func TestComputeRuntimeOptionsFlagsOverrideConfig(t *testing.T) {
	cleanup := config.ResetForTesting(t)
	defer cleanup()
	if err := config.ApplyOverrides(map[string]any{
		config.KeyListboxPosition: "above",
		config.KeyMode:            "debug",
	}); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}

	got := parseFlags(t, "--position", "  Below ", "--auto-expand=false", "--max-visible", "0", "--source", " opts.yaml ")
	if got.position != "below" {
		t.Errorf("position = %q, want below", got.position)
	}
	if got.autoExpand {
		t.Error("expected explicit --auto-expand=false to win")
	}
	if got.maxVisible != config.DefaultMaxVisible {
		t.Errorf("expected non-positive max-visible to fall back, got %d", got.maxVisible)
	}
	if got.source != "opts.yaml" {
		t.Errorf("source = %q, want opts.yaml", got.source)
	}
	if got.mode != "debug" {
		t.Errorf("expected unset flag to keep config mode, got %q", got.mode)
	}
}

func TestFlagWasExplicitlySet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("label", "x", "")
	fs.String("theme", "x", "")
	if err := fs.Set("theme", "nord"); err != nil {
		t.Fatal(err)
	}
	visited := map[string]struct{}{"label": {}}

	if !flagWasExplicitlySet(fs, "label", visited) {
		t.Error("expected visited flag to count as set")
	}
	if !flagWasExplicitlySet(fs, "theme", visited) {
		t.Error("expected changed value to count as set")
	}
	if flagWasExplicitlySet(fs, "missing", visited) {
		t.Error("expected unknown flag to be unset")
	}
}

func baseOptions() runtimeOptions {
	return runtimeOptions{
		autoExpand: true,
		position:   "below",
		maxVisible: 5,
		mode:       "release",
		theme:      "tokyonight",
		table:      "options",
		label:      "Language",
	}
}

func TestRunDumpA11y(t *testing.T) {
	opts := baseOptions()
	opts.dumpA11y = true

	var out bytes.Buffer
	err := run(opts, &out, func(*ui.App) programRunner {
		t.Fatal("program should not start when dumping the tree")
		return nil
	})
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	dump := out.String()
	for _, want := range []string{"role: combobox", "role: listbox", "aria-controls: demo-listbox", "for: demo-input"} {
		if !strings.Contains(dump, want) {
			t.Errorf("expected dump to contain %q:\n%s", want, dump)
		}
	}
	if strings.Contains(dump, "aria-activedescendant") {
		t.Errorf("expected no active descendant right after focus:\n%s", dump)
	}
}

func TestRunStartsProgram(t *testing.T) {
	prog := &countingProgram{}
	var gotApp *ui.App
	err := run(baseOptions(), &bytes.Buffer{}, func(app *ui.App) programRunner {
		gotApp = app
		return prog
	})
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if prog.runs != 1 {
		t.Fatalf("expected program to run once, got %d", prog.runs)
	}
	if gotApp == nil || len(gotApp.Combobox().Options()) == 0 {
		t.Fatal("expected app with sample options")
	}
}

func TestRunErrors(t *testing.T) {
	t.Run("InvalidMode", func(t *testing.T) {
		opts := baseOptions()
		opts.mode = "loud"
		err := run(opts, &bytes.Buffer{}, nil)
		if !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
			t.Fatalf("expected configuration error, got %v", err)
		}
	})

	t.Run("UnsupportedSource", func(t *testing.T) {
		opts := baseOptions()
		opts.source = "options.csv"
		err := run(opts, &bytes.Buffer{}, nil)
		if !appErrors.IsCode(err, appErrors.CodeSourceUnsupported) {
			t.Fatalf("expected unsupported source, got %v", err)
		}
	})

	t.Run("ProgramFailure", func(t *testing.T) {
		boom := errors.New("boom")
		err := run(baseOptions(), &bytes.Buffer{}, func(*ui.App) programRunner {
			return &countingProgram{err: boom}
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped program error, got %v", err)
		}
	})

	t.Run("NilFactory", func(t *testing.T) {
		if err := run(baseOptions(), &bytes.Buffer{}, nil); err == nil {
			t.Fatal("expected error for nil factory")
		}
	})
}

type countingProgram struct {
	runs int
	err  error
}

func (p *countingProgram) Run() (tea.Model, error) {
	p.runs++
	return nil, p.err
}

func TestRunAccessiblePrompt(t *testing.T) {
	prev := stdin
	stdin = strings.NewReader("2\n")
	t.Cleanup(func() { stdin = prev })

	opts := baseOptions()
	opts.accessible = true
	var out bytes.Buffer
	err := run(opts, &out, func(*ui.App) programRunner {
		t.Fatal("program should not start in accessible mode")
		return nil
	})
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Selected: Rust (rust)") {
		t.Errorf("expected second sample option selected, got:\n%s", out.String())
	}
}

func TestPromptAccessibleNoOptions(t *testing.T) {
	if _, err := promptAccessible(nil, "Pick", strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Fatal("expected error without options")
	}
}
