package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ariacombo/internal/catalog"
	"ariacombo/internal/config"
	"ariacombo/internal/debug"
	"ariacombo/internal/listbox"
	"ariacombo/internal/ui"
	"ariacombo/internal/ui/theme"
)

const loadTimeout = 5 * time.Second

var stdin io.Reader = os.Stdin

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	flags := registerFlags(flag.CommandLine)
	flag.Parse()

	if *flags.version {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	opts := computeRuntimeOptions(flag.CommandLine, flags, visited)
	if err := run(opts, os.Stdout, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

type runtimeFlags struct {
	version          *bool
	debug            *bool
	dumpA11y         *bool
	accessible       *bool
	autoExpand       *bool
	collapseOnSelect *bool
	portal           *bool
	position         *string
	maxVisible       *int
	mode             *string
	theme            *string
	source           *string
	table            *string
	outputFormat     *string
	label            *string
}

func registerFlags(fs *flag.FlagSet) runtimeFlags {
	return runtimeFlags{
		version:          fs.Bool("version", false, "Print version information and exit"),
		debug:            fs.Bool("debug", false, "Write a debug log to ~/.ariacombo/debug.log"),
		dumpA11y:         fs.Bool("dump-a11y", false, "Print the focused combobox's accessibility tree as YAML and exit"),
		accessible:       fs.Bool("accessible", false, "Ask with numbered line prompts instead of the full-screen UI"),
		autoExpand:       fs.Bool("auto-expand", config.GetBool(config.KeyAutoExpand), "Open the listbox on focus and on typing"),
		collapseOnSelect: fs.Bool("collapse-on-select", config.GetBool(config.KeyCollapseOnSelect), "Close the listbox after a selection"),
		portal:           fs.Bool("portal", config.GetBool(config.KeyListboxPortal), "Draw the listbox as an overlay above the page"),
		position:         fs.String("position", config.GetString(config.KeyListboxPosition), "Listbox position relative to the input (below, above)"),
		maxVisible:       fs.Int("max-visible", config.GetInt(config.KeyListboxMax), "Number of options visible at once"),
		mode:             fs.String("mode", config.GetString(config.KeyMode), "Integration checks: debug fails loudly, release degrades silently"),
		theme:            fs.String("theme", config.GetString(config.KeyTheme), "Color theme"),
		source:           fs.String("source", config.GetString(config.KeySourcePath), "Options file (.yaml, .toml or .db); empty uses a built-in sample"),
		table:            fs.String("table", config.GetString(config.KeySourceTable), "SQLite table holding the options"),
		outputFormat:     fs.String("output-format", config.GetString(config.KeyOutputFormat), "Preview markdown style (rich, light, plain)"),
		label:            fs.String("label", config.GetString(config.KeyLabel), "Label shown above the input"),
	}
}

type runtimeOptions struct {
	debug            bool
	dumpA11y         bool
	accessible       bool
	autoExpand       bool
	collapseOnSelect bool
	portal           bool
	position         string
	maxVisible       int
	mode             string
	theme            string
	source           string
	table            string
	outputFormat     string
	label            string
}

// computeRuntimeOptions resolves each setting from config, letting a flag
// win only when it was given explicitly.
func computeRuntimeOptions(fs *flag.FlagSet, flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	set := func(name string) bool { return flagWasExplicitlySet(fs, name, visited) }

	opts := runtimeOptions{
		debug:            *flags.debug,
		dumpA11y:         *flags.dumpA11y,
		accessible:       *flags.accessible,
		autoExpand:       config.GetBool(config.KeyAutoExpand),
		collapseOnSelect: config.GetBool(config.KeyCollapseOnSelect),
		portal:           config.GetBool(config.KeyListboxPortal),
		position:         config.GetString(config.KeyListboxPosition),
		maxVisible:       config.GetInt(config.KeyListboxMax),
		mode:             config.GetString(config.KeyMode),
		theme:            config.GetString(config.KeyTheme),
		source:           config.GetString(config.KeySourcePath),
		table:            config.GetString(config.KeySourceTable),
		outputFormat:     config.GetString(config.KeyOutputFormat),
		label:            config.GetString(config.KeyLabel),
	}
	if set("auto-expand") {
		opts.autoExpand = *flags.autoExpand
	}
	if set("collapse-on-select") {
		opts.collapseOnSelect = *flags.collapseOnSelect
	}
	if set("portal") {
		opts.portal = *flags.portal
	}
	if set("position") {
		opts.position = *flags.position
	}
	if set("max-visible") {
		opts.maxVisible = *flags.maxVisible
	}
	if set("mode") {
		opts.mode = *flags.mode
	}
	if set("theme") {
		opts.theme = *flags.theme
	}
	if set("source") {
		opts.source = *flags.source
	}
	if set("table") {
		opts.table = *flags.table
	}
	if set("output-format") {
		opts.outputFormat = *flags.outputFormat
	}
	if set("label") {
		opts.label = *flags.label
	}

	opts.position = strings.ToLower(strings.TrimSpace(opts.position))
	opts.source = strings.TrimSpace(opts.source)
	if opts.maxVisible <= 0 {
		opts.maxVisible = config.DefaultMaxVisible
	}
	return opts
}

func flagWasExplicitlySet(fs *flag.FlagSet, name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}

func run(opts runtimeOptions, out io.Writer, factory programFactory) error {
	if err := debug.Init(opts.debug); err != nil {
		return fmt.Errorf("initialize debug log: %w", err)
	}
	defer debug.Close()

	mode, err := listbox.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	if opts.theme != "" && !theme.SetTheme(opts.theme) {
		debug.Logf("unknown theme %q, keeping %s", opts.theme, theme.CurrentName())
	}

	src, err := catalog.Open(opts.source, opts.table)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	items, err := src.Load(ctx)
	cancel()
	if err != nil {
		return fmt.Errorf("load options: %w", err)
	}
	debug.Logf("loaded %d options from %q", len(items), opts.source)

	if opts.accessible {
		it, err := promptAccessible(items, opts.label, stdin, out)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "Selected: %s (%v)\n", it.Label, it.Payload())
		return err
	}

	app := ui.NewApp(ui.Config{
		Items:            items,
		Label:            opts.label,
		Placeholder:      "Type to filter...",
		AutoExpand:       opts.autoExpand,
		CollapseOnSelect: opts.collapseOnSelect,
		Position:         ui.ParsePosition(opts.position),
		MaxVisible:       opts.maxVisible,
		Portal:           opts.portal,
		Mode:             mode,
		OutputFormat:     opts.outputFormat,
		Version:          Version,
	})

	if opts.dumpA11y {
		app.Init()
		data, err := ui.MarshalA11y(app.Combobox().Accessibility())
		if err != nil {
			return fmt.Errorf("marshal accessibility tree: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}
