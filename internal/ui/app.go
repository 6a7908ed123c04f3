package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ariacombo/internal/catalog"
	"ariacombo/internal/config"
	"ariacombo/internal/debug"
	"ariacombo/internal/listbox"
	"ariacombo/internal/ui/theme"
)

const (
	minPreviewWidth  = 20
	minPreviewHeight = 3
	headerHeight     = 2
)

// Config configures the demo host.
type Config struct {
	Items            []catalog.Item
	Label            string
	Placeholder      string
	AutoExpand       bool
	CollapseOnSelect bool
	Position         Position
	MaxVisible       int
	Portal           bool
	Mode             listbox.Mode
	OutputFormat     string
	Version          string
}

// App is a small Bubble Tea program hosting one Combobox: it filters the
// options as the user types, previews the selected option and reports
// what assistive technology would announce.
type App struct {
	combo    Combobox
	all      []Option
	items    map[string]catalog.Item
	keys     AppKeyMap
	preview  viewport.Model
	selected *catalog.Item

	status       string
	outputFormat string
	version      string
	width        int
	height       int

	copyToClipboard func(string) error
	saveTheme       func(string) error
}

// NewApp builds the host from cfg.
func NewApp(cfg Config) *App {
	items := make(map[string]catalog.Item, len(cfg.Items))
	options := make([]Option, 0, len(cfg.Items))
	for _, it := range cfg.Items {
		setters := []OptionSetter{WithContent(it.Label)}
		if it.ID != "" {
			setters = append(setters, WithID(it.ID))
		}
		opt := NewOption(it.Payload(), setters...)
		items[opt.ID()] = it
		options = append(options, opt)
	}

	classes := Classes{}
	if cfg.Portal {
		classes[SlotPortal] = defaultSlotStyle(SlotPortal).
			Background(currentTheme().Background)
	}

	combo := NewCombobox(ComboboxProps{
		ID:               "demo",
		Label:            cfg.Label,
		Placeholder:      cfg.Placeholder,
		AutoExpand:       cfg.AutoExpand,
		CollapseOnSelect: cfg.CollapseOnSelect,
		Position:         cfg.Position,
		MaxVisible:       cfg.MaxVisible,
		Portal:           cfg.Portal,
		Classes:          classes,
		Mode:             cfg.Mode,
		InputAttrs:       map[string]string{"aria-describedby": "demo-status"},
	}, options...)
	combo.SetOrigin(0, headerHeight)

	return &App{
		combo:           combo,
		all:             options,
		items:           items,
		keys:            DefaultAppKeyMap(),
		preview:         viewport.New(minPreviewWidth, minPreviewHeight),
		outputFormat:    cfg.OutputFormat,
		version:         cfg.Version,
		copyToClipboard: clipboard.WriteAll,
		saveTheme:       config.SaveTheme,
	}
}

// Combobox exposes the hosted widget, mainly for --dump-a11y.
func (m *App) Combobox() Combobox {
	return m.combo
}

// Selected returns the last selected item.
func (m *App) Selected() (catalog.Item, bool) {
	if m.selected == nil {
		return catalog.Item{}, false
	}
	return *m.selected, true
}

// Init implements tea.Model.
func (m *App) Init() tea.Cmd {
	return m.combo.Focus()
}

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layoutPreview()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Copy):
			m.copySelection()
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			m.cycleTheme()
			return m, nil
		}

	case OptionSelectedMsg:
		m.selectOption(msg)
		return m, nil

	case ValueChangedMsg:
		m.combo.SetOptions(FilterOptions(m.all, msg.Value))
		return m, nil
	}

	var cmd tea.Cmd
	m.combo, cmd = m.combo.Update(msg)
	return m, cmd
}

func (m *App) selectOption(msg OptionSelectedMsg) {
	it, ok := m.items[msg.ID]
	if !ok {
		debug.Logf("app: selection of unknown option %s", msg.ID)
		return
	}
	m.selected = &it
	m.combo.SetValue(it.Label)
	m.status = ""
	m.layoutPreview()
}

func (m *App) copySelection() {
	if m.selected == nil {
		m.status = "Nothing selected."
		return
	}
	text := fmt.Sprint(m.selected.Payload())
	if err := m.copyToClipboard(text); err != nil {
		debug.Logf("app: clipboard: %v", err)
		m.status = "Clipboard unavailable."
		return
	}
	m.status = fmt.Sprintf("Copied '%s' to clipboard.", text)
}

func (m *App) cycleTheme() {
	name := theme.CycleTheme()
	if err := m.saveTheme(name); err != nil {
		debug.Logf("app: save theme: %v", err)
		m.status = fmt.Sprintf("Theme: %s (not saved)", name)
		return
	}
	m.status = fmt.Sprintf("Theme: %s", name)
	m.layoutPreview()
}

func (m *App) layoutPreview() {
	width := m.width - 2
	if width < minPreviewWidth {
		width = minPreviewWidth
	}
	used := headerHeight + lipgloss.Height(m.combo.View()) + 4
	height := m.height - used
	if height < minPreviewHeight {
		height = minPreviewHeight
	}
	m.preview.Width = width
	m.preview.Height = height

	if m.selected == nil || strings.TrimSpace(m.selected.Description) == "" {
		m.preview.SetContent("")
		return
	}
	render := buildMarkdownRenderer(m.outputFormat, width)
	m.preview.SetContent(render(m.selected.Description))
}

// View implements tea.Model.
func (m *App) View() string {
	title := "ariacombo"
	if m.version != "" {
		title += " v" + m.version
	}
	header := styleAppHeader().Render(title)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.combo.View())
	b.WriteString("\n")

	if announce := m.combo.Announcement(); announce != "" {
		b.WriteString(styleHint().Render(announce))
	}
	b.WriteString("\n")
	if m.selected != nil {
		b.WriteString("Selected: " + styleSelection().Render(m.selected.Label))
	}
	b.WriteString("\n")
	if content := m.preview.View(); strings.TrimSpace(content) != "" {
		b.WriteString(content)
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(styleHint().Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(styleHint().Render(helpLine(m.combo.Keys(), m.keys)))

	frame, cb := ComposePortal(b.String(), m.combo, 0, headerHeight)
	m.combo = cb
	return frame
}

func helpLine(keys KeyMap, app AppKeyMap) string {
	bindings := append(keys.ShortHelp(), app.Copy, app.Theme, app.Quit)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func styleAppHeader() lipgloss.Style {
	th := currentTheme()
	return lipgloss.NewStyle().
		Foreground(th.Background).
		Background(th.Primary).
		Bold(true).
		Padding(0, 1)
}

func styleSelection() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentTheme().Accent).Bold(true)
}
