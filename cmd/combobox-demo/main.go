// Demo program with two comboboxes sharing one screen. The host owns focus:
// tab moves it between the fields and each blur collapses the field left.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ariacombo/internal/ui"
)

type model struct {
	fields   []ui.Combobox
	focus    int
	selected []string
	quit     bool
}

func newField(id, label string, values ...string) ui.Combobox {
	options := make([]ui.Option, len(values))
	for i, v := range values {
		options[i] = ui.NewOption(v, ui.WithID(fmt.Sprintf("%s-%d", id, i)))
	}
	return ui.NewCombobox(ui.ComboboxProps{
		ID:          id,
		Label:       label,
		Placeholder: "Select...",
		AutoExpand:  true,
		MaxVisible:  4,
		Classes: ui.Classes{
			ui.SlotLabel: labelStyle,
		},
	}, options...)
}

func initialModel() model {
	fields := []ui.Combobox{
		newField("assignee", "Assignee", "Alice", "Bob", "Carlos", "Diana", "Edward", "Fiona"),
		newField("priority", "Priority", "P0", "P1", "P2", "P3"),
	}
	return model{
		fields:   fields,
		selected: make([]string, len(fields)),
	}
}

func (m model) Init() tea.Cmd {
	return m.fields[m.focus].Focus()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "tab", "shift+tab":
			step := 1
			if msg.String() == "shift+tab" {
				step = len(m.fields) - 1
			}
			m.fields[m.focus].Blur()
			m.focus = (m.focus + step) % len(m.fields)
			return m, m.fields[m.focus].Focus()
		}

	case ui.OptionSelectedMsg:
		m.selected[m.focus] = fmt.Sprint(msg.Value)
		m.fields[m.focus].SetValue(m.selected[m.focus])
		return m, nil

	case ui.ValueChangedMsg:
		return m, nil
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)
)

func (m model) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Combobox Demo"))
	b.WriteString("\n")
	for i, f := range m.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
		if m.selected[i] != "" {
			b.WriteString("Selected: " + selectedStyle.Render(m.selected[i]) + "\n")
		}
	}
	if announce := m.fields[m.focus].Announcement(); announce != "" {
		b.WriteString(helpStyle.Render(announce))
	}
	b.WriteString(helpStyle.Render("\n↑/↓ move • Enter select • Esc close • alt+enter open • tab next field • ctrl+c quit"))
	return b.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
