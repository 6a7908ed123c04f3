package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// listLine is one rendered row of the listbox. option indexes c.options,
// or is -1 for scroll hints and the empty placeholder.
type listLine struct {
	text   string
	option int
}

func (c Combobox) listboxLines() []listLine {
	if len(c.options) == 0 {
		return []listLine{{text: styleNoOptions().Render("  No options"), option: -1}}
	}

	var lines []listLine
	if c.scrollOffset > 0 {
		lines = append(lines, listLine{text: styleHint().Render("  ▲ more above"), option: -1})
	}
	end := c.scrollOffset + c.props.MaxVisible
	if end > len(c.options) {
		end = len(c.options)
	}
	for i := c.scrollOffset; i < end; i++ {
		opt := c.options[i]
		lines = append(lines, listLine{
			text:   opt.render(c.props.Width, c.tracker.Check(opt.ID())),
			option: i,
		})
	}
	if end < len(c.options) {
		lines = append(lines, listLine{text: styleHint().Render("  ▼ more below"), option: -1})
	}
	return lines
}

func (c Combobox) listboxBlock() string {
	lines := c.listboxLines()
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = l.text
	}
	return c.props.Classes.style(SlotListbox).Render(strings.Join(rows, "\n"))
}

func (c Combobox) labelBlock() string {
	if c.props.Label == "" {
		return ""
	}
	return c.props.Classes.style(SlotLabel).Render(c.props.Label)
}

func (c Combobox) inputBlock() string {
	style := c.props.Classes.style(SlotInput)
	if c.focused && !c.props.Classes.has(SlotInput) {
		style = focusedInput(style)
	}
	if !c.props.Classes.has(SlotInput) {
		style = style.Width(c.props.Width)
	}
	return style.Render(c.input.View())
}

func (c Combobox) showInline() bool {
	return *c.state == ComboboxExpanded && !c.props.Portal
}

// View implements tea.Model.
func (c Combobox) View() string {
	var blocks []string
	if label := c.labelBlock(); label != "" {
		blocks = append(blocks, label)
	}
	input := c.inputBlock()
	switch {
	case c.showInline() && c.props.Position == PositionAbove:
		blocks = append(blocks, c.listboxBlock(), input)
	case c.showInline():
		blocks = append(blocks, input, c.listboxBlock())
	default:
		blocks = append(blocks, input)
	}
	return c.props.Classes.style(SlotContainer).Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// PortalView renders the listbox for hosts that draw it themselves, styled
// by the portal slot. It is empty unless Portal is set and the listbox is
// expanded.
func (c Combobox) PortalView() string {
	if !c.props.Portal || *c.state != ComboboxExpanded {
		return ""
	}
	return c.props.Classes.style(SlotPortal).Render(c.listboxBlock())
}

// PortalAnchor returns where PortalView should be drawn so that it sits
// against the input, given the combobox is drawn at (x, y).
func (c Combobox) PortalAnchor(x, y int) (int, int) {
	if c.props.Position == PositionAbove {
		top := y + topInset(c.props.Classes.style(SlotContainer)) + lipgloss.Height(c.labelBlock())
		if c.props.Label == "" {
			top = y + topInset(c.props.Classes.style(SlotContainer))
		}
		return x, top - lipgloss.Height(c.PortalView())
	}
	return x, y + lipgloss.Height(c.View())
}

// listboxTop returns the screen row of the first listbox line.
func (c Combobox) listboxTop() (x, y int) {
	inner := topInset(c.props.Classes.style(SlotListbox))
	if c.props.Portal {
		portal := c.props.Classes.style(SlotPortal)
		return c.portalX + leftInset(portal), c.portalY + topInset(portal) + inner
	}
	container := c.props.Classes.style(SlotContainer)
	y = c.originY + topInset(container)
	if label := c.labelBlock(); label != "" {
		y += lipgloss.Height(label)
	}
	if c.props.Position == PositionBelow {
		y += lipgloss.Height(c.inputBlock())
	}
	return c.originX + leftInset(container), y + inner
}

// optionAt maps a screen position to an option index.
func (c Combobox) optionAt(x, y int) (int, bool) {
	if *c.state != ComboboxExpanded {
		return 0, false
	}
	left, top := c.listboxTop()
	row := y - top
	lines := c.listboxLines()
	if row < 0 || row >= len(lines) {
		return 0, false
	}
	if x < left || x >= left+lipgloss.Width(c.listboxBlock()) {
		return 0, false
	}
	idx := lines[row].option
	return idx, idx >= 0
}

func (c Combobox) handleMouse(msg tea.MouseMsg) (Combobox, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return c, nil
	}
	idx, ok := c.optionAt(msg.X, msg.Y)
	if !ok {
		return c, nil
	}
	return c.PressOption(c.options[idx].ID())
}

// Announcement describes the active option for a status line, e.g.
// "Bravo, 2 of 3".
func (c Combobox) Announcement() string {
	if *c.state != ComboboxExpanded {
		return ""
	}
	id, ok := c.tracker.Current()
	if !ok {
		return fmt.Sprintf("%d options available", len(c.options))
	}
	idx := c.tracker.Registry().IndexOf(id)
	return fmt.Sprintf("%s, %d of %d", c.options[idx].Content(), idx+1, len(c.options))
}
