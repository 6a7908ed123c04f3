package ui

import (
	"github.com/charmbracelet/lipgloss"

	"ariacombo/internal/ui/theme"
)

// Slot names a styleable part of the combobox.
type Slot string

const (
	SlotContainer Slot = "container"
	SlotInput     Slot = "input"
	SlotListbox   Slot = "listbox"
	SlotLabel     Slot = "label"
	SlotPortal    Slot = "portal"
)

// Slots lists every recognised slot.
var Slots = []Slot{SlotContainer, SlotInput, SlotListbox, SlotLabel, SlotPortal}

// Classes maps slots to host styles. Missing slots use the theme defaults;
// unknown slots are ignored.
type Classes map[Slot]lipgloss.Style

func (c Classes) style(slot Slot) lipgloss.Style {
	if s, ok := c[slot]; ok {
		return s
	}
	return defaultSlotStyle(slot)
}

func (c Classes) has(slot Slot) bool {
	_, ok := c[slot]
	return ok
}

func currentTheme() theme.Theme {
	return theme.Current()
}

func defaultSlotStyle(slot Slot) lipgloss.Style {
	th := currentTheme()
	switch slot {
	case SlotInput:
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.BorderDim).
			Padding(0, 1)
	case SlotListbox:
		return lipgloss.NewStyle().PaddingLeft(1)
	case SlotLabel:
		return lipgloss.NewStyle().Foreground(th.Secondary).Bold(true)
	case SlotPortal:
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(th.BorderNormal)
	}
	return lipgloss.NewStyle()
}

// focusedInput tints the input border while the input has focus, unless
// the host styled the input slot itself.
func focusedInput(base lipgloss.Style) lipgloss.Style {
	return base.BorderForeground(currentTheme().Primary)
}

func styleHint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentTheme().TextMuted)
}

func styleNoOptions() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme().TextMuted).
		Italic(true)
}

// topInset returns the rows a style adds above its content.
func topInset(s lipgloss.Style) int {
	return s.GetMarginTop() + s.GetBorderTopSize() + s.GetPaddingTop()
}

// leftInset returns the columns a style adds before its content.
func leftInset(s lipgloss.Style) int {
	return s.GetMarginLeft() + s.GetBorderLeftSize() + s.GetPaddingLeft()
}
