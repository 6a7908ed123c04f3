package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas composes lipgloss-rendered blocks into a cell buffer so a portal
// listbox can be drawn over host content.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

// NewCanvas creates a blank canvas. Non-positive sizes become 1.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// DrawStringAt writes content with its top-left corner at x,y. Every line
// starts at column x; anything outside the canvas is cropped.
func (c *Canvas) DrawStringAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	if x < 0 {
		x = 0
	}
	for i, line := range splitLines(content) {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Render returns the composed frame with "\n" line endings.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

// ComposePortal draws base, then the combobox's portal listbox at its
// anchor. (x, y) is where the combobox itself sits inside base. The returned
// combobox knows where the portal was drawn so mouse presses land on the
// right option.
func ComposePortal(base string, cb Combobox, x, y int) (string, Combobox) {
	portal := cb.PortalView()
	if portal == "" {
		return base, cb
	}
	px, py := cb.PortalAnchor(x, y)
	if py < 0 {
		py = 0
	}
	cb.SetPortalOrigin(px, py)

	width := lipgloss.Width(base)
	if w := px + lipgloss.Width(portal); w > width {
		width = w
	}
	height := lipgloss.Height(base)
	if h := py + lipgloss.Height(portal); h > height {
		height = h
	}

	canvas := NewCanvas(width, height)
	canvas.DrawStringAt(0, 0, base)
	canvas.DrawStringAt(px, py, portal)
	return canvas.Render(), cb
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}
