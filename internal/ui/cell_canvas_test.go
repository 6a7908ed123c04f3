package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestCanvasNormalizesNewlines(t *testing.T) {
	canvas := NewCanvas(8, 4)
	canvas.DrawStringAt(0, 0, "A\r\nB")

	lines := strings.Split(canvas.Render(), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least 2 lines, got %d", len(lines))
	}
	if got := strings.TrimSpace(ansi.Strip(lines[0])); got != "A" {
		t.Fatalf("line 0 mismatch, expected A got %q", got)
	}
	if got := strings.TrimSpace(ansi.Strip(lines[1])); got != "B" {
		t.Fatalf("line 1 mismatch, expected B got %q", got)
	}
}

func TestCanvasDrawsAtOffset(t *testing.T) {
	canvas := NewCanvas(10, 3)
	canvas.DrawStringAt(0, 0, "..........\n..........\n..........")
	canvas.DrawStringAt(3, 1, "XY\nZ")

	lines := strings.Split(ansi.Strip(canvas.Render()), "\n")
	if lines[1] != "...XY....." {
		t.Errorf("unexpected row 1 %q", lines[1])
	}
	if lines[2] != "...Z......" {
		t.Errorf("unexpected row 2 %q", lines[2])
	}
}

func TestCanvasCropsOutside(t *testing.T) {
	canvas := NewCanvas(4, 2)
	canvas.DrawStringAt(2, 1, "abcdef\nghi")
	if w, h := canvas.Size(); w != 4 || h != 2 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
	out := ansi.Strip(canvas.Render())
	if strings.Contains(out, "ghi") {
		t.Errorf("expected rows below the canvas to be cropped:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) < 2 || !strings.Contains(lines[1], "ab") || strings.Contains(lines[1], "abc") {
		t.Errorf("expected row cropped at the right edge:\n%s", out)
	}
}

func TestNewCanvasClampsSize(t *testing.T) {
	if w, h := NewCanvas(0, -3).Size(); w != 1 || h != 1 {
		t.Errorf("expected 1x1, got %dx%d", w, h)
	}
}

func TestComposePortal(t *testing.T) {
	t.Run("InlinePassesThrough", func(t *testing.T) {
		cb := newTestCombobox(ComboboxProps{AutoExpand: true}, abcOptions()...)
		cb.Focus()
		base := "header\n" + cb.View()
		out, _ := ComposePortal(base, cb, 0, 1)
		if out != base {
			t.Error("expected base to pass through without a portal")
		}
	})

	t.Run("DrawsOverHost", func(t *testing.T) {
		cb := newTestCombobox(ComboboxProps{AutoExpand: true, Portal: true}, abcOptions()...)
		cb.Focus()

		base := "header\n" + cb.View() + "\nfooter line one\nfooter line two"
		out, cb := ComposePortal(base, cb, 0, 1)
		plain := ansi.Strip(out)
		if !strings.Contains(plain, "Alpha") {
			t.Fatalf("expected portal options in frame:\n%s", plain)
		}
		if strings.Contains(plain, "footer line one") {
			t.Errorf("expected portal to cover the footer:\n%s", plain)
		}
		if !strings.HasPrefix(plain, "header") {
			t.Errorf("expected host content above the portal:\n%s", plain)
		}

		// header (1) + input (3) + portal border (1) puts a at y=5.
		_, cmd := cb.Update(tea.MouseMsg{X: 3, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		sel, ok := selectedMsg(cmd)
		if !ok || sel.ID != "b" {
			t.Errorf("expected press to land on b, got %+v (ok=%v)", sel, ok)
		}
	})

	t.Run("GrowsFrameForPortal", func(t *testing.T) {
		cb := newTestCombobox(ComboboxProps{AutoExpand: true, Portal: true}, abcOptions()...)
		cb.Focus()
		out, _ := ComposePortal(cb.View(), cb, 0, 0)
		lines := strings.Split(ansi.Strip(out), "\n")
		if len(lines) < 3+5 {
			t.Errorf("expected frame to grow to fit the portal, got %d rows", len(lines))
		}
	})
}
