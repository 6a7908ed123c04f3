package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	appErrors "ariacombo/internal/errors"
	"ariacombo/internal/listbox"
)

func TestNewOption(t *testing.T) {
	t.Run("GeneratedIDIsStable", func(t *testing.T) {
		opt := NewOption("go")
		if !strings.HasPrefix(opt.ID(), "option-") {
			t.Fatalf("expected generated id, got %q", opt.ID())
		}
		again := opt.Attach(nil, listbox.ModeRelease)
		if again.ID() != opt.ID() {
			t.Errorf("expected id to survive copies, got %q and %q", opt.ID(), again.ID())
		}
		if NewOption("go").ID() == opt.ID() {
			t.Error("expected distinct options to get distinct ids")
		}
	})

	t.Run("Content", func(t *testing.T) {
		if got := NewOption(42).Content(); got != "42" {
			t.Errorf("expected value fallback, got %q", got)
		}
		if got := NewOption(42, WithContent("Answer")).Content(); got != "Answer" {
			t.Errorf("expected explicit content, got %q", got)
		}
		if got := NewOption(nil).Content(); got != "" {
			t.Errorf("expected empty content for nil value, got %q", got)
		}
	})

	t.Run("ValueIsOpaque", func(t *testing.T) {
		type payload struct{ n int }
		p := &payload{n: 7}
		if NewOption(p).Value() != p {
			t.Error("expected value to be handed back untouched")
		}
	})
}

func TestOptionWithoutListbox(t *testing.T) {
	t.Run("DebugModeFails", func(t *testing.T) {
		opt := NewOption(1, WithID("lonely")).Attach(nil, listbox.ModeDebug)
		if _, err := opt.Selected(); !appErrors.IsCode(err, appErrors.CodeMissingProvider) {
			t.Errorf("expected missing provider from Selected, got %v", err)
		}
		if err := opt.Press(); !appErrors.IsCode(err, appErrors.CodeMissingProvider) {
			t.Errorf("expected missing provider from Press, got %v", err)
		}
		defer func() {
			if recover() == nil {
				t.Error("expected View to panic in debug mode")
			}
		}()
		_ = opt.View()
	})

	t.Run("ReleaseModeIsInert", func(t *testing.T) {
		opt := NewOption(1, WithID("lonely"))
		selected, err := opt.Selected()
		if err != nil || selected {
			t.Errorf("expected inert unselected option, got %v, %v", selected, err)
		}
		if err := opt.Press(); err != nil {
			t.Errorf("expected inert press, got %v", err)
		}
		if got := ansi.Strip(opt.View()); got != "  1" {
			t.Errorf("unexpected view %q", got)
		}
	})
}

func TestOptionRender(t *testing.T) {
	opt := NewOption(1, WithContent("A rather long option label"))
	if got := ansi.Strip(opt.render(0, true)); got != "▸ A rather long option label" {
		t.Errorf("unexpected active row %q", got)
	}
	got := ansi.Strip(opt.render(12, false))
	if !strings.HasPrefix(got, "  A rather") || !strings.HasSuffix(got, "…") {
		t.Errorf("expected truncated row, got %q", got)
	}
}
