package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"ariacombo/internal/listbox"
)

// Option is one selectable entry of a combobox listbox. It keeps no
// highlight state of its own: whether it is selected is always asked of the
// listbox it is attached to.
type Option struct {
	id      string
	value   any
	content string

	ctx  listbox.Context
	mode listbox.Mode
}

// OptionSetter configures an Option at construction.
type OptionSetter func(*Option)

// WithID sets an explicit option id.
func WithID(id string) OptionSetter {
	return func(o *Option) {
		o.id = id
	}
}

// WithContent sets the display text. Without it the value is printed.
func WithContent(content string) OptionSetter {
	return func(o *Option) {
		o.content = content
	}
}

// NewOption creates an option carrying value. When no id is given one is
// generated here, so it stays the same for every render of this option.
func NewOption(value any, setters ...OptionSetter) Option {
	o := Option{value: value}
	for _, set := range setters {
		set(&o)
	}
	if o.id == "" {
		o.id = listbox.NewID("option")
	}
	return o
}

// ID returns the option id.
func (o Option) ID() string {
	return o.id
}

// Value returns the opaque payload handed back on selection.
func (o Option) Value() any {
	return o.value
}

// Content returns the display text.
func (o Option) Content() string {
	if o.content != "" {
		return o.content
	}
	if o.value == nil {
		return ""
	}
	return fmt.Sprint(o.value)
}

// Attach binds the option to the listbox that owns it.
func (o Option) Attach(ctx listbox.Context, mode listbox.Mode) Option {
	o.ctx = ctx
	o.mode = mode
	return o
}

// Selected reports whether the option is the listbox's active descendant.
func (o Option) Selected() (bool, error) {
	ctx, err := listbox.Resolve(o.ctx, o.mode)
	if err != nil {
		return false, fmt.Errorf("option %s: %w", o.id, err)
	}
	return ctx.CheckIfActive(o.id), nil
}

// Press commits this option as the selection. The combobox calls it on
// mouse press, before any blur the same click may cause.
func (o Option) Press() error {
	ctx, err := listbox.Resolve(o.ctx, o.mode)
	if err != nil {
		return fmt.Errorf("option %s: %w", o.id, err)
	}
	ctx.OnOptionSelect(o.id, o.value)
	return nil
}

// View renders the option on its own. In debug mode an option that was never
// attached to a listbox panics here.
func (o Option) View() string {
	selected, err := o.Selected()
	if err != nil {
		panic(err)
	}
	return o.render(0, selected)
}

func (o Option) render(width int, active bool) string {
	text := o.Content()
	if width > 2 {
		text = ansi.Truncate(text, width-2, "…")
	}
	if active {
		return styleOptionActive().Render("▸ " + text)
	}
	return styleOption().Render("  " + text)
}

func styleOption() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentTheme().Text)
}

func styleOptionActive() lipgloss.Style {
	th := currentTheme()
	return lipgloss.NewStyle().
		Foreground(th.Primary).
		Background(th.BackgroundAlt).
		Bold(true)
}
