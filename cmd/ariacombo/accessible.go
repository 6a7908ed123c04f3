package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"ariacombo/internal/catalog"
)

// promptAccessible asks for one option with plain numbered prompts instead
// of the full-screen program, for screen readers that cannot follow
// cursor-addressed output.
func promptAccessible(items []catalog.Item, label string, in io.Reader, out io.Writer) (catalog.Item, error) {
	if len(items) == 0 {
		return catalog.Item{}, fmt.Errorf("no options to choose from")
	}
	options := make([]huh.Option[int], len(items))
	for i, it := range items {
		options[i] = huh.NewOption(it.Label, i)
	}

	var choice int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(label).
			Options(options...).
			Value(&choice),
	)).
		WithAccessible(true).
		WithInput(in).
		WithOutput(out)

	if err := form.Run(); err != nil {
		return catalog.Item{}, fmt.Errorf("accessible prompt: %w", err)
	}
	return items[choice], nil
}
