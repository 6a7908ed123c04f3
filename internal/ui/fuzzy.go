package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// FilterOptions keeps the options whose content fuzzy-matches query, best
// match first. An empty query keeps everything in its original order.
func FilterOptions(options []Option, query string) []Option {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" || len(options) == 0 {
		return options
	}
	targets := make([]string, len(options))
	for i, opt := range options {
		targets[i] = strings.ToLower(opt.Content())
	}
	matches := fuzzy.Find(query, targets)
	out := make([]Option, 0, len(matches))
	for _, m := range matches {
		if m.Index >= 0 && m.Index < len(options) {
			out = append(out, options[m.Index])
		}
	}
	return out
}
