package ui

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// A11yNode is one element of the accessibility tree: the element kind and
// the attributes assistive technology reads from it.
type A11yNode struct {
	Element  string            `yaml:"element"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Text     string            `yaml:"text,omitempty"`
	Children []A11yNode        `yaml:"children,omitempty"`
}

// Attr returns an attribute and whether it is present.
func (n A11yNode) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// Find returns the first node in n's subtree whose id matches.
func (n A11yNode) Find(id string) (A11yNode, bool) {
	if n.Attrs["id"] == id {
		return n, true
	}
	for _, child := range n.Children {
		if found, ok := child.Find(id); ok {
			return found, true
		}
	}
	return A11yNode{}, false
}

// reservedInputAttrs cannot be overridden through InputAttrs.
var reservedInputAttrs = map[string]struct{}{
	"id":                    {},
	"role":                  {},
	"aria-autocomplete":     {},
	"aria-expanded":         {},
	"aria-controls":         {},
	"aria-activedescendant": {},
}

// Accessibility returns the combobox's accessibility tree. The listbox and
// its options are present only while expanded.
func (c Combobox) Accessibility() A11yNode {
	root := A11yNode{
		Element: "div",
		Attrs:   map[string]string{"id": c.props.ID},
	}
	if c.props.Label != "" {
		root.Children = append(root.Children, A11yNode{
			Element: "label",
			Attrs:   map[string]string{"for": c.inputID},
			Text:    c.props.Label,
		})
	}

	input := A11yNode{
		Element: "input",
		Attrs:   make(map[string]string, len(c.props.InputAttrs)+6),
		Text:    c.input.Value(),
	}
	for k, v := range c.props.InputAttrs {
		if _, reserved := reservedInputAttrs[k]; !reserved {
			input.Attrs[k] = v
		}
	}
	input.Attrs["id"] = c.inputID
	input.Attrs["role"] = "combobox"
	input.Attrs["aria-autocomplete"] = "list"
	input.Attrs["aria-expanded"] = strconv.FormatBool(*c.state == ComboboxExpanded)
	input.Attrs["aria-controls"] = c.listboxID
	if id, ok := c.tracker.Current(); ok && *c.state == ComboboxExpanded {
		input.Attrs["aria-activedescendant"] = id
	}
	root.Children = append(root.Children, input)

	if *c.state != ComboboxExpanded {
		return root
	}
	lb := A11yNode{
		Element: "ul",
		Attrs: map[string]string{
			"id":   c.listboxID,
			"role": "listbox",
		},
	}
	for _, opt := range c.options {
		lb.Children = append(lb.Children, A11yNode{
			Element: "li",
			Attrs: map[string]string{
				"id":            opt.ID(),
				"role":          "option",
				"aria-selected": strconv.FormatBool(c.tracker.Check(opt.ID())),
			},
			Text: opt.Content(),
		})
	}
	if c.props.Position == PositionAbove {
		root.Children = append(root.Children[:len(root.Children)-1], lb, input)
	} else {
		root.Children = append(root.Children, lb)
	}
	return root
}

// MarshalA11y renders an accessibility tree as YAML.
func MarshalA11y(n A11yNode) ([]byte, error) {
	return yaml.Marshal(n)
}
