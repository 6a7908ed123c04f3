package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ariacombo/internal/debug"
	"ariacombo/internal/listbox"
)

// ComboboxState is the expand state of the listbox.
type ComboboxState int

const (
	// ComboboxCollapsed - listbox hidden, nothing active.
	ComboboxCollapsed ComboboxState = iota
	// ComboboxExpanded - listbox visible, arrow keys move the active option.
	ComboboxExpanded
)

func (s ComboboxState) String() string {
	if s == ComboboxExpanded {
		return "expanded"
	}
	return "collapsed"
}

// Position says where the listbox opens relative to the input.
type Position int

const (
	PositionBelow Position = iota
	PositionAbove
)

// ParsePosition maps a config value to a Position. Anything but "above"
// opens below.
func ParsePosition(s string) Position {
	if s == "above" || s == "top" {
		return PositionAbove
	}
	return PositionBelow
}

// OptionSelectedMsg is sent whenever an option is selected, by keyboard or
// by mouse. Value is the option's payload, untouched.
type OptionSelectedMsg struct {
	ID    string
	Value any
}

// ValueChangedMsg is sent when the user edits the input text.
type ValueChangedMsg struct {
	Value string
}

// ComboboxProps configures a Combobox.
type ComboboxProps struct {
	ID          string // base id; input and listbox ids derive from it
	Value       string // initial input text
	Label       string
	Placeholder string
	Width       int
	MaxVisible  int

	AutoExpand       bool // expand on focus and on typing
	CollapseOnSelect bool
	Position         Position
	Portal           bool // listbox is rendered by the host through PortalView

	Classes Classes

	// InputAttrs are copied onto the input's accessibility node. They
	// cannot override the combobox ARIA attributes.
	InputAttrs map[string]string
	// InputOptions are applied to the underlying text input as given.
	InputOptions []func(*textinput.Model)

	OnOptionSelect func(value any)
	OnKeyDown      func(tea.KeyMsg)

	Mode listbox.Mode
}

// Combobox is an autocomplete input with a popup listbox. The active option
// is tracked virtually: focus never leaves the input.
//
// Copies of a Combobox share the expand state and the listbox tracker, so a
// copy taken before Blur reports the collapsed listbox afterwards too.
type Combobox struct {
	props ComboboxProps
	keys  KeyMap

	inputID   string
	listboxID string

	state   *ComboboxState
	focused bool
	input   textinput.Model

	options []Option
	tracker *listbox.Tracker

	scrollOffset int
	originX      int
	originY      int
	portalX      int
	portalY      int
}

// NewCombobox creates a collapsed combobox with the given options.
func NewCombobox(props ComboboxProps, options ...Option) Combobox {
	if props.ID == "" {
		props.ID = listbox.NewID("combobox")
	}
	if props.Width <= 0 {
		props.Width = 40
	}
	if props.MaxVisible <= 0 {
		props.MaxVisible = 5
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = props.Width - 6
	ti.Placeholder = props.Placeholder
	for _, opt := range props.InputOptions {
		if opt != nil {
			opt(&ti)
		}
	}
	ti.SetValue(props.Value)

	state := ComboboxCollapsed
	c := Combobox{
		props:     props,
		keys:      DefaultKeyMap(),
		inputID:   props.ID + "-input",
		listboxID: props.ID + "-listbox",
		state:     &state,
		input:     ti,
		tracker:   listbox.NewTracker(listbox.NewRegistry(), nil),
	}
	c.tracker.SetOnSelect(c.notifyHost)
	c.SetOptions(options)
	return c
}

func (c Combobox) notifyHost(id string, value any) {
	debug.Logf("combobox %s: option %s selected", c.props.ID, id)
	if c.props.OnOptionSelect != nil {
		c.props.OnOptionSelect(value)
	}
}

// Init implements tea.Model.
func (c Combobox) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (c Combobox) Update(msg tea.Msg) (Combobox, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if c.props.OnKeyDown != nil {
			c.props.OnKeyDown(msg)
		}
		if !c.focused {
			return c, nil
		}
		return c.handleKeyMsg(msg)
	case tea.MouseMsg:
		return c.handleMouse(msg)
	case tea.FocusMsg:
		cmd := c.Focus()
		return c, cmd
	case tea.BlurMsg:
		c.Blur()
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c Combobox) handleKeyMsg(msg tea.KeyMsg) (Combobox, tea.Cmd) {
	if *c.state == ComboboxExpanded {
		switch {
		case key.Matches(msg, c.keys.Next):
			c.tracker.Next()
			c.revealActive()
			return c, nil
		case key.Matches(msg, c.keys.Prev):
			c.tracker.Prev()
			c.revealActive()
			return c, nil
		case key.Matches(msg, c.keys.Select):
			return c.selectActive()
		case key.Matches(msg, c.keys.Close):
			c.Collapse()
			return c, nil
		case key.Matches(msg, c.keys.Expand):
			return c, nil
		}
	} else if key.Matches(msg, c.keys.Expand) {
		c.Expand()
		return c, nil
	}
	return c.editInput(msg)
}

func (c Combobox) editInput(msg tea.KeyMsg) (Combobox, tea.Cmd) {
	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	after := c.input.Value()
	if after == before {
		return c, cmd
	}
	if c.props.AutoExpand && *c.state == ComboboxCollapsed {
		c.Expand()
	}
	changed := func() tea.Msg { return ValueChangedMsg{Value: after} }
	return c, tea.Batch(cmd, changed)
}

// selectActive is the keyboard selection path: the tracker clicks whatever
// is active.
func (c Combobox) selectActive() (Combobox, tea.Cmd) {
	if !c.tracker.Click() {
		return c, nil
	}
	id, _ := c.tracker.Current()
	return c.afterSelect(id)
}

// PressOption is the pointer selection path. It is also what the mouse
// handler calls for a press on an option row.
func (c Combobox) PressOption(id string) (Combobox, tea.Cmd) {
	opt, ok := c.option(id)
	if !ok {
		return c, nil
	}
	if err := opt.Press(); err != nil {
		debug.Logf("combobox %s: %v", c.props.ID, err)
		return c, nil
	}
	if !c.tracker.Check(id) {
		return c, nil
	}
	return c.afterSelect(id)
}

func (c Combobox) afterSelect(id string) (Combobox, tea.Cmd) {
	opt, _ := c.option(id)
	if c.props.CollapseOnSelect {
		c.Collapse()
	}
	msg := OptionSelectedMsg{ID: opt.ID(), Value: opt.Value()}
	return c, func() tea.Msg { return msg }
}

// Expand opens the listbox. Nothing is active until the user navigates.
func (c *Combobox) Expand() {
	if *c.state == ComboboxExpanded {
		return
	}
	*c.state = ComboboxExpanded
	c.tracker.Clear()
	c.scrollOffset = 0
}

// Collapse closes the listbox and drops the active option.
func (c *Combobox) Collapse() {
	*c.state = ComboboxCollapsed
	c.tracker.Clear()
	c.scrollOffset = 0
}

// Focus focuses the input and, with AutoExpand, opens the listbox.
func (c *Combobox) Focus() tea.Cmd {
	c.focused = true
	cmd := c.input.Focus()
	if c.props.AutoExpand {
		c.Expand()
	}
	return cmd
}

// Blur removes focus and collapses the listbox.
func (c *Combobox) Blur() {
	c.focused = false
	c.input.Blur()
	c.Collapse()
}

// SetOptions replaces the mounted options. Options keep their ids, so the
// active option survives filtering as long as it is still present. A repeated
// id keeps its first occurrence; later ones are dropped.
func (c *Combobox) SetOptions(options []Option) {
	reg := c.tracker.Registry()
	keep := make(map[string]struct{}, len(options))
	unique := make([]Option, 0, len(options))
	for _, opt := range options {
		if _, dup := keep[opt.ID()]; dup {
			debug.Logf("combobox %s: dropping duplicate option id %s", c.props.ID, opt.ID())
			continue
		}
		keep[opt.ID()] = struct{}{}
		unique = append(unique, opt)
	}
	options = unique
	for _, e := range reg.Entries() {
		if _, ok := keep[e.ID]; !ok {
			reg.Unregister(e.ID)
		}
	}

	c.options = make([]Option, len(options))
	for i, opt := range options {
		reg.Register(listbox.Entry{ID: opt.ID(), Value: opt.Value()}, i)
		c.options[i] = opt.Attach(c.tracker, c.props.Mode)
	}
	c.clampScroll()
	c.revealActive()
}

func (c Combobox) option(id string) (Option, bool) {
	for _, opt := range c.options {
		if opt.ID() == id {
			return opt, true
		}
	}
	return Option{}, false
}

// SetValue replaces the input text without emitting ValueChangedMsg.
func (c *Combobox) SetValue(v string) {
	c.input.SetValue(v)
	c.input.CursorEnd()
}

// InputValue returns the current input text.
func (c Combobox) InputValue() string {
	return c.input.Value()
}

// SetOrigin records where the host draws the combobox, for mouse hit tests.
func (c *Combobox) SetOrigin(x, y int) {
	c.originX, c.originY = x, y
}

// SetPortalOrigin records where the host draws PortalView.
func (c *Combobox) SetPortalOrigin(x, y int) {
	c.portalX, c.portalY = x, y
}

// SetOnOptionSelect replaces the host selection callback.
func (c *Combobox) SetOnOptionSelect(fn func(value any)) {
	c.props.OnOptionSelect = fn
	c.tracker.SetOnSelect(c.notifyHost)
}

// State returns the expand state.
func (c Combobox) State() ComboboxState {
	return *c.state
}

// Expanded reports whether the listbox is open.
func (c Combobox) Expanded() bool {
	return *c.state == ComboboxExpanded
}

// Focused reports whether the input has focus.
func (c Combobox) Focused() bool {
	return c.focused
}

// ActiveDescendant returns the id of the active option, if any.
func (c Combobox) ActiveDescendant() (string, bool) {
	return c.tracker.Current()
}

// Options returns the mounted options in display order.
func (c Combobox) Options() []Option {
	out := make([]Option, len(c.options))
	copy(out, c.options)
	return out
}

// InputID returns the id of the input element.
func (c Combobox) InputID() string {
	return c.inputID
}

// ListboxID returns the id the input's aria-controls points at.
func (c Combobox) ListboxID() string {
	return c.listboxID
}

// Keys returns the key bindings, for help rendering.
func (c Combobox) Keys() KeyMap {
	return c.keys
}

// revealActive scrolls the window so the active option is visible.
func (c *Combobox) revealActive() {
	id, ok := c.tracker.Current()
	if !ok {
		return
	}
	idx := c.tracker.Registry().IndexOf(id)
	if idx < c.scrollOffset {
		c.scrollOffset = idx
	}
	if idx >= c.scrollOffset+c.props.MaxVisible {
		c.scrollOffset = idx - c.props.MaxVisible + 1
	}
	c.clampScroll()
}

func (c *Combobox) clampScroll() {
	maxOffset := len(c.options) - c.props.MaxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.scrollOffset > maxOffset {
		c.scrollOffset = maxOffset
	}
	if c.scrollOffset < 0 {
		c.scrollOffset = 0
	}
}
