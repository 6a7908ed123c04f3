package listbox

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"ariacombo/internal/debug"
	appErrors "ariacombo/internal/errors"
)

// Context is the read channel a listbox hands to its options.
type Context interface {
	CheckIfActive(id string) bool
	OnOptionSelect(id string, value any)
}

// Mode selects how integration mistakes are reported.
type Mode int

const (
	// ModeRelease degrades silently: an option without a listbox is never
	// active and its selections are dropped.
	ModeRelease Mode = iota
	// ModeDebug fails loudly on integration mistakes.
	ModeDebug
)

func (m Mode) String() string {
	if m == ModeDebug {
		return "debug"
	}
	return "release"
}

// ParseMode maps a config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "release", "production":
		return ModeRelease, nil
	case "debug", "development":
		return ModeDebug, nil
	}
	return ModeRelease, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("unknown mode %q (want debug or release)", s), nil)
}

// ErrMissingProvider is returned in debug mode when an option is used
// without an enclosing listbox.
var ErrMissingProvider = appErrors.New(appErrors.CodeMissingProvider, "listbox: option used outside of a listbox", nil)

var warnOnce sync.Once

// Resolve returns ctx when it is set. Otherwise debug mode reports
// ErrMissingProvider and release mode falls back to an inert context.
func Resolve(ctx Context, mode Mode) (Context, error) {
	if ctx != nil {
		return ctx, nil
	}
	if mode == ModeDebug {
		return nil, ErrMissingProvider
	}
	warnOnce.Do(func() {
		debug.Log("listbox: option used outside of a listbox; selections are ignored")
	})
	return inertContext{}, nil
}

type inertContext struct{}

func (inertContext) CheckIfActive(string) bool { return false }
func (inertContext) OnOptionSelect(string, any) {}

var idCounter atomic.Uint64

// NewID returns a process-unique id such as "option-7".
func NewID(prefix string) string {
	if prefix == "" {
		prefix = "listbox"
	}
	return prefix + "-" + strconv.FormatUint(idCounter.Add(1), 10)
}
