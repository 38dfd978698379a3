// Package theme owns the application's colour theme.
//
// There is one State per process. It is loaded from the persisted preference
// at start-up and changed only through State.Set, which writes the new value
// to the Store before making it current.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

type Theme string

const (
	Light       Theme = "light"
	Dark        Theme = "dark"
	MinimalDark Theme = "minimal-dark"
)

// Default is used when nothing (or nothing valid) was persisted.
const Default = Light

var ErrUnknownTheme = errors.New("unknown theme")

// All lists the themes in toggle order.
var All = []Theme{Light, Dark, MinimalDark}

// Parse accepts a theme name, including the legacy "dark-minimal" spelling.
func Parse(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Light):
		return Light, nil
	case string(Dark):
		return Dark, nil
	case string(MinimalDark), "dark-minimal":
		return MinimalDark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Next returns the theme that follows t: light, dark, minimal-dark, light.
func (t Theme) Next() Theme {
	switch t {
	case Light:
		return Dark
	case Dark:
		return MinimalDark
	default:
		return Light
	}
}

// IsDark reports whether t uses a dark background.
func (t Theme) IsDark() bool {
	return t == Dark || t == MinimalDark
}

// ClassName is the CSS class the web client applies for t.
func (t Theme) ClassName() string {
	return string(t) + "-theme"
}

func (t Theme) String() string {
	return string(t)
}
