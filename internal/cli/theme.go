package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/lechworld/internal/theme"
)

// Theme prints the current theme when arg is empty, cycles on "toggle" and
// switches to a named theme otherwise.
func (a *App) Theme(ctx context.Context, arg string) error {
	arg = strings.TrimSpace(arg)

	switch arg {
	case "":
		names := make([]string, 0, len(theme.All))
		for _, t := range theme.All {
			names = append(names, t.String())
		}
		a.printf("Theme: %s (available: %s, toggle)\n", a.theme.Current(), strings.Join(names, ", "))
		return nil

	case "toggle":
		t, err := a.theme.Toggle(ctx)
		if err != nil {
			return a.fail(ctx, "toggle theme", err)
		}
		a.printf("Theme: %s\n", t)
		return nil
	}

	t, err := theme.Parse(arg)
	if err != nil {
		return a.fail(ctx, "parse theme", err)
	}
	if err := a.theme.Set(ctx, t); err != nil {
		return a.fail(ctx, "set theme", err)
	}
	a.printf("Theme: %s\n", t)
	return nil
}
