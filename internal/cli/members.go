package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/lechworld/internal/common"
	"github.com/dmitrijs2005/lechworld/internal/family"
)

// openFile is a test seam for os.Open.
var openFile = os.Open

func (a *App) Members(ctx context.Context) error {
	list, err := a.members.List(ctx)
	if err != nil {
		return a.fail(ctx, "list members", err)
	}
	if len(list) == 0 {
		a.printf("No family members yet, add one with 'addmember'\n")
		return nil
	}
	a.printf("%s\n", a.renderMembers(list))
	return nil
}

func (a *App) AddMember(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return a.fail(ctx, "read name", err)
	}
	emoji, err := GetSimpleText(a.reader, "Profile emoji (empty for default)", a.out)
	if err != nil {
		return a.fail(ctx, "read emoji", err)
	}

	m, err := a.members.Add(ctx, name, emoji)
	if err != nil {
		return a.fail(ctx, "add member", err)
	}
	a.printf("Added %s (%s)\n", m.Name, m.ID)
	return nil
}

func (a *App) Style(ctx context.Context) error {
	m, err := a.selectMember(ctx)
	if err != nil {
		return a.fail(ctx, "select member", err)
	}

	bg, err := GetSimpleText(a.reader, "Frame colour #RRGGBB (empty for both to reset)", a.out)
	if err != nil {
		return a.fail(ctx, "read frame colour", err)
	}
	border, err := GetSimpleText(a.reader, "Frame border colour #RRGGBB", a.out)
	if err != nil {
		return a.fail(ctx, "read border colour", err)
	}

	if err := a.members.SetStyle(ctx, m.Member.ID, bg, border); err != nil {
		return a.fail(ctx, "set style", err)
	}
	a.printf("Updated frame of %s\n", m.Member.Name)
	return nil
}

func (a *App) Emoji(ctx context.Context) error {
	m, err := a.selectMember(ctx)
	if err != nil {
		return a.fail(ctx, "select member", err)
	}

	emoji, err := GetSimpleText(a.reader, "Profile emoji (empty for default)", a.out)
	if err != nil {
		return a.fail(ctx, "read emoji", err)
	}

	if err := a.members.SetEmoji(ctx, m.Member.ID, emoji); err != nil {
		return a.fail(ctx, "set emoji", err)
	}
	a.printf("Updated emoji of %s\n", m.Member.Name)
	return nil
}

func (a *App) DeleteMember(ctx context.Context) error {
	m, err := a.selectMember(ctx)
	if err != nil {
		return a.fail(ctx, "select member", err)
	}

	if err := a.members.Remove(ctx, m.Member.ID); err != nil {
		return a.fail(ctx, "remove member", err)
	}
	a.printf("Removed %s\n", m.Member.Name)
	return nil
}

func (a *App) Import(ctx context.Context, path string) error {
	if path == "" {
		var err error
		path, err = GetSimpleText(a.reader, "Path to exported members JSON", a.out)
		if err != nil {
			return a.fail(ctx, "read path", err)
		}
	}

	f, err := openFile(path)
	if err != nil {
		return a.fail(ctx, "open import file", err)
	}
	defer f.Close()

	n, err := a.members.Import(ctx, f)
	if err != nil {
		return a.fail(ctx, "import members", err)
	}
	a.printf("Imported %d members\n", n)
	return nil
}

// selectMember asks for a member id or name. Names match case-insensitively
// and must be unique.
func (a *App) selectMember(ctx context.Context) (family.Styled, error) {
	q, err := GetSimpleText(a.reader, "Member id or name", a.out)
	if err != nil {
		return family.Styled{}, err
	}

	list, err := a.members.List(ctx)
	if err != nil {
		return family.Styled{}, err
	}

	var matches []family.Styled
	for _, m := range list {
		if m.Member.ID == q {
			return m, nil
		}
		if strings.EqualFold(m.Member.Name, q) {
			matches = append(matches, m)
		}
	}

	switch len(matches) {
	case 0:
		return family.Styled{}, fmt.Errorf("member %q: %w", q, common.ErrorNotFound)
	case 1:
		return matches[0], nil
	default:
		return family.Styled{}, fmt.Errorf("%d members are named %q, use the id", len(matches), q)
	}
}
