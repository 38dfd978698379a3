package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/lechworld/internal/family"
	"github.com/dmitrijs2005/lechworld/internal/theme"
)

const cardWidth = 30

var (
	lightText = lipgloss.Color("#333333")
	darkText  = lipgloss.Color("#1E1E1E")
	mutedText = lipgloss.Color("#8A8A8A")
)

// cardStyle frames a member card. Light and dark fill the card with the
// member's background colour; minimal-dark leaves the terminal background
// and uses the colour for the text instead.
func cardStyle(r *lipgloss.Renderer, s family.Styled, t theme.Theme) lipgloss.Style {
	c := s.Presentation.Colors

	st := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Border)).
		Padding(0, 1).
		Width(cardWidth)

	switch t {
	case theme.MinimalDark:
		return st.Foreground(lipgloss.Color(c.Background))
	case theme.Dark:
		return st.Background(lipgloss.Color(c.Background)).Foreground(darkText)
	default:
		return st.Background(lipgloss.Color(c.Background)).Foreground(lightText)
	}
}

func renderCard(r *lipgloss.Renderer, s family.Styled, t theme.Theme) string {
	id := s.Member.ID
	if len(id) > 8 {
		id = id[:8]
	}
	body := fmt.Sprintf("%s  %s\n%s", s.Presentation.Emoji, s.Member.Name,
		r.NewStyle().Foreground(mutedText).Render(id))
	return cardStyle(r, s, t).Render(body)
}

func (a *App) renderMembers(list []family.Styled) string {
	t := a.theme.Current()
	cards := make([]string, len(list))
	for i, s := range list {
		cards[i] = renderCard(a.renderer, s, t)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
