package family

import (
	"time"

	"github.com/dmitrijs2005/lechworld/internal/memberstyle"
)

// Member is one row of family_members. Empty strings stand for NULL in the
// optional style columns.
type Member struct {
	ID               string
	Name             string
	FrameColor       string
	FrameBorderColor string
	ProfileEmoji     string
	CreatedAt        time.Time
}

// Record exposes the member under the persisted snake_case field names.
func (m Member) Record() memberstyle.Record {
	r := memberstyle.Record{"name": m.Name}
	if m.FrameColor != "" {
		r["frame_color"] = m.FrameColor
	}
	if m.FrameBorderColor != "" {
		r["frame_border_color"] = m.FrameBorderColor
	}
	if m.ProfileEmoji != "" {
		r["profile_emoji"] = m.ProfileEmoji
	}
	return r
}

// Styled is a member together with its resolved presentation.
type Styled struct {
	Member       Member
	Presentation memberstyle.Presentation
}
