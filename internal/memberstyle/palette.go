package memberstyle

// Colors is a frame colour pair, both values are #RRGGBB literals.
type Colors struct {
	Background string `json:"bg"`
	Border     string `json:"border"`
}

// Palette is the fallback set of pastel frames. The order is part of the
// contract: HashName results index into it.
var Palette = [6]Colors{
	{Background: "#FFD6EC", Border: "#FFB3D9"}, // pink
	{Background: "#D6ECFF", Border: "#B3D9FF"}, // blue
	{Background: "#D6FFEC", Border: "#B3FFD9"}, // green
	{Background: "#ECD6FF", Border: "#D9B3FF"}, // purple
	{Background: "#FFF2D6", Border: "#FFE6B3"}, // yellow
	{Background: "#FFE6D6", Border: "#FFD4B3"}, // orange
}

// DefaultEmoji is shown for members without a profile emoji.
const DefaultEmoji = "👤"

// IsHexColor reports whether s is a #RRGGBB literal.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
