package memberstyle

import "unicode/utf16"

// Presentation is everything the rendering layer needs for one member.
type Presentation struct {
	Colors Colors
	Emoji  string
}

// HashName computes the 31-multiplier string hash over the UTF-16 code units
// of name, wrapping as signed 32-bit arithmetic. UTF-16 units keep results
// equal to the colours the web client already assigned.
func HashName(name string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(name)) {
		h = int32(c) + ((h << 5) - h)
	}
	return h
}

// PaletteIndex maps a hash onto Palette. The absolute value is taken in 64
// bits so math.MinInt32 does not overflow.
func PaletteIndex(hash int32) int {
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return int(h % int64(len(Palette)))
}

// ResolveColors returns the member's own frame colours when both are set and
// the name-derived palette entry otherwise.
func ResolveColors(r Record) Colors {
	bg := FieldFrameColor.Lookup(r)
	border := FieldFrameBorderColor.Lookup(r)
	if bg != "" && border != "" {
		return Colors{Background: bg, Border: border}
	}
	return Palette[PaletteIndex(HashName(r.Name()))]
}

// ResolveEmoji returns the member's profile emoji or DefaultEmoji.
func ResolveEmoji(r Record) string {
	if e := FieldProfileEmoji.Lookup(r); e != "" {
		return e
	}
	return DefaultEmoji
}

// Resolve computes colours and emoji in one call.
func Resolve(r Record) Presentation {
	return Presentation{Colors: ResolveColors(r), Emoji: ResolveEmoji(r)}
}
