// Package memberstyle derives the visual identity of a family member: the
// background/border colour pair of the member frame and the profile emoji.
//
// Explicit overrides stored on the member win. A frame colour is only honoured
// when both the background and the border are set; anything else falls back to
// a palette entry chosen by hashing the member name, so the same name always
// gets the same colours.
//
// Records may come from the database (snake_case keys) or from the legacy web
// export (camelCase keys). Field lists both spellings in priority order and
// callers never need to normalize keys first.
//
// All functions are pure and safe for concurrent use.
package memberstyle
