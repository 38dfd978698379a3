package memberstyle

// Record is a member as a flat set of named string fields.
// A missing key and an empty value mean the same thing.
type Record map[string]string

// Field is one semantic member attribute together with the keys it may be
// stored under, in lookup order.
type Field struct {
	Keys []string
}

var (
	FieldName             = Field{Keys: []string{"name"}}
	FieldFrameColor       = Field{Keys: []string{"frameColor", "frame_color"}}
	FieldFrameBorderColor = Field{Keys: []string{"frameBorderColor", "frame_border_color"}}
	FieldProfileEmoji     = Field{Keys: []string{"profileEmoji", "profile_emoji"}}
)

// Lookup returns the value of the first key present in r with a non-empty
// value, or "" when none is.
func (f Field) Lookup(r Record) string {
	for _, k := range f.Keys {
		if v := r[k]; v != "" {
			return v
		}
	}
	return ""
}

// Name is a shortcut for FieldName.Lookup(r).
func (r Record) Name() string {
	return FieldName.Lookup(r)
}
