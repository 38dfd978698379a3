package family

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrijs2005/lechworld/internal/memberstyle"
)

// DecodeRecords reads a JSON array of member objects as exported by the web
// app. Field names may be camelCase or snake_case; only string values are
// kept, so nulls, numbers and nested objects are dropped.
func DecodeRecords(r io.Reader) ([]memberstyle.Record, error) {
	var raw []map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}

	records := make([]memberstyle.Record, 0, len(raw))
	for _, obj := range raw {
		rec := make(memberstyle.Record, len(obj))
		for k, v := range obj {
			if s, ok := v.(string); ok {
				rec[k] = s
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
