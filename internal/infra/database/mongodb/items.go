package mongodb

import (
	"github.com/mitchellh/copystructure"

	"github.com/xavierca1/flow-nodes/internal/entity"
)

// ItemCopy keeps only the given fields of each item's JSON. Missing fields
// become nil and present ones are deep copied, so callers can mutate the
// result without touching the source items.
func ItemCopy(items []entity.Item, fields []string) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		projected := make(map[string]any, len(fields))
		for _, field := range fields {
			value, ok := item.JSON[field]
			if !ok || value == nil {
				projected[field] = nil
				continue
			}
			cp, err := copystructure.Copy(value)
			if err != nil {
				return nil, err
			}
			projected[field] = cp
		}
		out = append(out, projected)
	}
	return out, nil
}
