package equipment

import (
	"strings"
	"time"
)

type Equipment struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description *string   `json:"description"`
	Quantity    int       `json:"quantity"`
	ImageURL    *string   `json:"image_url"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FilterBySearch keeps items whose name or description contains the term,
// case-insensitively. An empty term keeps everything. The store has no
// full-text search, so this runs over the already-filtered catalog.
func FilterBySearch(items []Equipment, term string) []Equipment {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]Equipment, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), term) {
			out = append(out, it)
			continue
		}
		if it.Description != nil && strings.Contains(strings.ToLower(*it.Description), term) {
			out = append(out, it)
		}
	}
	return out
}
