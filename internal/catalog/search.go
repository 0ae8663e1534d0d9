package catalog

import "strings"

// MaxSuggestions caps the live suggestion list.
const MaxSuggestions = 5

// Suggest returns up to MaxSuggestions records whose name contains term,
// case-insensitively, in corpus order. A blank term yields nil.
func Suggest(term string, corpus []Record) []Record {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	var out []Record
	for _, rec := range corpus {
		if !strings.Contains(strings.ToLower(rec.Name), needle) {
			continue
		}
		out = append(out, rec)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
