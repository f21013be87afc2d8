package state

import (
	"strings"

	"github.com/atomicstack/command-dashboard/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterItems returns the items whose label, or command text for command
// entries, fuzzily matches query. Order is preserved.
func FilterItems(items []menu.Item, query string) []menu.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	matched := make(map[int]struct{}, len(items))
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, searchTexts(items)) {
		matched[rank.OriginalIndex] = struct{}{}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]menu.Item, 0, len(matched))
	for i, item := range items {
		if _, ok := matched[i]; ok || strings.Contains(strings.ToLower(menu.Key(item.ID)), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex picks the item the cursor should land on for query: an exact
// label, then a label prefix, then a label substring, then the closest fuzzy
// match. It returns -1 only when items is empty.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	tests := []func(label string) bool{
		func(label string) bool { return label == lower },
		func(label string) bool { return strings.HasPrefix(label, lower) },
		func(label string) bool { return strings.Contains(label, lower) },
	}
	for _, test := range tests {
		for i, item := range items {
			if test(strings.ToLower(item.Label)) {
				return i
			}
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, searchTexts(items))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

func searchTexts(items []menu.Item) []string {
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Label
		if item.Detail != "" {
			texts[i] += " " + item.Detail
		}
	}
	return texts
}
