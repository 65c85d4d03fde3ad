package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query and cursor position.
func (r *Rows) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(r.Filter.Value())
	restore := -1
	r.Filter.Set(query, cursor)
	if trimmed != "" {
		if prevTrimmed == "" {
			r.LastCursor = r.Cursor
		}
		r.Cursor = 0
	} else if prevTrimmed != "" {
		restore = r.LastCursor
	}
	r.applyFilter()
	if trimmed != "" && len(r.Items) > 0 {
		if idx := BestMatchIndex(r.Items, trimmed); idx >= 0 {
			r.Cursor = idx
		}
	}
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(r.Items) {
			r.Cursor = restore
		} else if len(r.Items) > 0 {
			r.Cursor = len(r.Items) - 1
		}
		r.LastCursor = -1
	}
}

func (r *Rows) applyFilter() {
	r.Items = FilterItems(r.Full, r.Filter.Value())
	if len(r.Items) == 0 {
		r.Cursor = 0
		r.ViewportOffset = 0
		return
	}
	if r.Cursor < 0 {
		r.Cursor = 0
		return
	}
	if r.Cursor >= len(r.Items) {
		r.Cursor = len(r.Items) - 1
	}
	if r.ViewportOffset > len(r.Items)-1 {
		r.ViewportOffset = 0
	}
}

// editFilter applies edit to a copy of the filter and refilters on change.
func (r *Rows) editFilter(edit func(*Text) bool) bool {
	next := r.Filter
	if !edit(&next) {
		return false
	}
	r.SetFilter(next.Value(), next.Cursor())
	return true
}

// InsertFilterText inserts text into the filter at the cursor position.
func (r *Rows) InsertFilterText(text string) bool {
	return r.editFilter(func(t *Text) bool { return t.Insert(text) })
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (r *Rows) DeleteFilterRuneBackward() bool {
	return r.editFilter((*Text).DeleteBackward)
}

// DeleteFilterWordBackward deletes the word preceding the filter cursor.
func (r *Rows) DeleteFilterWordBackward() bool {
	return r.editFilter((*Text).DeleteWordBackward)
}

// ClearFilter drops the filter, restoring the pre-filter cursor.
func (r *Rows) ClearFilter() bool {
	if r.Filter.Value() == "" {
		return false
	}
	r.SetFilter("", 0)
	return true
}

// FilterItems returns items matching the supplied filter string.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Item, 0, len(matches))
		for idx, item := range items {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) || strings.Contains(strings.ToLower(item.ID), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex returns the best index for the query among the provided items.
func BestMatchIndex(items []Item, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(items) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return 0
	}
	return best.OriginalIndex
}
