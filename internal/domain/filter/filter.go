// Package filter implements pure, in-memory filtering of note lists by
// free-text query and selected tags.
package filter

import (
	"sort"
	"strings"

	"notehub/internal/domain/entities"
)

// MatchesQuery reports whether the query is a case-insensitive substring of
// the note's title or content. An empty query matches every note.
func MatchesQuery(note *entities.Note, query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	return strings.Contains(strings.ToLower(note.Title), query) ||
		strings.Contains(strings.ToLower(note.Content), query)
}

// MatchesTags reports whether at least one of the selected tags is present in
// the note's tag set. Tag comparison is exact and case-sensitive, unlike the
// text query. An empty selection matches every note.
func MatchesTags(note *entities.Note, selectedTags []string) bool {
	if len(selectedTags) == 0 {
		return true
	}
	for _, selected := range selectedTags {
		for _, tag := range note.Tags {
			if tag == selected {
				return true
			}
		}
	}
	return false
}

// Filter returns the notes matching both the query and the tag selection,
// preserving the input order. The input slice is never modified.
func Filter(notes []*entities.Note, query string, selectedTags []string) []*entities.Note {
	visible := make([]*entities.Note, 0, len(notes))
	for _, note := range notes {
		if MatchesQuery(note, query) && MatchesTags(note, selectedTags) {
			visible = append(visible, note)
		}
	}
	return visible
}

// DistinctTags returns every tag used across the notes, deduplicated and
// sorted lexicographically.
func DistinctTags(notes []*entities.Note) []string {
	seen := make(map[string]struct{})
	for _, note := range notes {
		for _, tag := range note.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
