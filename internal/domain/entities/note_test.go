package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notehub/internal/domain/entities"
)

func TestNewNote(t *testing.T) {
	note := entities.NewNote("user-1", "  Weekly plan  ", "- [ ] review", []string{"work", "work", " ", "go"})

	assert.Equal(t, "user-1", note.UserID)
	assert.Equal(t, "Weekly plan", note.Title)
	assert.Equal(t, []string{"work", "go"}, note.Tags)
	assert.False(t, note.IsPublic)
	assert.Empty(t, note.ID, "id is assigned by the store")
}

func TestNoteValidate(t *testing.T) {
	t.Run("valid note", func(t *testing.T) {
		note := entities.NewNote("user-1", "Title", "", nil)
		require.NoError(t, note.Validate())
	})

	t.Run("blank title", func(t *testing.T) {
		note := entities.NewNote("user-1", "   ", "content", nil)
		require.ErrorIs(t, note.Validate(), entities.ErrEmptyTitle)
	})
}

func TestNormalizeTags(t *testing.T) {
	t.Run("removes duplicates preserving first occurrence", func(t *testing.T) {
		got := entities.NormalizeTags([]string{"go", "rust", "go", "rust", "db"})
		assert.Equal(t, []string{"go", "rust", "db"}, got)
	})

	t.Run("keeps case-distinct tags", func(t *testing.T) {
		got := entities.NormalizeTags([]string{"Go", "go"})
		assert.Equal(t, []string{"Go", "go"}, got)
	})

	t.Run("drops empty and whitespace tags", func(t *testing.T) {
		got := entities.NormalizeTags([]string{"", "  ", "one"})
		assert.Equal(t, []string{"one"}, got)
	})

	t.Run("nil input", func(t *testing.T) {
		assert.Empty(t, entities.NormalizeTags(nil))
	})
}

func TestNotePatch(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("blank patched title is rejected", func(t *testing.T) {
		patch := entities.NotePatch{Title: strPtr("   ")}
		require.ErrorIs(t, patch.Validate(), entities.ErrEmptyTitle)
	})

	t.Run("nil title is not validated", func(t *testing.T) {
		patch := entities.NotePatch{Content: strPtr("")}
		require.NoError(t, patch.Validate())
	})

	t.Run("normalize trims title and dedupes tags", func(t *testing.T) {
		tags := []string{"a", "a", "b"}
		patch := entities.NotePatch{Title: strPtr("  X  "), Tags: &tags}
		patch.Normalize()
		assert.Equal(t, "X", *patch.Title)
		assert.Equal(t, []string{"a", "b"}, *patch.Tags)
	})

	t.Run("empty patch", func(t *testing.T) {
		patch := entities.NotePatch{}
		assert.True(t, patch.IsEmpty())
	})
}
