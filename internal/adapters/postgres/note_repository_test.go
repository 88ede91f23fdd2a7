package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notehub/internal/adapters/postgres"
	"notehub/internal/domain/entities"
	"notehub/internal/ports/repositories"
	"notehub/pkg/logger"
)

var errDatabaseConnection = errors.New("database connection failed")

var noteColumns = []string{"id", "user_id", "title", "content", "tags", "is_public", "created_at", "updated_at"}

func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func noteRow(id, userID, title, content string, tags []string, isPublic bool, createdAt, updatedAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(noteColumns).
		AddRow(id, userID, title, content, tags, isPublic, createdAt, updatedAt)
}

func TestNewNoteRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := postgres.NewNoteRepository(mock)

	assert.NotNil(t, repo)
	assert.Implements(t, (*repositories.NoteRepository)(nil), repo)
}

func TestNoteRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Now()

	input := entities.NewNote("user-123", "Test Note", "Some content.", []string{"go"})

	t.Run("successful creation returns stored row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO notes`).
			WithArgs(input.UserID, input.Title, input.Content, input.Tags, input.IsPublic).
			WillReturnRows(noteRow("note-abc", input.UserID, input.Title, input.Content, input.Tags, false, now, now))

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, input)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "note-abc", created.ID)
		assert.Equal(t, input.UserID, created.UserID)
		assert.WithinDuration(t, now, created.CreatedAt, time.Second)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO notes`).
			WithArgs(input.UserID, input.Title, input.Content, input.Tags, input.IsPublic).
			WillReturnError(errDatabaseConnection)

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, input)

		require.Error(t, err)
		assert.Nil(t, created)
		assert.Contains(t, err.Error(), "failed to create note")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_GetByID(t *testing.T) {
	ctx := testContext(t)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT .+ FROM notes\s+WHERE id = \$1 AND user_id = \$2`).
			WithArgs("note-1", "user-1").
			WillReturnRows(noteRow("note-1", "user-1", "Title", "Body", []string{"a"}, false, now, now))

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.GetByID(ctx, "note-1", "user-1")

		require.NoError(t, err)
		require.NotNil(t, note)
		assert.Equal(t, "note-1", note.ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent or foreign note yields nil, nil", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT .+ FROM notes\s+WHERE id = \$1 AND user_id = \$2`).
			WithArgs("note-1", "other-user").
			WillReturnRows(pgxmock.NewRows(noteColumns))

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.GetByID(ctx, "note-1", "other-user")

		require.NoError(t, err)
		assert.Nil(t, note)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_ListByUser(t *testing.T) {
	ctx := testContext(t)
	t1 := time.Now().Add(-time.Hour)
	t2 := time.Now()

	t.Run("returns notes ordered by updated_at desc", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(noteColumns).
			AddRow("note-2", "user-1", "Rust notes", "ownership", []string{"rust"}, false, t1, t2).
			AddRow("note-1", "user-1", "Go notes", "channels", []string{"go"}, false, t1, t1)

		mock.ExpectQuery(`SELECT .+ FROM notes\s+WHERE user_id = \$1\s+ORDER BY updated_at DESC`).
			WithArgs("user-1").
			WillReturnRows(rows)

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.ListByUser(ctx, "user-1")

		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "note-2", notes[0].ID)
		assert.Equal(t, "note-1", notes[1].ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no notes yields empty slice", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT .+ FROM notes\s+WHERE user_id = \$1`).
			WithArgs("user-2").
			WillReturnRows(pgxmock.NewRows(noteColumns))

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.ListByUser(ctx, "user-2")

		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT .+ FROM notes\s+WHERE user_id = \$1`).
			WithArgs("user-1").
			WillReturnError(errDatabaseConnection)

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.ListByUser(ctx, "user-1")

		require.Error(t, err)
		assert.Nil(t, notes)
		assert.Contains(t, err.Error(), "failed to list notes")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_Update(t *testing.T) {
	ctx := testContext(t)
	now := time.Now()

	title := "New title"
	patch := entities.NotePatch{Title: &title}

	t.Run("successful update returns refreshed row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`UPDATE notes`).
			WithArgs(patch.Title, patch.Content, patch.Tags, patch.IsPublic, "note-1", "user-1").
			WillReturnRows(noteRow("note-1", "user-1", title, "Body", []string{"a"}, false, now.Add(-time.Hour), now))

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.Update(ctx, "note-1", "user-1", patch)

		require.NoError(t, err)
		require.NotNil(t, note)
		assert.Equal(t, title, note.Title)
		assert.True(t, note.UpdatedAt.After(note.CreatedAt))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent or foreign note yields nil, nil", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`UPDATE notes`).
			WithArgs(patch.Title, patch.Content, patch.Tags, patch.IsPublic, "note-9", "user-1").
			WillReturnRows(pgxmock.NewRows(noteColumns))

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.Update(ctx, "note-9", "user-1", patch)

		require.NoError(t, err)
		assert.Nil(t, note)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("successful delete", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM notes WHERE id = \$1 AND user_id = \$2`).
			WithArgs("note-1", "user-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewNoteRepository(mock)
		require.NoError(t, repo.Delete(ctx, "note-1", "user-1"))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent note reports not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM notes WHERE id = \$1 AND user_id = \$2`).
			WithArgs("note-9", "user-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewNoteRepository(mock)
		err = repo.Delete(ctx, "note-9", "user-1")

		require.ErrorIs(t, err, repositories.ErrNoteNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM notes WHERE id = \$1 AND user_id = \$2`).
			WithArgs("note-1", "user-1").
			WillReturnError(errDatabaseConnection)

		repo := postgres.NewNoteRepository(mock)
		err = repo.Delete(ctx, "note-1", "user-1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete note")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_GetPublic(t *testing.T) {
	ctx := testContext(t)
	now := time.Now()

	t.Run("public note readable without owner scope", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT .+ FROM notes\s+WHERE id = \$1 AND is_public = TRUE`).
			WithArgs("note-1").
			WillReturnRows(noteRow("note-1", "someone-else", "Shared", "Body", []string{}, true, now, now))

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.GetPublic(ctx, "note-1")

		require.NoError(t, err)
		require.NotNil(t, note)
		assert.True(t, note.IsPublic)
		assert.Equal(t, "someone-else", note.UserID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("private or absent note yields nil, nil", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT .+ FROM notes\s+WHERE id = \$1 AND is_public = TRUE`).
			WithArgs("note-private").
			WillReturnRows(pgxmock.NewRows(noteColumns))

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.GetPublic(ctx, "note-private")

		require.NoError(t, err)
		assert.Nil(t, note)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_ListPublic(t *testing.T) {
	ctx := testContext(t)
	now := time.Now()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows(noteColumns).
		AddRow("note-1", "user-1", "A", "", []string{}, true, now, now).
		AddRow("note-2", "user-2", "B", "", []string{}, true, now, now.Add(-time.Minute))

	mock.ExpectQuery(`SELECT .+ FROM notes\s+WHERE is_public = TRUE\s+ORDER BY updated_at DESC`).
		WillReturnRows(rows)

	repo := postgres.NewNoteRepository(mock)
	notes, err := repo.ListPublic(ctx)

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "user-1", notes[0].UserID)
	assert.Equal(t, "user-2", notes[1].UserID)

	require.NoError(t, mock.ExpectationsWereMet())
}
