package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notehub/internal/domain/entities"
	"notehub/internal/ports/repositories"
	"notehub/pkg/logger"
)

const noteColumns = `id, user_id, title, content, tags, is_public, created_at, updated_at`

// NoteRepository implements repositories.NoteRepository on Postgres.
// updated_at is maintained by a trigger, so every row read back reflects the
// store-computed timestamps.
type NoteRepository struct {
	pool PgxPool
}

// NewNoteRepository creates a note repository on the given pool.
func NewNoteRepository(pool PgxPool) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Content,
		&note.Tags, &note.IsPublic, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}
	return &note, nil
}

func collectNotes(rows pgx.Rows) ([]*entities.Note, error) {
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return notes, nil
}

// Create inserts a note and returns the stored row.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("userID", note.UserID))

	row := r.pool.QueryRow(ctx,
		`INSERT INTO notes (user_id, title, content, tags, is_public)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING `+noteColumns,
		note.UserID, note.Title, note.Content, note.Tags, note.IsPublic,
	)

	created, err := scanNote(row)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return created, nil
}

// GetByID returns the user's note, or (nil, nil) when absent or foreign.
func (r *NoteRepository) GetByID(ctx context.Context, noteID, userID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))
	log.Debug(ctx, "getting note", zap.String("noteID", noteID), zap.String("userID", userID))

	row := r.pool.QueryRow(ctx,
		`SELECT `+noteColumns+`
         FROM notes
         WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, nil
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// ListByUser returns all of the user's notes ordered by updated_at descending.
func (r *NoteRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByUser"))
	log.Debug(ctx, "listing notes", zap.String("userID", userID))

	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+`
         FROM notes
         WHERE user_id = $1
         ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes, err := collectNotes(rows)
	if err != nil {
		log.Error(ctx, "failed to read notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// Update applies the patch to the user's note. Nil patch fields keep the
// stored values; updated_at is refreshed by the store.
func (r *NoteRepository) Update(ctx context.Context, noteID, userID string, patch entities.NotePatch) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", noteID))

	row := r.pool.QueryRow(ctx,
		`UPDATE notes
         SET title     = COALESCE($1, title),
             content   = COALESCE($2, content),
             tags      = COALESCE($3, tags),
             is_public = COALESCE($4, is_public)
         WHERE id = $5 AND user_id = $6
         RETURNING `+noteColumns,
		patch.Title, patch.Content, patch.Tags, patch.IsPublic, noteID, userID,
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found or not owned by user")
			return nil, nil
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// Delete removes the user's note.
func (r *NoteRepository) Delete(ctx context.Context, noteID, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return repositories.ErrNoteNotFound
	}

	return nil
}

// GetPublic returns the note regardless of owner when it is public, and
// (nil, nil) when absent or private.
func (r *NoteRepository) GetPublic(ctx context.Context, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetPublic"))
	log.Debug(ctx, "getting public note", zap.String("noteID", noteID))

	row := r.pool.QueryRow(ctx,
		`SELECT `+noteColumns+`
         FROM notes
         WHERE id = $1 AND is_public = TRUE`,
		noteID,
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "public note not found", zap.String("noteID", noteID))
			return nil, nil
		}
		log.Error(ctx, "failed to get public note", zap.Error(err))
		return nil, fmt.Errorf("failed to get public note: %w", err)
	}

	return note, nil
}

// ListPublic returns every public note ordered by updated_at descending.
func (r *NoteRepository) ListPublic(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListPublic"))
	log.Debug(ctx, "listing public notes")

	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+`
         FROM notes
         WHERE is_public = TRUE
         ORDER BY updated_at DESC`,
	)
	if err != nil {
		log.Error(ctx, "failed to list public notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list public notes: %w", err)
	}

	notes, err := collectNotes(rows)
	if err != nil {
		log.Error(ctx, "failed to read public notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list public notes: %w", err)
	}
	return notes, nil
}
