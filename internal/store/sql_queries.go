package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/thoughts/models"
)

// psql builds statements with "?" placeholders as expected by go-sqlite3.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var (
	userColumns     = []string{"user_id", "email", "password_hash", "name", "created_at"}
	notebookColumns = []string{"notebook_id", "user_id", "name", "created_at"}
	noteColumns     = []string{"note_id", "user_id", "notebook_id", "content", "created_at", "updated_at"}
)

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.PasswordHash, user.Name, user.CreatedAt.UnixMilli()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return buildSelectUserQuery(sq.Eq{"email": email})
}

func buildSelectUserByIDQuery(userID string) (string, []any, error) {
	return buildSelectUserQuery(sq.Eq{"user_id": userID})
}

func buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdatePasswordHashQuery(userID, passwordHash string) (string, []any, error) {
	query, args, err := psql.
		Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── notebooks ─────────────────────────────────────────────────────────────────

func buildInsertNotebookQuery(notebook models.Notebook) (string, []any, error) {
	query, args, err := psql.
		Insert(notebook.TableName()).
		Columns(notebookColumns...).
		Values(notebook.NotebookID, notebook.UserID, notebook.Name, notebook.CreatedAt.UnixMilli()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectNotebooksQuery lists a user's notebooks in creation order.
func buildSelectNotebooksQuery(userID string) (string, []any, error) {
	query, args, err := psql.
		Select(notebookColumns...).
		From(models.Notebook{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "notebook_id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── notes ─────────────────────────────────────────────────────────────────────

func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	query, args, err := psql.
		Insert(note.TableName()).
		Columns(noteColumns...).
		Values(
			note.NoteID,
			note.UserID,
			nullableString(note.NotebookID),
			note.Content,
			note.CreatedAt.UnixMilli(),
			note.UpdatedAt.UnixMilli(),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateNoteQuery rewrites content and updated_at only. Notebook
// membership and created_at are fixed at creation.
func buildUpdateNoteQuery(note models.Note) (string, []any, error) {
	query, args, err := psql.
		Update(note.TableName()).
		Set("content", note.Content).
		Set("updated_at", note.UpdatedAt.UnixMilli()).
		Where(sq.Eq{"note_id": note.NoteID, "user_id": note.UserID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectNoteQuery(userID, noteID string) (string, []any, error) {
	query, args, err := psql.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"note_id": noteID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectNotesQuery lists a user's notes most recently updated first.
// Notebook membership is filtered in memory from this snapshot.
func buildSelectNotesQuery(userID string) (string, []any, error) {
	query, args, err := psql.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC", "note_id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
