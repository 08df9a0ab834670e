package history

import (
	"context"
	"database/sql"

	"courier/infrastructure"
)

type Repository interface {
	// MessagesFor returns every message addressed to the user, direct and
	// group-originated alike, ordered by timestamp then id. Fails with
	// infrastructure.ErrUnknownUser.
	MessagesFor(ctx context.Context, userID int64) ([]Entry, error)

	// MessagesIn returns every message that originated from the group,
	// one entry per recipient per send, in the same order. Fails with
	// infrastructure.ErrUnknownGroup.
	MessagesIn(ctx context.Context, groupID int64) ([]Entry, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) MessagesFor(ctx context.Context, userID int64) ([]Entry, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		return nil, infrastructure.StorageError(err)
	}
	if !exists {
		return nil, infrastructure.ErrUnknownUser
	}

	return r.scanEntries(ctx, `
		SELECT m.id, u.username, m.content, m.created_at
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE m.receiver_id = $1
		ORDER BY m.created_at, m.id
	`, userID)
}

func (r *PostgresRepository) MessagesIn(ctx context.Context, groupID int64) ([]Entry, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, groupID).Scan(&exists)
	if err != nil {
		return nil, infrastructure.StorageError(err)
	}
	if !exists {
		return nil, infrastructure.ErrUnknownGroup
	}

	return r.scanEntries(ctx, `
		SELECT m.id, u.username, m.content, m.created_at
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE m.group_id = $1
		ORDER BY m.created_at, m.id
	`, groupID)
}

func (r *PostgresRepository) scanEntries(ctx context.Context, query string, arg int64) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, infrastructure.StorageError(err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.MessageID, &e.Sender, &e.Content, &e.Timestamp); err != nil {
			return nil, infrastructure.StorageError(err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infrastructure.StorageError(err)
	}
	return entries, nil
}
