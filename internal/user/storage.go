package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"courier/infrastructure"
)

type Repository interface {
	// CreateUser inserts a new account and returns its id. Fails with
	// infrastructure.ErrDuplicateUsername when the username is taken.
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)

	// CredentialsByUsername returns the id and stored password hash for a
	// username, or infrastructure.ErrUnknownUser.
	CredentialsByUsername(ctx context.Context, username string) (int64, string, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, username, passwordHash, time.Now().UTC()).Scan(&id)
	if err != nil {
		if infrastructure.IsUniqueViolation(err) {
			return 0, infrastructure.ErrDuplicateUsername
		}
		return 0, infrastructure.StorageError(err)
	}
	return id, nil
}

func (r *PostgresRepository) CredentialsByUsername(ctx context.Context, username string) (int64, string, error) {
	var (
		id   int64
		hash string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, password_hash FROM users WHERE username = $1
	`, username).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", infrastructure.ErrUnknownUser
		}
		return 0, "", infrastructure.StorageError(err)
	}
	return id, hash, nil
}
