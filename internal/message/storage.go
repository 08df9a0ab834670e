package message

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"courier/infrastructure"
)

type Repository interface {
	// CreateDirect appends one message with no origin group and returns its
	// id. Fails with infrastructure.ErrUnknownUser when sender or receiver
	// do not exist. The record is written atomically.
	CreateDirect(ctx context.Context, senderID, receiverID int64, content string) (int64, error)

	// FanOut appends one message per current member of the group, all
	// carrying the group as origin, and returns the new ids in member
	// order. The membership snapshot and every insert happen in a single
	// transaction, so a concurrent membership edit is either entirely
	// before or entirely after the fan-out. An empty group yields no
	// messages and no error. Fails with infrastructure.ErrUnknownGroup,
	// ErrUnknownUser (sender) or ErrNotMember.
	FanOut(ctx context.Context, senderID, groupID int64, content string) ([]int64, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateDirect(ctx context.Context, senderID, receiverID int64, content string) (int64, error) {
	var id int64
	err := infrastructure.WithTransaction(r.db, ctx, func(tx *sql.Tx) error {
		for _, userID := range []int64{senderID, receiverID} {
			var exists bool
			if err := tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
				return infrastructure.StorageError(err)
			}
			if !exists {
				return infrastructure.ErrUnknownUser
			}
		}

		err := tx.QueryRow(`
			INSERT INTO messages (sender_id, receiver_id, group_id, content, created_at)
			VALUES ($1, $2, NULL, $3, $4)
			RETURNING id
		`, senderID, receiverID, content, time.Now().UTC()).Scan(&id)
		if err != nil {
			return infrastructure.StorageError(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) FanOut(ctx context.Context, senderID, groupID int64, content string) ([]int64, error) {
	var ids []int64
	err := infrastructure.WithTransaction(r.db, ctx, func(tx *sql.Tx) error {
		var adminID int64
		err := tx.QueryRow(`SELECT admin_id FROM groups WHERE id = $1`, groupID).Scan(&adminID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return infrastructure.ErrUnknownGroup
			}
			return infrastructure.StorageError(err)
		}

		var senderExists bool
		if err := tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, senderID).Scan(&senderExists); err != nil {
			return infrastructure.StorageError(err)
		}
		if !senderExists {
			return infrastructure.ErrUnknownUser
		}

		// Membership snapshot, frozen for this transaction.
		rows, err := tx.Query(`
			SELECT user_id FROM group_users
			WHERE group_id = $1
			ORDER BY joined_at, user_id
		`, groupID)
		if err != nil {
			return infrastructure.StorageError(err)
		}

		var members []int64
		senderIsMember := false
		for rows.Next() {
			var userID int64
			if err := rows.Scan(&userID); err != nil {
				rows.Close()
				return infrastructure.StorageError(err)
			}
			if userID == senderID {
				senderIsMember = true
			}
			members = append(members, userID)
		}
		// The snapshot must be fully drained before the inserts reuse the
		// transaction's connection.
		if err := rows.Close(); err != nil {
			return infrastructure.StorageError(err)
		}
		if err := rows.Err(); err != nil {
			return infrastructure.StorageError(err)
		}

		if !senderIsMember && senderID != adminID {
			return infrastructure.ErrNotMember
		}

		// One row per member as of the snapshot, the sender's own copy
		// included. An empty roster commits zero rows and succeeds.
		ids = make([]int64, 0, len(members))
		for _, receiverID := range members {
			var id int64
			err := tx.QueryRow(`
				INSERT INTO messages (sender_id, receiver_id, group_id, content, created_at)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id
			`, senderID, receiverID, groupID, content, time.Now().UTC()).Scan(&id)
			if err != nil {
				return infrastructure.StorageError(err)
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
