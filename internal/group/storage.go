package group

import (
	"context"
	"database/sql"
	"time"

	"courier/infrastructure"
)

type Repository interface {
	// CreateGroup inserts a new group and returns its id. Fails with
	// infrastructure.ErrUnknownUser when the admin does not exist and
	// infrastructure.ErrDuplicateGroupName when the name is taken.
	CreateGroup(ctx context.Context, name string, adminID int64) (int64, error)

	// AddMember inserts one membership pair. Fails with
	// infrastructure.ErrUnknownGroup / ErrUnknownUser / ErrAlreadyMember.
	AddMember(ctx context.Context, groupID, userID int64) error

	// RemoveMember deletes the pair if present; absence is not an error.
	RemoveMember(ctx context.Context, groupID, userID int64) error

	// Members returns current members in membership insertion order, or
	// infrastructure.ErrUnknownGroup.
	Members(ctx context.Context, groupID int64) ([]Member, error)

	// Groups returns all groups in creation order.
	Groups(ctx context.Context) ([]Group, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateGroup(ctx context.Context, name string, adminID int64) (int64, error) {
	var id int64
	err := infrastructure.WithTransaction(r.db, ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, adminID).Scan(&exists); err != nil {
			return infrastructure.StorageError(err)
		}
		if !exists {
			return infrastructure.ErrUnknownUser
		}

		err := tx.QueryRow(`
			INSERT INTO groups (name, admin_id, created_at)
			VALUES ($1, $2, $3)
			RETURNING id
		`, name, adminID, time.Now().UTC()).Scan(&id)
		if err != nil {
			if infrastructure.IsUniqueViolation(err) {
				return infrastructure.ErrDuplicateGroupName
			}
			return infrastructure.StorageError(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) AddMember(ctx context.Context, groupID, userID int64) error {
	return infrastructure.WithTransaction(r.db, ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, groupID).Scan(&exists); err != nil {
			return infrastructure.StorageError(err)
		}
		if !exists {
			return infrastructure.ErrUnknownGroup
		}

		if err := tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
			return infrastructure.StorageError(err)
		}
		if !exists {
			return infrastructure.ErrUnknownUser
		}

		_, err := tx.Exec(`
			INSERT INTO group_users (group_id, user_id, joined_at)
			VALUES ($1, $2, $3)
		`, groupID, userID, time.Now().UTC())
		if err != nil {
			if infrastructure.IsUniqueViolation(err) {
				return infrastructure.ErrAlreadyMember
			}
			return infrastructure.StorageError(err)
		}
		return nil
	})
}

func (r *PostgresRepository) RemoveMember(ctx context.Context, groupID, userID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM group_users WHERE group_id = $1 AND user_id = $2
	`, groupID, userID)
	if err != nil {
		return infrastructure.StorageError(err)
	}
	return nil
}

func (r *PostgresRepository) Members(ctx context.Context, groupID int64) ([]Member, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, groupID).Scan(&exists)
	if err != nil {
		return nil, infrastructure.StorageError(err)
	}
	if !exists {
		return nil, infrastructure.ErrUnknownGroup
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.username
		FROM users u
		JOIN group_users gu ON u.id = gu.user_id
		WHERE gu.group_id = $1
		ORDER BY gu.joined_at, u.id
	`, groupID)
	if err != nil {
		return nil, infrastructure.StorageError(err)
	}
	defer rows.Close()

	members := []Member{}
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.UserID, &m.Username); err != nil {
			return nil, infrastructure.StorageError(err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infrastructure.StorageError(err)
	}
	return members, nil
}

func (r *PostgresRepository) Groups(ctx context.Context) ([]Group, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, admin_id, created_at FROM groups ORDER BY id
	`)
	if err != nil {
		return nil, infrastructure.StorageError(err)
	}
	defer rows.Close()

	groups := []Group{}
	for rows.Next() {
		var g Group
		if err := rows.Scan(&g.ID, &g.Name, &g.AdminID, &g.CreatedAt); err != nil {
			return nil, infrastructure.StorageError(err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, infrastructure.StorageError(err)
	}
	return groups, nil
}
