package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/tasklist/internal/tasklist/domain"
)

const (
	createUser = `INSERT INTO users (username, password_hash) VALUES (?, ?);`

	getUserByUsername = `SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = ?;`

	getUserByCredentials = `SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = ? AND password_hash = ?;`
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) CreateUser(ctx context.Context, username, passwordHash string) error {
	_, err := r.db.ExecContext(ctx, createUser, username, passwordHash)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, getUserByUsername, username))
}

func (r *usersRepo) GetUserByCredentials(
	ctx context.Context,
	username, passwordHash string,
) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, getUserByCredentials, username, passwordHash))
}

func (r *usersRepo) scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}
