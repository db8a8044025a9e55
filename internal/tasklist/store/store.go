package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/tasklist/internal/tasklist/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. The handle is constructed by the process entry point and
// passed down explicitly; nothing in the service layer opens connections on
// its own.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user. Returns ErrAlreadyExists when the
	// username is taken (usernames are unique, case-sensitive).
	CreateUser(ctx context.Context, username, passwordHash string) error

	// GetUserByUsername resolves a caller-supplied username to a user row.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByCredentials looks up a user by username and exact password
	// digest. Used during login; a miss on either field is ErrNotFound.
	GetUserByCredentials(ctx context.Context, username, passwordHash string) (domain.User, error)
}

type Tasks interface {
	// CreateTask appends a new incomplete task for the given owner.
	CreateTask(ctx context.Context, userID int64, title, category string) error

	// ListTasksByUser returns the user's tasks newest first.
	ListTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error)

	// GetTaskByID fetches a single task by its id, owner ignored.
	GetTaskByID(ctx context.Context, id int64) (domain.Task, error)

	// UpdateTask applies the present fields of changes to the task row.
	// The caller is expected to reject an all-nil changes value first.
	UpdateTask(ctx context.Context, id int64, changes domain.TaskChanges) error

	// DeleteTask removes the row unconditionally.
	DeleteTask(ctx context.Context, id int64) error
}
