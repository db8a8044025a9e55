package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/tasklist/internal/tasklist/domain"
	"github.com/aussiebroadwan/tasklist/internal/tasklist/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "tasklist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Users().CreateUser(ctx, "alice", "digest"))

	err := s.Users().CreateUser(ctx, "alice", "other-digest")
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// Usernames are case-sensitive; a different casing is a different user.
	require.NoError(t, s.Users().CreateUser(ctx, "Alice", "digest"))
}

func TestGetUserByCredentials(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Users().CreateUser(ctx, "bob", "digest"))

	u, err := s.Users().GetUserByCredentials(ctx, "bob", "digest")
	require.NoError(t, err)
	require.Equal(t, "bob", u.Username)
	require.NotZero(t, u.ID)
	require.False(t, u.CreatedAt.IsZero())

	_, err = s.Users().GetUserByCredentials(ctx, "bob", "wrong-digest")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByCredentials(ctx, "nobody", "digest")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTasksCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Users().CreateUser(ctx, "carol", "digest"))
	owner, err := s.Users().GetUserByUsername(ctx, "carol")
	require.NoError(t, err)

	require.NoError(t, s.Tasks().CreateTask(ctx, owner.ID, "first", domain.DefaultCategory))
	require.NoError(t, s.Tasks().CreateTask(ctx, owner.ID, "second", "home"))
	require.NoError(t, s.Tasks().CreateTask(ctx, owner.ID, "third", domain.DefaultCategory))

	tasks, err := s.Tasks().ListTasksByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	// Newest first, id breaks ties for same-second inserts.
	require.Equal(t, "third", tasks[0].Title)
	require.Equal(t, "second", tasks[1].Title)
	require.Equal(t, "first", tasks[2].Title)
	for _, task := range tasks {
		require.False(t, task.Completed)
		require.False(t, task.CreatedAt.IsZero())
	}

	target := tasks[1]
	completed := true
	require.NoError(t, s.Tasks().UpdateTask(ctx, target.ID, domain.TaskChanges{Completed: &completed}))

	updated, err := s.Tasks().GetTaskByID(ctx, target.ID)
	require.NoError(t, err)
	require.True(t, updated.Completed)
	require.Equal(t, target.Title, updated.Title)
	require.Equal(t, target.Category, updated.Category)

	require.NoError(t, s.Tasks().DeleteTask(ctx, target.ID))
	_, err = s.Tasks().GetTaskByID(ctx, target.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	remaining, err := s.Tasks().ListTasksByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
}

func TestListTasksByUserEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Users().CreateUser(ctx, "dave", "digest"))
	owner, err := s.Users().GetUserByUsername(ctx, "dave")
	require.NoError(t, err)

	tasks, err := s.Tasks().ListTasksByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, tasks)
	require.Empty(t, tasks)
}

func TestUpdateAssignments(t *testing.T) {
	t.Parallel()

	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("empty changes produce no assignments", func(t *testing.T) {
		require.Empty(t, updateAssignments(domain.TaskChanges{}))
	})

	t.Run("only present fields are assigned", func(t *testing.T) {
		assignments := updateAssignments(domain.TaskChanges{Title: strPtr("new title")})
		require.Equal(t, map[string]any{"title": "new title"}, assignments)
	})

	t.Run("completed is coerced to 0 or 1", func(t *testing.T) {
		require.Equal(t, map[string]any{"completed": 1},
			updateAssignments(domain.TaskChanges{Completed: boolPtr(true)}))
		require.Equal(t, map[string]any{"completed": 0},
			updateAssignments(domain.TaskChanges{Completed: boolPtr(false)}))
	})

	t.Run("explicit empty strings overwrite", func(t *testing.T) {
		assignments := updateAssignments(domain.TaskChanges{Category: strPtr("")})
		require.Equal(t, map[string]any{"category": ""}, assignments)
	})

	t.Run("all fields together", func(t *testing.T) {
		assignments := updateAssignments(domain.TaskChanges{
			Title:     strPtr("t"),
			Category:  strPtr("c"),
			Completed: boolPtr(true),
		})
		require.Len(t, assignments, 3)
	})
}
