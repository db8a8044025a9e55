package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/tasklist/internal/tasklist/domain"
	"github.com/aussiebroadwan/tasklist/internal/tasklist/store"
	"github.com/stretchr/testify/require"
)

func newTaskService(t *testing.T) (*TaskService, store.Store) {
	t.Helper()
	st := newTestStore(t)
	return &TaskService{
		Store:    st,
		Resolver: &UsernameResolver{Store: st},
	}, st
}

func registerUser(t *testing.T, st store.Store, username string) {
	t.Helper()
	svc := &UserService{Store: st}
	require.NoError(t, svc.Register(context.Background(), username, "secret1"))
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTaskAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects missing username or title", func(t *testing.T) {
		svc, _ := newTaskService(t)

		require.ErrorIs(t, svc.Add(ctx, "", "buy milk", nil), ErrMissingTaskInput)
		require.ErrorIs(t, svc.Add(ctx, "alice", "", nil), ErrMissingTaskInput)
	})

	t.Run("rejects unknown username", func(t *testing.T) {
		svc, _ := newTaskService(t)
		require.ErrorIs(t, svc.Add(ctx, "nobody", "buy milk", nil), ErrUserNotFound)
	})

	t.Run("omitted category falls back to the sentinel", func(t *testing.T) {
		svc, st := newTaskService(t)
		registerUser(t, st, "alice")

		require.NoError(t, svc.Add(ctx, "alice", "buy milk", nil))

		tasks, err := svc.List(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Equal(t, "buy milk", tasks[0].Title)
		require.Equal(t, domain.DefaultCategory, tasks[0].Category)
		require.False(t, tasks[0].Completed)
	})

	t.Run("explicit category is kept verbatim", func(t *testing.T) {
		svc, st := newTaskService(t)
		registerUser(t, st, "alice")

		require.NoError(t, svc.Add(ctx, "alice", "water plants", strPtr("home")))

		tasks, err := svc.List(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, "home", tasks[0].Category)
	})
}

func TestTaskList(t *testing.T) {
	ctx := context.Background()

	t.Run("empty identity means not logged in", func(t *testing.T) {
		svc, _ := newTaskService(t)
		_, err := svc.List(ctx, "")
		require.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("unknown identity is user not found", func(t *testing.T) {
		svc, _ := newTaskService(t)
		_, err := svc.List(ctx, "nobody")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("returns newest first", func(t *testing.T) {
		svc, st := newTaskService(t)
		registerUser(t, st, "alice")

		require.NoError(t, svc.Add(ctx, "alice", "A", nil))
		require.NoError(t, svc.Add(ctx, "alice", "B", nil))
		require.NoError(t, svc.Add(ctx, "alice", "C", nil))

		tasks, err := svc.List(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		require.Equal(t, "C", tasks[0].Title)
		require.Equal(t, "B", tasks[1].Title)
		require.Equal(t, "A", tasks[2].Title)
	})

	t.Run("no tasks yields an empty list, not an error", func(t *testing.T) {
		svc, st := newTaskService(t)
		registerUser(t, st, "alice")

		tasks, err := svc.List(ctx, "alice")
		require.NoError(t, err)
		require.Empty(t, tasks)
	})

	t.Run("users only see their own tasks", func(t *testing.T) {
		svc, st := newTaskService(t)
		registerUser(t, st, "alice")
		registerUser(t, st, "bob")

		require.NoError(t, svc.Add(ctx, "alice", "alice's task", nil))
		require.NoError(t, svc.Add(ctx, "bob", "bob's task", nil))

		tasks, err := svc.List(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Equal(t, "alice's task", tasks[0].Title)
	})
}

func TestTaskUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id is not found", func(t *testing.T) {
		svc, _ := newTaskService(t)
		err := svc.Update(ctx, 9999, domain.TaskChanges{Title: strPtr("x")})
		require.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("empty payload is rejected", func(t *testing.T) {
		svc, st := newTaskService(t)
		registerUser(t, st, "alice")
		require.NoError(t, svc.Add(ctx, "alice", "task", nil))

		tasks, err := svc.List(ctx, "alice")
		require.NoError(t, err)

		require.ErrorIs(t, svc.Update(ctx, tasks[0].ID, domain.TaskChanges{}), ErrNothingToUpdate)
	})

	t.Run("mutates only the present fields", func(t *testing.T) {
		svc, st := newTaskService(t)
		registerUser(t, st, "alice")
		require.NoError(t, svc.Add(ctx, "alice", "original title", strPtr("home")))

		tasks, err := svc.List(ctx, "alice")
		require.NoError(t, err)
		id := tasks[0].ID

		require.NoError(t, svc.Update(ctx, id, domain.TaskChanges{Completed: boolPtr(true)}))

		tasks, err = svc.List(ctx, "alice")
		require.NoError(t, err)
		require.True(t, tasks[0].Completed)
		require.Equal(t, "original title", tasks[0].Title)
		require.Equal(t, "home", tasks[0].Category)

		require.NoError(t, svc.Update(ctx, id, domain.TaskChanges{
			Title:    strPtr("new title"),
			Category: strPtr("errands"),
		}))

		tasks, err = svc.List(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, "new title", tasks[0].Title)
		require.Equal(t, "errands", tasks[0].Category)
		require.True(t, tasks[0].Completed)
	})

	t.Run("any caller can update any task by id", func(t *testing.T) {
		// Documented behaviour: no identity is accepted on update, so tasks
		// are mutable across users. The contract keeps it that way.
		svc, st := newTaskService(t)
		registerUser(t, st, "alice")
		registerUser(t, st, "mallory")
		require.NoError(t, svc.Add(ctx, "alice", "alice's task", nil))

		tasks, err := svc.List(ctx, "alice")
		require.NoError(t, err)

		require.NoError(t, svc.Update(ctx, tasks[0].ID, domain.TaskChanges{Title: strPtr("changed by anyone")}))

		tasks, err = svc.List(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, "changed by anyone", tasks[0].Title)
	})
}

func TestTaskDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id is not found", func(t *testing.T) {
		svc, _ := newTaskService(t)
		require.ErrorIs(t, svc.Delete(ctx, 9999), ErrTaskNotFound)
	})

	t.Run("removes the row and a second delete fails", func(t *testing.T) {
		svc, st := newTaskService(t)
		registerUser(t, st, "alice")
		require.NoError(t, svc.Add(ctx, "alice", "to be deleted", nil))

		tasks, err := svc.List(ctx, "alice")
		require.NoError(t, err)
		id := tasks[0].ID

		require.NoError(t, svc.Delete(ctx, id))

		tasks, err = svc.List(ctx, "alice")
		require.NoError(t, err)
		require.Empty(t, tasks)

		require.ErrorIs(t, svc.Delete(ctx, id), ErrTaskNotFound)
	})
}
