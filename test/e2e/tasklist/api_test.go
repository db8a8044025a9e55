package tasklist_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/tasklist/pkg/taskapi"
	"github.com/stretchr/testify/require"
)

func TestUserJourney(t *testing.T) {
	ctx := context.Background()
	client := setupServer(t)

	// register("alice","secret1") then log in and work the list end to end
	mustRegister(t, client, "alice", "secret1")

	login, err := client.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.True(t, login.Success, login.Message)
	require.Equal(t, "alice", login.Username)
	require.NotZero(t, login.UserID)

	added, err := client.AddTask(ctx, "alice", "buy milk", nil)
	require.NoError(t, err)
	require.True(t, added.Success, added.Message)

	list, err := client.ListTasks(ctx, "alice")
	require.NoError(t, err)
	require.True(t, list.Success, list.Message)
	require.Len(t, list.Tasks, 1)
	require.Equal(t, "buy milk", list.Tasks[0].Title)
	require.Equal(t, "uncategorized", list.Tasks[0].Category)
	require.False(t, list.Tasks[0].Completed)

	completed := true
	updated, err := client.UpdateTask(ctx, list.Tasks[0].ID, taskapi.UpdateTaskRequest{Completed: &completed})
	require.NoError(t, err)
	require.True(t, updated.Success, updated.Message)

	list, err = client.ListTasks(ctx, "alice")
	require.NoError(t, err)
	require.True(t, list.Tasks[0].Completed)

	deleted, err := client.DeleteTask(ctx, list.Tasks[0].ID)
	require.NoError(t, err)
	require.True(t, deleted.Success, deleted.Message)

	list, err = client.ListTasks(ctx, "alice")
	require.NoError(t, err)
	require.True(t, list.Success)
	require.Empty(t, list.Tasks)
}

func TestRegistrationConflicts(t *testing.T) {
	ctx := context.Background()
	client := setupServer(t)

	mustRegister(t, client, "alice", "secret1")

	resp, err := client.Register(ctx, "alice", "another-password")
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "username already exists", resp.Message)

	// The first credentials still work.
	login, err := client.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.True(t, login.Success)
}

func TestLoginFailuresDoNotEnumerate(t *testing.T) {
	ctx := context.Background()
	client := setupServer(t)

	mustRegister(t, client, "alice", "secret1")

	wrongPassword, err := client.Login(ctx, "alice", "wrong")
	require.NoError(t, err)
	unknownUser, err := client.Login(ctx, "nobody", "secret1")
	require.NoError(t, err)

	require.False(t, wrongPassword.Success)
	require.False(t, unknownUser.Success)
	require.Equal(t, wrongPassword.Message, unknownUser.Message)
}

func TestTasksAreIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	client := setupServer(t)

	mustRegister(t, client, "alice", "secret1")
	mustRegister(t, client, "bob", "secret2")

	category := "home"
	_, err := client.AddTask(ctx, "alice", "water plants", &category)
	require.NoError(t, err)
	_, err = client.AddTask(ctx, "bob", "mow lawn", nil)
	require.NoError(t, err)

	aliceTasks, err := client.ListTasks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceTasks.Tasks, 1)
	require.Equal(t, "water plants", aliceTasks.Tasks[0].Title)
	require.Equal(t, "home", aliceTasks.Tasks[0].Category)

	bobTasks, err := client.ListTasks(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobTasks.Tasks, 1)
	require.Equal(t, "mow lawn", bobTasks.Tasks[0].Title)
}

func TestTasksOrderNewestFirst(t *testing.T) {
	ctx := context.Background()
	client := setupServer(t)

	mustRegister(t, client, "alice", "secret1")

	for _, title := range []string{"first", "second", "third"} {
		resp, err := client.AddTask(ctx, "alice", title, nil)
		require.NoError(t, err)
		require.True(t, resp.Success, resp.Message)
	}

	list, err := client.ListTasks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list.Tasks, 3)
	require.Equal(t, "third", list.Tasks[0].Title)
	require.Equal(t, "second", list.Tasks[1].Title)
	require.Equal(t, "first", list.Tasks[2].Title)
}

func TestListWithoutIdentity(t *testing.T) {
	ctx := context.Background()
	client := setupServer(t)

	list, err := client.ListTasks(ctx, "")
	require.NoError(t, err)
	require.False(t, list.Success)
	require.Equal(t, "not logged in", list.Message)
}
