package tasklist_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	httpapi "github.com/aussiebroadwan/tasklist/internal/tasklist/http"
	"github.com/aussiebroadwan/tasklist/internal/tasklist/service"
	"github.com/aussiebroadwan/tasklist/internal/tasklist/store/drivers/sqlite"
	"github.com/aussiebroadwan/tasklist/pkg/taskapi"
	"github.com/stretchr/testify/require"
)

/*
 * End-to-end tests drive the assembled router through the public client the
 * same way a frontend would, against a real SQLite file per test.
 */

func setupServer(t *testing.T) *taskapi.Client {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "tasklist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := httpapi.NewRouter("test", st, logger)
	router.UserService = &service.UserService{Store: st}
	router.TaskService = &service.TaskService{
		Store:    st,
		Resolver: &service.UsernameResolver{Store: st},
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return taskapi.NewClient(srv.URL)
}

func mustRegister(t *testing.T, client *taskapi.Client, username, password string) {
	t.Helper()

	resp, err := client.Register(context.Background(), username, password)
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
}
