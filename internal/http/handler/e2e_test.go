package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletterapi/internal/config"
	"newsletterapi/internal/database"
	"newsletterapi/internal/database/migration"
	"newsletterapi/internal/http/middleware"
	"newsletterapi/internal/logging"
	"newsletterapi/internal/repository/sqlite"
	"newsletterapi/internal/service"
)

// newTestServer wires the real stack against a fresh SQLite file.
func newTestServer(t *testing.T, mode config.ErrorMode) *fiber.App {
	t.Helper()

	db, err := database.NewSQLite(config.DatabaseConfig{
		SQLitePath:   filepath.Join(t.TempDir(), "newsletters.db"),
		MaxOpenConns: 4,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migration.EnsureMigrated(context.Background(), db, config.DriverSQLite, logging.Discard()))

	svc := service.NewNewsletterService(sqlite.NewNewsletterSQLite(db))

	app := NewApp(false)
	app.Use(middleware.RequestID())
	RegisterRoutes(app, db, svc, mode)
	return app
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request, out any) int {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp.StatusCode
}

func listNewsletters(t *testing.T, app *fiber.App) []map[string]any {
	t.Helper()
	var items []map[string]any
	status := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/newsletters", nil), &items)
	require.Equal(t, http.StatusOK, status)
	return items
}

func TestEndToEnd_Scenario(t *testing.T) {
	app := newTestServer(t, config.ErrorModeStrict)

	var welcome map[string]any
	assert.Equal(t, http.StatusOK, doJSON(t, app, httptest.NewRequest(http.MethodGet, "/", nil), &welcome))
	assert.Equal(t, map[string]any{"message": "Welcome to the Newsletter RESTful API"}, welcome)

	assert.Empty(t, listNewsletters(t, app))

	var created map[string]any
	status := doJSON(t, app, formRequest("/newsletters", "title=Hello&body=World"), &created)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "Hello", created["title"])
	assert.Equal(t, "World", created["body"])
	assert.NotEmpty(t, created["created_at"])
	assert.NotEmpty(t, created["updated_at"])

	items := listNewsletters(t, app)
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])

	var fetched map[string]any
	assert.Equal(t, http.StatusOK, doJSON(t, app, httptest.NewRequest(http.MethodGet, "/newsletters/1", nil), &fetched))
	assert.Equal(t, created, fetched)

	var missing errorPayload
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, httptest.NewRequest(http.MethodGet, "/newsletters/2", nil), &missing))
	assert.Equal(t, "NOT_FOUND", missing.Error.Code)
	assert.NotEmpty(t, missing.RequestID)

	var welcomeAgain map[string]any
	doJSON(t, app, httptest.NewRequest(http.MethodGet, "/", nil), &welcomeAgain)
	assert.Equal(t, welcome, welcomeAgain)
}

func TestEndToEnd_RoundTripAndCount(t *testing.T) {
	app := newTestServer(t, config.ErrorModeStrict)

	pairs := [][2]string{{"First", "one"}, {"Second", "two & more"}, {"", ""}, {"Ünïcode", "line\nbreak"}}
	for _, p := range pairs {
		form := url.Values{"title": {p[0]}, "body": {p[1]}}.Encode()
		var created map[string]any
		require.Equal(t, http.StatusCreated, doJSON(t, app, formRequest("/newsletters", form), &created))

		id := strconv.Itoa(int(created["id"].(float64)))
		var fetched map[string]any
		require.Equal(t, http.StatusOK, doJSON(t, app, httptest.NewRequest(http.MethodGet, "/newsletters/"+id, nil), &fetched))
		assert.Equal(t, p[0], fetched["title"])
		assert.Equal(t, p[1], fetched["body"])
	}

	first := listNewsletters(t, app)
	second := listNewsletters(t, app)
	assert.Len(t, first, len(pairs))
	assert.Equal(t, first, second)
	for i, item := range first {
		assert.Equal(t, float64(i+1), item["id"], "insertion order")
	}
}

func TestEndToEnd_ErrorModes(t *testing.T) {
	cases := []struct {
		mode          config.ErrorMode
		missingStatus int
		absentStatus  int
	}{
		{config.ErrorModeStrict, http.StatusBadRequest, http.StatusNotFound},
		{config.ErrorModeLegacy, http.StatusInternalServerError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			app := newTestServer(t, tc.mode)

			var created map[string]any
			require.Equal(t, http.StatusCreated, doJSON(t, app, formRequest("/newsletters", "title=keep&body=me"), &created))

			for _, form := range []string{"body=no-title", "title=no-body", ""} {
				var res errorPayload
				assert.Equal(t, tc.missingStatus, doJSON(t, app, formRequest("/newsletters", form), &res), form)
			}
			assert.Len(t, listNewsletters(t, app), 1, "failed creates must not be observable")

			var res errorPayload
			assert.Equal(t, tc.absentStatus, doJSON(t, app, httptest.NewRequest(http.MethodGet, "/newsletters/999", nil), &res))

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/newsletters/abc", nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode, "route mismatch is a 404 in every mode")
		})
	}
}

func TestEndToEnd_Health(t *testing.T) {
	app := newTestServer(t, config.ErrorModeStrict)

	var body map[string]string
	assert.Equal(t, http.StatusOK, doJSON(t, app, httptest.NewRequest(http.MethodGet, "/health", nil), &body))
	assert.Equal(t, "healthy", body["status"])
}
