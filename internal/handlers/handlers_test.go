package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamhub-dev/teamhub/internal/auth"
	"github.com/teamhub-dev/teamhub/internal/handlers"
	"github.com/teamhub-dev/teamhub/internal/models"
	"github.com/teamhub-dev/teamhub/internal/router"
	"github.com/teamhub-dev/teamhub/internal/store"
)

func newTestServer(t *testing.T, mode auth.Mode) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth.SetJWTSecret("test-secret")

	s := store.New(models.EmptySnapshot(), nil)
	h := handlers.New(s, mode)
	return router.NewRouter(h), s
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func signupAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/signup", "", gin.H{
		"firstName": "Alice",
		"lastName":  "Smith",
		"email":     email,
		"password":  "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, ok := decode(t, w)["token"].(string)
	require.True(t, ok, "login response should carry a token")
	return token
}

func TestSignupAndLogin(t *testing.T) {
	r, _ := newTestServer(t, auth.ModeToken)

	token := signupAndLogin(t, r, "alice@example.com")
	require.NotEmpty(t, token)

	t.Run("duplicate signup rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/signup", "", gin.H{
			"firstName": "Alice",
			"lastName":  "Again",
			"email":     "ALICE@example.com",
			"password":  "password123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w)["error"], "exists")
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
			"email":    "alice@example.com",
			"password": "wrongpassword",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("me returns the user", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		user := decode(t, w)["user"].(map[string]any)
		assert.Equal(t, "alice@example.com", user["email"])
		assert.Equal(t, "Alice Smith", user["name"])
	})
}

func TestAuthRequired(t *testing.T) {
	r, _ := newTestServer(t, auth.ModeToken)

	w := doJSON(t, r, http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/projects", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLocalMode(t *testing.T) {
	r, s := newTestServer(t, auth.ModeLocal)

	w := doJSON(t, r, http.MethodPost, "/api/signup", "", gin.H{
		"firstName": "Bob",
		"lastName":  "Jones",
		"email":     "bob@example.com",
		"password":  "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("unauthenticated until login", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/projects", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	w = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    "bob@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("session persists in the store", func(t *testing.T) {
		user, ok := s.CurrentUser()
		require.True(t, ok)
		assert.Equal(t, "bob@example.com", user.Email)
	})

	t.Run("authenticated via local session", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/projects", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("logout clears the session", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/logout", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		_, ok := s.CurrentUser()
		assert.False(t, ok)
	})
}

func TestTaskLifecycle(t *testing.T) {
	r, _ := newTestServer(t, auth.ModeToken)
	token := signupAndLogin(t, r, "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/projects", token, gin.H{"name": "Launch"})
	require.Equal(t, http.StatusCreated, w.Code)
	projectID := decode(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/projects/%s/tasks", projectID), token, gin.H{
		"title":       "Ship it",
		"description": "before friday",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	task := decode(t, w)
	taskID := task["id"].(string)
	assert.Equal(t, "todo", task["status"])
	assert.Equal(t, false, task["due_soon"])

	t.Run("invalid status rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/api/tasks/"+taskID+"/status", token, gin.H{"status": "blocked"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("status transition", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/api/tasks/"+taskID+"/status", token, gin.H{"status": "done"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "done", decode(t, w)["status"])
	})

	t.Run("progress reflects the board", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/projects/%s/tasks", projectID), token, gin.H{"title": "Write docs"})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/projects/%s/progress", projectID), token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		summary := decode(t, w)
		assert.Equal(t, float64(1), summary["done"])
		assert.Equal(t, float64(1), summary["todo"])
		assert.Equal(t, float64(50), summary["completion_percent"])
	})

	t.Run("delete then 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/api/tasks/"+taskID, token, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, r, http.MethodDelete, "/api/tasks/"+taskID, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown project 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/projects/missing/tasks", token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMembersAndNotificationsOverHTTP(t *testing.T) {
	r, s := newTestServer(t, auth.ModeToken)
	token := signupAndLogin(t, r, "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/projects", token, gin.H{"name": "Launch"})
	require.Equal(t, http.StatusCreated, w.Code)
	projectID := decode(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/projects/%s/members", projectID), token, gin.H{"email": "bob@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	bob, ok := s.UserByEmail("bob@example.com")
	require.True(t, ok, "placeholder member should have been synthesized")

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/projects/%s/tasks", projectID), token, gin.H{
		"title":       "Ship it",
		"assignee_id": bob.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	notifications, err := s.NotificationsForUser(bob.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	w = doJSON(t, r, http.MethodPost, "/api/notifications/"+notifications[0].ID+"/read", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["read"])
}

func TestMessagesOverHTTP(t *testing.T) {
	r, _ := newTestServer(t, auth.ModeToken)
	token := signupAndLogin(t, r, "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/projects", token, gin.H{"name": "Launch"})
	require.Equal(t, http.StatusCreated, w.Code)
	projectID := decode(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/projects/%s/messages", projectID), token, gin.H{"content": "kickoff"})
	require.Equal(t, http.StatusCreated, w.Code)
	rootID := decode(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/projects/%s/messages", projectID), token, gin.H{
		"content":   "sounds good",
		"parent_id": rootID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/projects/%s/messages", projectID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var threads []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &threads))
	require.Len(t, threads, 1)
	replies := threads[0]["replies"].([]any)
	assert.Len(t, replies, 1)
}

func TestSettingsOverHTTP(t *testing.T) {
	r, _ := newTestServer(t, auth.ModeToken)
	token := signupAndLogin(t, r, "alice@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/settings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["notificationsEnabled"])

	w = doJSON(t, r, http.MethodPatch, "/api/settings", token, gin.H{"notifications_enabled": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["notificationsEnabled"])
}
