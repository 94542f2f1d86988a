package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient 指向本地假服务，绕过 OAuth 凭据
func testClient(baseURL string) *Client {
	return &Client{hc: http.DefaultClient, baseURL: baseURL, projectID: "test-project"}
}

func TestDeleteUserByEmail(t *testing.T) {
	var deletedLocalID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch r.URL.Path {
		case "/projects/test-project/accounts:lookup":
			emails, _ := body["email"].([]any)
			require.Len(t, emails, 1)
			if emails[0] == "known@x.com" {
				json.NewEncoder(w).Encode(map[string]any{
					"users": []map[string]string{{"localId": "uid-123"}},
				})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{"users": []any{}})
		case "/projects/test-project/accounts:delete":
			deletedLocalID, _ = body["localId"].(string)
			w.Write([]byte("{}"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	err := c.DeleteUserByEmail(context.Background(), "known@x.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-123", deletedLocalID)

	err = c.DeleteUserByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserByEmail_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "PERMISSION_DENIED"},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	err := c.DeleteUserByEmail(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUserNotFound))
	assert.Contains(t, err.Error(), "PERMISSION_DENIED")
}

func TestDeleteUserByEmail_UserNotFoundCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/projects/test-project/accounts:lookup" {
			json.NewEncoder(w).Encode(map[string]any{
				"users": []map[string]string{{"localId": "uid-1"}},
			})
			return
		}
		// 删除阶段返回 USER_NOT_FOUND（并发删除场景）
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "USER_NOT_FOUND"},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	err := c.DeleteUserByEmail(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
