package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"members-admin/internal/shared/model"
)

type mockMemberStore struct {
	members map[string]*model.Member
	err     error
}

func (m *mockMemberStore) GetMemberByEmail(_ context.Context, email string) (*model.Member, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.members[email], nil
}

func TestIssueToken(t *testing.T) {
	cfg := Config{JWTSecret: "test-secret", AccessTokenTTL: time.Hour}
	store := &mockMemberStore{members: map[string]*model.Member{
		"known@x.com": {Email: "known@x.com", Status: model.MemberStatusApproved},
	}}
	h := NewHandler(store, cfg)

	t.Run("已注册邮箱换取令牌", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/jwt?email=known@x.com", nil)
		w := httptest.NewRecorder()
		h.IssueToken(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var resp tokenResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		claims, err := ParseToken(cfg, resp.AccessToken)
		if err != nil {
			t.Fatalf("issued token does not parse: %v", err)
		}
		if claims.Email != "known@x.com" {
			t.Errorf("claims email = %q", claims.Email)
		}
	})

	t.Run("未注册邮箱软拒绝", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/jwt?email=ghost@x.com", nil)
		w := httptest.NewRecorder()
		h.IssueToken(w, r)

		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
		var resp tokenResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.AccessToken != "" {
			t.Errorf("accessToken = %q, want empty", resp.AccessToken)
		}
	})

	t.Run("缺少邮箱参数", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/jwt", nil)
		w := httptest.NewRecorder()
		h.IssueToken(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}
