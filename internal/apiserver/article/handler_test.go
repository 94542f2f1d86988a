package article

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"members-admin/internal/apiserver/auth"
	"members-admin/internal/shared/model"
	"members-admin/internal/shared/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func newTestMux(store storage.PersistentStore) *http.ServeMux {
	mux := http.NewServeMux()
	NewHandler(store, auth.Config{}).RegisterRoutes(mux)
	return mux
}

func TestCreate_StampsCreatedAt(t *testing.T) {
	store := storage.NewMemStore()
	mux := newTestMux(store)
	start := time.Now()

	// 客户端伪造的 createdAt 必须被覆盖
	body := `{"title":"Hello","author":"Alice","createdAt":"2001-01-01T00:00:00Z"}`
	r := httptest.NewRequest("POST", "/articles", strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", w.Code, w.Body.String())
	}

	var created model.Article
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.CreatedAt.Before(start) {
		t.Errorf("createdAt = %v, want >= request start %v", created.CreatedAt, start)
	}
	if created.ID.IsZero() {
		t.Error("response lacks assigned _id")
	}
}

func TestCreate_RequiresTitle(t *testing.T) {
	mux := newTestMux(storage.NewMemStore())
	r := httptest.NewRequest("POST", "/articles", strings.NewReader(`{"author":"Alice"}`))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetAndDelete(t *testing.T) {
	store := storage.NewMemStore()
	id := bson.NewObjectID()
	store.Articles = []*model.Article{{ID: id, Title: "Hello"}}
	mux := newTestMux(store)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/articles/"+id.Hex(), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get: status = %d, want 200", w.Code)
	}

	// 非法 id → 400
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("DELETE", "/articles/zzz", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("DELETE", "/articles/"+id.Hex(), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d, want 200", w.Code)
	}

	// 已删除 → 404
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/articles/"+id.Hex(), nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: status = %d, want 404", w.Code)
	}
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("DELETE", "/articles/"+id.Hex(), nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("repeat delete: status = %d, want 404", w.Code)
	}
}
