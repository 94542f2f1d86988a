package committee

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"members-admin/internal/apiserver/auth"
	"members-admin/internal/shared/model"
	"members-admin/internal/shared/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type fakePhotoStore struct {
	deleted []string
	failFor string // 这个 URL 删除失败
}

func (p *fakePhotoStore) DeletePhotoURL(_ context.Context, photoURL string) error {
	if photoURL == p.failFor {
		return errors.New("object store unavailable")
	}
	p.deleted = append(p.deleted, photoURL)
	return nil
}

func newTestMux(store storage.PersistentStore, photos ObjectStore) *http.ServeMux {
	mux := http.NewServeMux()
	NewHandler(store, photos, auth.Config{}).RegisterRoutes(mux)
	return mux
}

func TestCreateAndList(t *testing.T) {
	store := storage.NewMemStore()
	mux := newTestMux(store, nil)

	body := `{"name":"Chair","designation":"President","photoURL":"https://cdn.example.com/chair.jpg"}`
	r := httptest.NewRequest("POST", "/committeeMembers", strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/committeeMembers", nil))
	var list []*model.CommitteeMember
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Chair" {
		t.Fatalf("list = %+v, want one Chair", list)
	}
}

func TestCreate_RequiresName(t *testing.T) {
	mux := newTestMux(storage.NewMemStore(), nil)
	r := httptest.NewRequest("POST", "/committeeMembers", strings.NewReader(`{"designation":"x"}`))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDeleteAll_PerItemResults(t *testing.T) {
	store := storage.NewMemStore()
	store.Committee = []*model.CommitteeMember{
		{ID: bson.NewObjectID(), Name: "A", PhotoURL: "https://cdn.example.com/a.jpg"},
		{ID: bson.NewObjectID(), Name: "B", PhotoURL: "https://cdn.example.com/bad.jpg"},
		{ID: bson.NewObjectID(), Name: "C"}, // 无照片
	}
	photos := &fakePhotoStore{failFor: "https://cdn.example.com/bad.jpg"}
	mux := newTestMux(store, photos)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("DELETE", "/committeeMembers", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		DeletedCount int64              `json:"deletedCount"`
		Results      []deleteItemResult `json:"results"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// 照片失败不阻止文档删除：3 条文档全部删掉
	if resp.DeletedCount != 3 {
		t.Errorf("deletedCount = %d, want 3", resp.DeletedCount)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("results = %d items, want 3", len(resp.Results))
	}
	if !resp.Results[0].PhotoDeleted || resp.Results[0].Error != "" {
		t.Errorf("item A = %+v, want photoDeleted", resp.Results[0])
	}
	if resp.Results[1].PhotoDeleted || resp.Results[1].Error == "" || !resp.Results[1].Deleted {
		t.Errorf("item B = %+v, want photo error but document deleted", resp.Results[1])
	}
	if resp.Results[2].PhotoDeleted {
		t.Errorf("item C = %+v, has no photo to delete", resp.Results[2])
	}

	if len(store.Committee) != 0 {
		t.Errorf("%d committee members remain", len(store.Committee))
	}
	if len(photos.deleted) != 1 || photos.deleted[0] != "https://cdn.example.com/a.jpg" {
		t.Errorf("photo deletions = %v", photos.deleted)
	}
}

func TestDeleteAll_NoObjectStore(t *testing.T) {
	store := storage.NewMemStore()
	store.Committee = []*model.CommitteeMember{
		{ID: bson.NewObjectID(), Name: "A", PhotoURL: "https://cdn.example.com/a.jpg"},
	}
	mux := newTestMux(store, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("DELETE", "/committeeMembers", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		DeletedCount int64              `json:"deletedCount"`
		Results      []deleteItemResult `json:"results"`
	}
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.DeletedCount != 1 || resp.Results[0].PhotoDeleted {
		t.Errorf("resp = %+v, want document deleted without photo step", resp)
	}
}

func TestDeleteAll_Empty(t *testing.T) {
	mux := newTestMux(storage.NewMemStore(), nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("DELETE", "/committeeMembers", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		DeletedCount int64              `json:"deletedCount"`
		Results      []deleteItemResult `json:"results"`
	}
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.DeletedCount != 0 || len(resp.Results) != 0 {
		t.Errorf("resp = %+v, want empty", resp)
	}
}
