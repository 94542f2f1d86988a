package mongostore

import (
	"context"
	"os"
	"testing"
	"time"

	"members-admin/internal/shared/model"
	"members-admin/internal/shared/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// testStore 创建测试用 Store，使用独立数据库避免污染
func testStore(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	dbName := "membership_admin_test"
	s, err := NewStore(uri, dbName)
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	// 清空测试数据库
	ctx := context.Background()
	if err := s.db.Drop(ctx); err != nil {
		t.Fatalf("Failed to drop test database: %v", err)
	}
	if err := s.ensureIndexes(ctx); err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}

	t.Cleanup(func() {
		s.db.Drop(context.Background())
		s.Close()
	})

	return s
}

func TestMemberCRUD(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	m := &model.Member{
		Email:       "a@x.com",
		DisplayName: "Alice",
		Status:      model.MemberStatusPending,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}

	// Create 分配 _id
	if err := s.CreateMember(ctx, m); err != nil {
		t.Fatalf("CreateMember: %v", err)
	}
	if m.ID.IsZero() {
		t.Fatal("CreateMember did not assign an ID")
	}

	// GetMember
	got, err := s.GetMember(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetMember: %v", err)
	}
	if got == nil || got.Email != "a@x.com" {
		t.Fatalf("GetMember = %+v, want email a@x.com", got)
	}

	// GetMemberByEmail
	got, err = s.GetMemberByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetMemberByEmail: %v", err)
	}
	if got == nil || got.ID != m.ID {
		t.Fatalf("GetMemberByEmail returned wrong member: %+v", got)
	}

	// 不存在的邮箱返回 (nil, nil)
	got, err = s.GetMemberByEmail(ctx, "nobody@x.com")
	if err != nil || got != nil {
		t.Fatalf("GetMemberByEmail(miss) = (%+v, %v), want (nil, nil)", got, err)
	}

	// UpdateMemberStatus
	res, err := s.UpdateMemberStatus(ctx, m.ID, "approved")
	if err != nil {
		t.Fatalf("UpdateMemberStatus: %v", err)
	}
	if res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Fatalf("UpdateMemberStatus result = %+v", res)
	}

	// Delete 两次：第一次删 1 条，第二次删 0 条
	n, err := s.DeleteMember(ctx, m.ID)
	if err != nil || n != 1 {
		t.Fatalf("DeleteMember = (%d, %v), want (1, nil)", n, err)
	}
	n, err = s.DeleteMember(ctx, m.ID)
	if err != nil || n != 0 {
		t.Fatalf("DeleteMember(repeat) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestListMembers_Filter(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	seed := []*model.Member{
		{Email: "p1@x.com", Status: "pending"},
		{Email: "p2@x.com", Status: "pending", Role: "admin"},
		{Email: "a1@x.com", Status: "approved", Role: "admin"},
		{Email: "a2@x.com", Status: "approved", Role: "moderator"},
		{Email: "r1@x.com", Status: "rejected"},
	}
	for _, m := range seed {
		if err := s.CreateMember(ctx, m); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	// 状态集合过滤：approved,pending 的并集且不含其他
	got, err := s.ListMembers(ctx, storage.MemberFilter{Statuses: []string{"approved", "pending"}})
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("ListMembers(status in approved,pending) = %d members, want 4", len(got))
	}
	for _, m := range got {
		if m.Status != "approved" && m.Status != "pending" {
			t.Errorf("unexpected status %q in filtered result", m.Status)
		}
	}

	// 角色精确过滤
	got, err = s.ListMembers(ctx, storage.MemberFilter{Role: "admin"})
	if err != nil {
		t.Fatalf("ListMembers(role): %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListMembers(role=admin) = %d members, want 2", len(got))
	}

	// 无过滤返回全量
	got, err = s.ListMembers(ctx, storage.MemberFilter{})
	if err != nil || len(got) != 5 {
		t.Fatalf("ListMembers(all) = (%d, %v), want 5", len(got), err)
	}

	// ListApprovedAdmins 只返回 role=admin 且 status=approved
	admins, err := s.ListApprovedAdmins(ctx)
	if err != nil {
		t.Fatalf("ListApprovedAdmins: %v", err)
	}
	if len(admins) != 1 || admins[0].Email != "a1@x.com" {
		t.Fatalf("ListApprovedAdmins = %+v, want only a1@x.com", admins)
	}
}

func TestSetMemberRole_Upsert(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	// 提升角色允许补插：不存在的 id 会创建 role=admin 的新文档
	missing := bson.NewObjectID()
	res, err := s.SetMemberRole(ctx, missing, model.MemberRoleAdmin, true)
	if err != nil {
		t.Fatalf("SetMemberRole(upsert): %v", err)
	}
	if res.UpsertedID == nil || *res.UpsertedID != missing {
		t.Fatalf("SetMemberRole(upsert) result = %+v, want upserted id %s", res, missing.Hex())
	}
	created, err := s.GetMember(ctx, missing)
	if err != nil || created == nil || created.Role != model.MemberRoleAdmin {
		t.Fatalf("upserted member = (%+v, %v), want role=admin", created, err)
	}

	// 降级不补插：不存在的 id 零匹配零修改
	res, err = s.SetMemberRole(ctx, bson.NewObjectID(), model.MemberRoleUser, false)
	if err != nil {
		t.Fatalf("SetMemberRole(no upsert): %v", err)
	}
	if res.MatchedCount != 0 || res.ModifiedCount != 0 || res.UpsertedID != nil {
		t.Fatalf("SetMemberRole(no upsert) result = %+v, want zero counts", res)
	}
}

func TestUpdateMemberProfile(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	m := &model.Member{Email: "b@x.com", Status: "approved", Role: "user"}
	if err := s.CreateMember(ctx, m); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := s.UpdateMemberProfile(ctx, m.ID, model.MemberProfile{
		DisplayName: "Bob",
		Batch:       "2015",
		Department:  "CSE",
		BloodGroup:  "B+",
	})
	if err != nil {
		t.Fatalf("UpdateMemberProfile: %v", err)
	}
	if res.ModifiedCount != 1 {
		t.Fatalf("UpdateMemberProfile result = %+v", res)
	}

	got, err := s.GetMember(ctx, m.ID)
	if err != nil || got == nil {
		t.Fatalf("GetMember: (%+v, %v)", got, err)
	}
	if got.DisplayName != "Bob" || got.Batch != "2015" {
		t.Errorf("profile fields not replaced: %+v", got)
	}
	// 档案更新不得触碰 role/status
	if got.Role != "user" || got.Status != "approved" {
		t.Errorf("profile update touched role/status: %+v", got)
	}
}

func TestArticleCRUD(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	a := &model.Article{Title: "Hello", CreatedAt: time.Now().UTC().Truncate(time.Millisecond)}
	if err := s.CreateArticle(ctx, a); err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}

	got, err := s.GetArticle(ctx, a.ID)
	if err != nil || got == nil || got.Title != "Hello" {
		t.Fatalf("GetArticle = (%+v, %v)", got, err)
	}

	list, err := s.ListArticles(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListArticles = (%d, %v), want 1", len(list), err)
	}

	n, err := s.DeleteArticle(ctx, a.ID)
	if err != nil || n != 1 {
		t.Fatalf("DeleteArticle = (%d, %v), want (1, nil)", n, err)
	}
}

func TestCommitteeMemberCRUD(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		cm := &model.CommitteeMember{Name: "member", PhotoURL: "https://cdn.example.com/p.jpg"}
		if err := s.CreateCommitteeMember(ctx, cm); err != nil {
			t.Fatalf("CreateCommitteeMember: %v", err)
		}
	}

	list, err := s.ListCommitteeMembers(ctx)
	if err != nil || len(list) != 3 {
		t.Fatalf("ListCommitteeMembers = (%d, %v), want 3", len(list), err)
	}

	for _, cm := range list {
		n, err := s.DeleteCommitteeMember(ctx, cm.ID)
		if err != nil || n != 1 {
			t.Fatalf("DeleteCommitteeMember = (%d, %v), want (1, nil)", n, err)
		}
	}

	list, err = s.ListCommitteeMembers(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("ListCommitteeMembers(after delete) = (%d, %v), want 0", len(list), err)
	}
}
