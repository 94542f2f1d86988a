// mock.go 提供用于测试的内存 PersistentStore 实现
package storage

import (
	"context"
	"sync"

	"members-admin/internal/shared/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemStore 内存存储，语义对齐 mongostore（upsert、删除计数、未命中返回 nil）
// Err 非空时所有操作返回该错误，用于测试 500 分支。
type MemStore struct {
	mu sync.Mutex

	Members   []*model.Member
	Committee []*model.CommitteeMember
	Articles  []*model.Article
	Jobs      []*model.Job
	Interns   []*model.Intern
	ExecMsgs  []*model.ExecutiveMessage

	Err error
}

// NewMemStore 创建内存存储
func NewMemStore() *MemStore {
	return &MemStore{}
}

var _ PersistentStore = (*MemStore)(nil)

func (s *MemStore) CreateMember(_ context.Context, m *model.Member) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID.IsZero() {
		m.ID = bson.NewObjectID()
	}
	s.Members = append(s.Members, m)
	return nil
}

func (s *MemStore) GetMember(_ context.Context, id bson.ObjectID) (*model.Member, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.Members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (s *MemStore) GetMemberByEmail(_ context.Context, email string) (*model.Member, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.Members {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, nil
}

func (s *MemStore) ListMembers(_ context.Context, filter MemberFilter) ([]*model.Member, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Member
	for _, m := range s.Members {
		if filter.Role != "" && string(m.Role) != filter.Role {
			continue
		}
		if len(filter.Statuses) > 0 && !containsString(filter.Statuses, string(m.Status)) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *MemStore) ListApprovedAdmins(_ context.Context) ([]*model.Member, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Member
	for _, m := range s.Members {
		if m.Role == model.MemberRoleAdmin && m.Status == model.MemberStatusApproved {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MemStore) UpdateMemberStatus(_ context.Context, id bson.ObjectID, status string) (UpdateResult, error) {
	if s.Err != nil {
		return UpdateResult{}, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.Members {
		if m.ID == id {
			modified := int64(0)
			if string(m.Status) != status {
				m.Status = model.MemberStatus(status)
				modified = 1
			}
			return UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return UpdateResult{}, nil
}

func (s *MemStore) SetMemberRole(_ context.Context, id bson.ObjectID, role model.MemberRole, upsert bool) (UpdateResult, error) {
	if s.Err != nil {
		return UpdateResult{}, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.Members {
		if m.ID == id {
			modified := int64(0)
			if m.Role != role {
				m.Role = role
				modified = 1
			}
			return UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	if !upsert {
		return UpdateResult{}, nil
	}
	s.Members = append(s.Members, &model.Member{ID: id, Role: role})
	return UpdateResult{UpsertedID: &id}, nil
}

func (s *MemStore) UpdateMemberProfile(_ context.Context, id bson.ObjectID, p model.MemberProfile) (UpdateResult, error) {
	if s.Err != nil {
		return UpdateResult{}, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.Members {
		if m.ID == id {
			m.DisplayName = p.DisplayName
			m.MobileNumber = p.MobileNumber
			m.CompanyName = p.CompanyName
			m.Designation = p.Designation
			m.Internship1 = p.Internship1
			m.Internship2 = p.Internship2
			m.PresentAddressStreet = p.PresentAddressStreet
			m.PresentAddressDistrict = p.PresentAddressDistrict
			m.PermanentAddressStreet = p.PermanentAddressStreet
			m.PermanentAddressDistrict = p.PermanentAddressDistrict
			m.Batch = p.Batch
			m.Department = p.Department
			m.BloodGroup = p.BloodGroup
			return UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return UpdateResult{}, nil
}

func (s *MemStore) DeleteMember(_ context.Context, id bson.ObjectID) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.Members {
		if m.ID == id {
			s.Members = append(s.Members[:i], s.Members[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemStore) ListCommitteeMembers(_ context.Context) ([]*model.CommitteeMember, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.CommitteeMember(nil), s.Committee...), nil
}

func (s *MemStore) CreateCommitteeMember(_ context.Context, cm *model.CommitteeMember) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if cm.ID.IsZero() {
		cm.ID = bson.NewObjectID()
	}
	s.Committee = append(s.Committee, cm)
	return nil
}

func (s *MemStore) DeleteCommitteeMember(_ context.Context, id bson.ObjectID) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cm := range s.Committee {
		if cm.ID == id {
			s.Committee = append(s.Committee[:i], s.Committee[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemStore) ListArticles(_ context.Context) ([]*model.Article, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.Article(nil), s.Articles...), nil
}

func (s *MemStore) CreateArticle(_ context.Context, a *model.Article) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = bson.NewObjectID()
	}
	s.Articles = append(s.Articles, a)
	return nil
}

func (s *MemStore) GetArticle(_ context.Context, id bson.ObjectID) (*model.Article, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.Articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (s *MemStore) DeleteArticle(_ context.Context, id bson.ObjectID) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.Articles {
		if a.ID == id {
			s.Articles = append(s.Articles[:i], s.Articles[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemStore) ListJobs(_ context.Context) ([]*model.Job, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.Job(nil), s.Jobs...), nil
}

func (s *MemStore) CreateJob(_ context.Context, j *model.Job) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if j.ID.IsZero() {
		j.ID = bson.NewObjectID()
	}
	s.Jobs = append(s.Jobs, j)
	return nil
}

func (s *MemStore) GetJob(_ context.Context, id bson.ObjectID) (*model.Job, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.Jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, nil
}

func (s *MemStore) ListInterns(_ context.Context) ([]*model.Intern, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.Intern(nil), s.Interns...), nil
}

func (s *MemStore) CreateIntern(_ context.Context, i *model.Intern) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i.ID.IsZero() {
		i.ID = bson.NewObjectID()
	}
	s.Interns = append(s.Interns, i)
	return nil
}

func (s *MemStore) GetIntern(_ context.Context, id bson.ObjectID) (*model.Intern, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.Interns {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (s *MemStore) ListExecutiveMessages(_ context.Context) ([]*model.ExecutiveMessage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.ExecutiveMessage(nil), s.ExecMsgs...), nil
}

func (s *MemStore) CreateExecutiveMessage(_ context.Context, em *model.ExecutiveMessage) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if em.ID.IsZero() {
		em.ID = bson.NewObjectID()
	}
	s.ExecMsgs = append(s.ExecMsgs, em)
	return nil
}

func (s *MemStore) DeleteExecutiveMessage(_ context.Context, id bson.ObjectID) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, em := range s.ExecMsgs {
		if em.ID == id {
			s.ExecMsgs = append(s.ExecMsgs[:i], s.ExecMsgs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemStore) Close() error { return nil }

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
