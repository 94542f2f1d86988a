// Package storage 定义持久化存储层抽象接口
//
// 设计原则：依赖倒置 (DIP)
//   - 调用方只依赖接口，不知道具体实现
//   - 具体实现在子包中：mongostore/
//   - 初始化时通过依赖注入传入实现，不使用包级单例
package storage

import (
	"context"

	"members-admin/internal/shared/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UpdateResult 更新操作结果
//
// 对应 MongoDB UpdateOne 的 matched/modified/upserted 计数。
// 状态与角色更新接口直接以此作为响应体，调用方可据此区分
// 零匹配（降级不补插）与实际写入。
type UpdateResult struct {
	MatchedCount  int64          `json:"matchedCount"`
	ModifiedCount int64          `json:"modifiedCount"`
	UpsertedID    *bson.ObjectID `json:"upsertedId,omitempty"`
}

// MemberFilter 会员列表过滤条件
type MemberFilter struct {
	Statuses []string // 状态集合（$in 匹配），为空不限制
	Role     string   // 角色精确匹配，为空不限制
}

// PersistentStore 持久化存储接口
//
// 查询单个实体不存在时返回 (nil, nil)；删除返回实际删除条数，
// 由调用方决定 0 条是否算作 not found。
type PersistentStore interface {
	// Member
	CreateMember(ctx context.Context, m *model.Member) error
	GetMember(ctx context.Context, id bson.ObjectID) (*model.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (*model.Member, error)
	ListMembers(ctx context.Context, filter MemberFilter) ([]*model.Member, error)
	ListApprovedAdmins(ctx context.Context) ([]*model.Member, error)
	UpdateMemberStatus(ctx context.Context, id bson.ObjectID, status string) (UpdateResult, error)
	SetMemberRole(ctx context.Context, id bson.ObjectID, role model.MemberRole, upsert bool) (UpdateResult, error)
	UpdateMemberProfile(ctx context.Context, id bson.ObjectID, profile model.MemberProfile) (UpdateResult, error)
	DeleteMember(ctx context.Context, id bson.ObjectID) (int64, error)

	// CommitteeMember
	ListCommitteeMembers(ctx context.Context) ([]*model.CommitteeMember, error)
	CreateCommitteeMember(ctx context.Context, cm *model.CommitteeMember) error
	DeleteCommitteeMember(ctx context.Context, id bson.ObjectID) (int64, error)

	// Article
	ListArticles(ctx context.Context) ([]*model.Article, error)
	CreateArticle(ctx context.Context, a *model.Article) error
	GetArticle(ctx context.Context, id bson.ObjectID) (*model.Article, error)
	DeleteArticle(ctx context.Context, id bson.ObjectID) (int64, error)

	// Job
	ListJobs(ctx context.Context) ([]*model.Job, error)
	CreateJob(ctx context.Context, j *model.Job) error
	GetJob(ctx context.Context, id bson.ObjectID) (*model.Job, error)

	// Intern
	ListInterns(ctx context.Context) ([]*model.Intern, error)
	CreateIntern(ctx context.Context, i *model.Intern) error
	GetIntern(ctx context.Context, id bson.ObjectID) (*model.Intern, error)

	// ExecutiveMessage
	ListExecutiveMessages(ctx context.Context) ([]*model.ExecutiveMessage, error)
	CreateExecutiveMessage(ctx context.Context, em *model.ExecutiveMessage) error
	DeleteExecutiveMessage(ctx context.Context, id bson.ObjectID) (int64, error)

	Close() error
}
