package mongostore

import (
	"context"

	"members-admin/internal/shared/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ============================================================================
// CommitteeMemberStore
// ============================================================================

func (s *Store) ListCommitteeMembers(ctx context.Context) ([]*model.CommitteeMember, error) {
	return findMany[model.CommitteeMember](ctx, s.col(ColCommitteeMembers), bson.D{})
}

func (s *Store) CreateCommitteeMember(ctx context.Context, cm *model.CommitteeMember) error {
	if cm.ID.IsZero() {
		cm.ID = bson.NewObjectID()
	}
	return insertOne(ctx, s.col(ColCommitteeMembers), cm)
}

// DeleteCommitteeMember 按 _id 删除单个成员
// 批量清理循环在处理器层逐条调用本方法，以便收集逐项结果
func (s *Store) DeleteCommitteeMember(ctx context.Context, id bson.ObjectID) (int64, error) {
	return deleteByID(ctx, s.col(ColCommitteeMembers), id)
}
