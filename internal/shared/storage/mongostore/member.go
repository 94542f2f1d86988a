package mongostore

import (
	"context"

	"members-admin/internal/shared/model"
	"members-admin/internal/shared/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ============================================================================
// MemberStore
// ============================================================================

func (s *Store) CreateMember(ctx context.Context, m *model.Member) error {
	if m.ID.IsZero() {
		m.ID = bson.NewObjectID()
	}
	return insertOne(ctx, s.col(ColMembers), m)
}

func (s *Store) GetMember(ctx context.Context, id bson.ObjectID) (*model.Member, error) {
	return findOne[model.Member](ctx, s.col(ColMembers), bson.D{{Key: "_id", Value: id}})
}

func (s *Store) GetMemberByEmail(ctx context.Context, email string) (*model.Member, error) {
	return findOne[model.Member](ctx, s.col(ColMembers), bson.D{{Key: "email", Value: email}})
}

// ListMembers 按可选的状态集合与角色过滤会员
// 过滤条件为空时返回全量
func (s *Store) ListMembers(ctx context.Context, filter storage.MemberFilter) ([]*model.Member, error) {
	query := bson.D{}
	if len(filter.Statuses) > 0 {
		query = append(query, bson.E{Key: "status", Value: bson.D{{Key: "$in", Value: filter.Statuses}}})
	}
	if filter.Role != "" {
		query = append(query, bson.E{Key: "role", Value: filter.Role})
	}
	return findMany[model.Member](ctx, s.col(ColMembers), query)
}

// ListApprovedAdmins 列出已审核通过的管理员
func (s *Store) ListApprovedAdmins(ctx context.Context) ([]*model.Member, error) {
	query := bson.D{
		{Key: "role", Value: model.MemberRoleAdmin},
		{Key: "status", Value: model.MemberStatusApproved},
	}
	return findMany[model.Member](ctx, s.col(ColMembers), query)
}

// UpdateMemberStatus 只更新 status 单字段，不做补插
func (s *Store) UpdateMemberStatus(ctx context.Context, id bson.ObjectID, status string) (storage.UpdateResult, error) {
	return updateByID(ctx, s.col(ColMembers), id, bson.D{{Key: "status", Value: status}}, false)
}

// SetMemberRole 将 role 设为固定值
// upsert 为 true 时零匹配会补插新文档（提升角色），false 时零匹配仅报告零修改（降级）
func (s *Store) SetMemberRole(ctx context.Context, id bson.ObjectID, role model.MemberRole, upsert bool) (storage.UpdateResult, error) {
	return updateByID(ctx, s.col(ColMembers), id, bson.D{{Key: "role", Value: role}}, upsert)
}

// UpdateMemberProfile 替换固定集合的档案字段
// 请求体未列出的字段既不合并也不清除
func (s *Store) UpdateMemberProfile(ctx context.Context, id bson.ObjectID, profile model.MemberProfile) (storage.UpdateResult, error) {
	set := bson.D{
		{Key: "displayName", Value: profile.DisplayName},
		{Key: "mobileNumber", Value: profile.MobileNumber},
		{Key: "companyName", Value: profile.CompanyName},
		{Key: "designation", Value: profile.Designation},
		{Key: "internship1", Value: profile.Internship1},
		{Key: "internship2", Value: profile.Internship2},
		{Key: "presentAddressStreet", Value: profile.PresentAddressStreet},
		{Key: "presentAddressDistrict", Value: profile.PresentAddressDistrict},
		{Key: "permanentAddressStreet", Value: profile.PermanentAddressStreet},
		{Key: "permanentAddressDistrict", Value: profile.PermanentAddressDistrict},
		{Key: "batch", Value: profile.Batch},
		{Key: "department", Value: profile.Department},
		{Key: "bloodGroup", Value: profile.BloodGroup},
	}
	return updateByID(ctx, s.col(ColMembers), id, set, false)
}

func (s *Store) DeleteMember(ctx context.Context, id bson.ObjectID) (int64, error) {
	return deleteByID(ctx, s.col(ColMembers), id)
}
