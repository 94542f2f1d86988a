// Package model 定义核心数据模型
//
// 所有实体以 MongoDB 文档存储，_id 由存储层在插入时分配。
// 字段 tag 使用 camelCase，与既有前端和历史文档保持一致。
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemberRole 会员角色
type MemberRole string

const (
	MemberRoleUser      MemberRole = "user"
	MemberRoleAdmin     MemberRole = "admin"
	MemberRoleModerator MemberRole = "moderator"
)

// MemberStatus 会员状态
// 状态仅作业务约定，服务端不做枚举校验（状态更新接口接受任意字符串）
type MemberStatus string

const (
	MemberStatusPending  MemberStatus = "pending"
	MemberStatusApproved MemberStatus = "approved"
)

// Member 会员
type Member struct {
	ID          bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email       string        `json:"email" bson:"email"`
	DisplayName string        `json:"displayName,omitempty" bson:"displayName,omitempty"`
	PhotoURL    string        `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role        MemberRole    `json:"role,omitempty" bson:"role,omitempty"`
	Status      MemberStatus  `json:"status,omitempty" bson:"status,omitempty"`

	// 个人档案字段（PUT /members/{id} 可更新的固定集合）
	MobileNumber             string `json:"mobileNumber,omitempty" bson:"mobileNumber,omitempty"`
	CompanyName              string `json:"companyName,omitempty" bson:"companyName,omitempty"`
	Designation              string `json:"designation,omitempty" bson:"designation,omitempty"`
	Internship1              string `json:"internship1,omitempty" bson:"internship1,omitempty"`
	Internship2              string `json:"internship2,omitempty" bson:"internship2,omitempty"`
	PresentAddressStreet     string `json:"presentAddressStreet,omitempty" bson:"presentAddressStreet,omitempty"`
	PresentAddressDistrict   string `json:"presentAddressDistrict,omitempty" bson:"presentAddressDistrict,omitempty"`
	PermanentAddressStreet   string `json:"permanentAddressStreet,omitempty" bson:"permanentAddressStreet,omitempty"`
	PermanentAddressDistrict string `json:"permanentAddressDistrict,omitempty" bson:"permanentAddressDistrict,omitempty"`
	Batch                    string `json:"batch,omitempty" bson:"batch,omitempty"`
	Department               string `json:"department,omitempty" bson:"department,omitempty"`
	BloodGroup               string `json:"bloodGroup,omitempty" bson:"bloodGroup,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// IsApproved 会员是否已通过审核
func (m *Member) IsApproved() bool {
	return m != nil && m.Status == MemberStatusApproved
}

// IsAdmin 会员是否为管理员
func (m *Member) IsAdmin() bool {
	return m != nil && m.Role == MemberRoleAdmin
}

// IsModerator 会员是否为版主
func (m *Member) IsModerator() bool {
	return m != nil && m.Role == MemberRoleModerator
}

// MemberProfile 个人档案更新字段
// PUT /members/{id} 只替换这组命名字段，请求体中的其他字段一律忽略
type MemberProfile struct {
	DisplayName              string `json:"displayName" bson:"displayName"`
	MobileNumber             string `json:"mobileNumber" bson:"mobileNumber"`
	CompanyName              string `json:"companyName" bson:"companyName"`
	Designation              string `json:"designation" bson:"designation"`
	Internship1              string `json:"internship1" bson:"internship1"`
	Internship2              string `json:"internship2" bson:"internship2"`
	PresentAddressStreet     string `json:"presentAddressStreet" bson:"presentAddressStreet"`
	PresentAddressDistrict   string `json:"presentAddressDistrict" bson:"presentAddressDistrict"`
	PermanentAddressStreet   string `json:"permanentAddressStreet" bson:"permanentAddressStreet"`
	PermanentAddressDistrict string `json:"permanentAddressDistrict" bson:"permanentAddressDistrict"`
	Batch                    string `json:"batch" bson:"batch"`
	Department               string `json:"department" bson:"department"`
	BloodGroup               string `json:"bloodGroup" bson:"bloodGroup"`
}
