package model

import "go.mongodb.org/mongo-driver/v2/bson"

// CommitteeMember 委员会成员
// 无唯一性约束，整体由批量删除接口统一清理
type CommitteeMember struct {
	ID          bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string        `json:"name" bson:"name"`
	Designation string        `json:"designation,omitempty" bson:"designation,omitempty"`
	PhotoURL    string        `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Batch       string        `json:"batch,omitempty" bson:"batch,omitempty"`
	Department  string        `json:"department,omitempty" bson:"department,omitempty"`
	Message     string        `json:"message,omitempty" bson:"message,omitempty"`
}
