package model

import "go.mongodb.org/mongo-driver/v2/bson"

// IsValidID 判断字符串是否为规范形式的 ObjectID
//
// 要求解析成功且重新序列化后与输入完全相等，
// 拒绝结构上可解析但非规范的形式（如大写 hex）。
// 所有按 id 删除/更新的路由统一以此为前置校验。
func IsValidID(id string) bool {
	oid, err := bson.ObjectIDFromHex(id)
	return err == nil && oid.Hex() == id
}
