package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Article 文章
// createdAt 由服务端在创建时统一打时间戳，客户端提交的值会被覆盖
type Article struct {
	ID        bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title     string        `json:"title" bson:"title"`
	Author    string        `json:"author,omitempty" bson:"author,omitempty"`
	ImageURL  string        `json:"imageURL,omitempty" bson:"imageURL,omitempty"`
	Content   string        `json:"content,omitempty" bson:"content,omitempty"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}
