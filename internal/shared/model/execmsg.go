package model

import "go.mongodb.org/mongo-driver/v2/bson"

// ExecutiveMessage 领导寄语
type ExecutiveMessage struct {
	ID       bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string        `json:"name" bson:"name"`
	Title    string        `json:"title,omitempty" bson:"title,omitempty"`
	PhotoURL string        `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Message  string        `json:"message,omitempty" bson:"message,omitempty"`
}
