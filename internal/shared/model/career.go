package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Job 招聘职位
type Job struct {
	ID          bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Company     string        `json:"company,omitempty" bson:"company,omitempty"`
	Location    string        `json:"location,omitempty" bson:"location,omitempty"`
	Deadline    string        `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	ApplyURL    string        `json:"applyURL,omitempty" bson:"applyURL,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
}

// Intern 实习岗位
type Intern struct {
	ID          bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Company     string        `json:"company,omitempty" bson:"company,omitempty"`
	Location    string        `json:"location,omitempty" bson:"location,omitempty"`
	Deadline    string        `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	ApplyURL    string        `json:"applyURL,omitempty" bson:"applyURL,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
}
