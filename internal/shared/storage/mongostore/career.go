package mongostore

import (
	"context"

	"members-admin/internal/shared/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ============================================================================
// JobStore / InternStore
// ============================================================================

func (s *Store) ListJobs(ctx context.Context) ([]*model.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findMany[model.Job](ctx, s.col(ColJobs), bson.D{}, opts)
}

func (s *Store) CreateJob(ctx context.Context, j *model.Job) error {
	if j.ID.IsZero() {
		j.ID = bson.NewObjectID()
	}
	return insertOne(ctx, s.col(ColJobs), j)
}

func (s *Store) GetJob(ctx context.Context, id bson.ObjectID) (*model.Job, error) {
	return findOne[model.Job](ctx, s.col(ColJobs), bson.D{{Key: "_id", Value: id}})
}

func (s *Store) ListInterns(ctx context.Context) ([]*model.Intern, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findMany[model.Intern](ctx, s.col(ColInterns), bson.D{}, opts)
}

func (s *Store) CreateIntern(ctx context.Context, i *model.Intern) error {
	if i.ID.IsZero() {
		i.ID = bson.NewObjectID()
	}
	return insertOne(ctx, s.col(ColInterns), i)
}

func (s *Store) GetIntern(ctx context.Context, id bson.ObjectID) (*model.Intern, error) {
	return findOne[model.Intern](ctx, s.col(ColInterns), bson.D{{Key: "_id", Value: id}})
}
