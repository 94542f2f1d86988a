package mongostore

import (
	"context"

	"members-admin/internal/shared/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ============================================================================
// ExecutiveMessageStore
// ============================================================================

func (s *Store) ListExecutiveMessages(ctx context.Context) ([]*model.ExecutiveMessage, error) {
	return findMany[model.ExecutiveMessage](ctx, s.col(ColExecutiveMessages), bson.D{})
}

func (s *Store) CreateExecutiveMessage(ctx context.Context, em *model.ExecutiveMessage) error {
	if em.ID.IsZero() {
		em.ID = bson.NewObjectID()
	}
	return insertOne(ctx, s.col(ColExecutiveMessages), em)
}

func (s *Store) DeleteExecutiveMessage(ctx context.Context, id bson.ObjectID) (int64, error) {
	return deleteByID(ctx, s.col(ColExecutiveMessages), id)
}
