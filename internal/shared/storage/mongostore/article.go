package mongostore

import (
	"context"

	"members-admin/internal/shared/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ============================================================================
// ArticleStore
// ============================================================================

func (s *Store) ListArticles(ctx context.Context) ([]*model.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findMany[model.Article](ctx, s.col(ColArticles), bson.D{}, opts)
}

func (s *Store) CreateArticle(ctx context.Context, a *model.Article) error {
	if a.ID.IsZero() {
		a.ID = bson.NewObjectID()
	}
	return insertOne(ctx, s.col(ColArticles), a)
}

func (s *Store) GetArticle(ctx context.Context, id bson.ObjectID) (*model.Article, error) {
	return findOne[model.Article](ctx, s.col(ColArticles), bson.D{{Key: "_id", Value: id}})
}

func (s *Store) DeleteArticle(ctx context.Context, id bson.ObjectID) (int64, error) {
	return deleteByID(ctx, s.col(ColArticles), id)
}
