// Package mongostore 实现基于 MongoDB 的 PersistentStore
//
// 使用 mongo-go-driver v2，通过 bson tag 实现 model 结构体的序列化/反序列化。
// 所有 Collection 名称和索引在 ensureIndexes 中统一管理。
package mongostore

import (
	"context"
	"fmt"
	"log"
	"time"

	"members-admin/internal/shared/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// 编译期确认 Store 完整实现 PersistentStore
var _ storage.PersistentStore = (*Store)(nil)

// Collection 名称常量
// 与历史数据库保持一致，含大小写
const (
	ColMembers           = "members"
	ColCommitteeMembers  = "committeeMembers"
	ColArticles          = "articles"
	ColJobs              = "jobs"
	ColInterns           = "interns"
	ColExecutiveMessages = "executiveMessages"
)

// Store 实现 storage.PersistentStore 接口的 MongoDB 驱动
//
// 进程启动时创建一次，连接池由驱动内部管理，
// 所有处理器共享同一实例。
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore 创建 MongoDB 存储实例
//
// uri: MongoDB 连接 URI，如 "mongodb://localhost:27017"
// dbName: 数据库名称，如 "membership_admin"
func NewStore(uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongostore: connect failed: %w", err)
	}

	// 验证连接
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongostore: ping failed: %w", err)
	}

	db := client.Database(dbName)
	s := &Store{client: client, db: db}

	// 创建索引
	if err := s.ensureIndexes(ctx); err != nil {
		log.Printf("WARNING: mongostore: ensure indexes failed: %v", err)
	}

	return s, nil
}

// Close 关闭 MongoDB 连接
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// col 获取指定 Collection
func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// ensureIndexes 创建所有必要的索引
func (s *Store) ensureIndexes(ctx context.Context) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		// members
		// email 唯一性是业务约定而非硬约束，索引仅用于查询加速
		{ColMembers, bson.D{{Key: "email", Value: 1}}, false},
		{ColMembers, bson.D{{Key: "role", Value: 1}, {Key: "status", Value: 1}}, false},

		// articles / jobs / interns 按创建时间倒序展示
		{ColArticles, bson.D{{Key: "createdAt", Value: -1}}, false},
		{ColJobs, bson.D{{Key: "createdAt", Value: -1}}, false},
		{ColInterns, bson.D{{Key: "createdAt", Value: -1}}, false},
	}

	for _, i := range indexes {
		model := mongo.IndexModel{Keys: i.keys}
		if i.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := s.col(i.col).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", i.col, err)
		}
	}

	return nil
}
