package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexFavorCollection())
}

// IndexFavorCollection creates the indexes backing the feed ordering and
// the poster / acceptor equality queries
func (m *MongoDBIndexer) IndexFavorCollection() error {
	if err := m.createIndex(FavorCollection, mongo.IndexModel{
		Keys: bson.M{
			"created_at": -1,
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(FavorCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "posted_by", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(FavorCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "accepted_by", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetSparse(true),
	}); err != nil {
		return err
	}

	// address lookups of favors posted at the same spot
	return m.createIndex(FavorCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "location.latitude", Value: 1},
			{Key: "location.longitude", Value: 1},
		},
		Options: options.Index().SetSparse(true),
	})
}
