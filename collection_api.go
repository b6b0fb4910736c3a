package main

import (
	"context"

	"github.com/idealo/mongodb-docvalidation-benchmarking/testcases"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionAPI defines the MongoDB operations used by the runner, allowing for testing
type CollectionAPI interface {
	testcases.Collection
	InsertOne(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	EstimatedDocumentCount(ctx context.Context) (int64, error)
}

// MongoDBCollection is a wrapper around mongo.Collection to implement CollectionAPI
type MongoDBCollection struct {
	*mongo.Collection
}

func (c *MongoDBCollection) InsertOne(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error) {
	return c.Collection.InsertOne(ctx, document)
}

func (c *MongoDBCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return c.Collection.UpdateOne(ctx, filter, update, opts...)
}

func (c *MongoDBCollection) InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	return c.Collection.InsertMany(ctx, documents, opts...)
}

func (c *MongoDBCollection) Drop(ctx context.Context) error {
	return c.Collection.Drop(ctx)
}

func (c *MongoDBCollection) EstimatedDocumentCount(ctx context.Context) (int64, error) {
	return c.Collection.EstimatedDocumentCount(ctx)
}

// RunCommand runs {<name>: <collection name>, <opts>...} against the
// collection's database, e.g. "create" with a validator option.
func (c *MongoDBCollection) RunCommand(ctx context.Context, name string, opts bson.D) error {
	cmd := append(bson.D{{Key: name, Value: c.Name()}}, opts...)
	return c.Database().RunCommand(ctx, cmd).Err()
}
