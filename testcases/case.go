package testcases

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	TagCompare       = "compare"
	TagRegression    = "regression"
	TagJSONSchema    = "jsonschema"
	TagInsert        = "insert"
	TagUpdate        = "update"
	TagDocValidation = "DocValidation"
)

const (
	OpInsert = "insert"
	OpUpdate = "update"
)

// Collection is what a case's setup drives. It is implemented by the runner on
// top of *mongo.Collection.
type Collection interface {
	Drop(ctx context.Context) error
	RunCommand(ctx context.Context, name string, opts bson.D) error
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
}

// SetupFunc prepares a collection before a case's operations are timed.
type SetupFunc func(ctx context.Context, collection Collection) error

// Op is a single operation replayed by the runner. Doc, Query and Update may
// contain placeholders.
type Op struct {
	Op     string `bson:"op"`
	Doc    bson.D `bson:"doc,omitempty"`
	Query  bson.D `bson:"query,omitempty"`
	Update bson.D `bson:"update,omitempty"`
}

// Case is one registered benchmark.
type Case struct {
	Name string
	Tags []string
	// Validator is the validator installed by Pre, nil for comparison cases.
	Validator bson.D
	// NumDocs is the number of documents Pre populates the collection with.
	NumDocs int
	Pre     SetupFunc
	Ops     []Op
}

func (c *Case) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Document describes the case without its setup function, suitable for
// dumping as extended JSON.
func (c *Case) Document() bson.D {
	tags := make(bson.A, 0, len(c.Tags))
	for _, t := range c.Tags {
		tags = append(tags, t)
	}
	ops := make(bson.A, 0, len(c.Ops))
	for _, op := range c.Ops {
		ops = append(ops, op)
	}
	doc := bson.D{
		{Key: "name", Value: c.Name},
		{Key: "tags", Value: tags},
	}
	if c.Validator != nil {
		doc = append(doc, bson.E{Key: "validator", Value: c.Validator})
	}
	if c.NumDocs > 0 {
		doc = append(doc, bson.E{Key: "numDocs", Value: c.NumDocs})
	}
	return append(doc, bson.E{Key: "ops", Value: ops})
}
