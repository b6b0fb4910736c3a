package testcases

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultNumDocs is how many documents an update case populates.
const DefaultNumDocs = 4800

// Generator returns the i-th document used to populate a collection.
type Generator func(i int) bson.D

type expansion struct {
	validator  bson.D
	jsonSchema bson.D
	hasMatch   bool
	hasSchema  bool
	numDocs    int
}

// Option configures which variants of a test are registered.
type Option func(*expansion)

// WithValidator registers a variant that installs the match-expression
// validator v before the operations run.
func WithValidator(v bson.D) Option {
	return func(e *expansion) {
		e.validator = nonNil(v)
		e.hasMatch = true
	}
}

// WithJSONSchema registers a variant that installs {$jsonSchema: schema}.
// When both WithValidator and WithJSONSchema are given, the two are expected to
// accept the same documents.
func WithJSONSchema(schema bson.D) Option {
	return func(e *expansion) {
		e.jsonSchema = nonNil(schema)
		e.hasSchema = true
	}
}

// WithNumDocs changes the number of documents an update test populates.
func WithNumDocs(n int) Option {
	return func(e *expansion) {
		e.numDocs = n
	}
}

func nonNil(d bson.D) bson.D {
	if d == nil {
		return bson.D{}
	}
	return d
}

// JSONSchemaValidator wraps a schema into the validator envelope understood by
// the create command.
func JSONSchemaValidator(schema bson.D) bson.D {
	return bson.D{{Key: "$jsonSchema", Value: schema}}
}

// AddInsertTest registers the comparison, validator and JSON Schema variants
// of a test inserting doc. The comparison variant is always registered.
func (r *Registry) AddInsertTest(name string, doc bson.D, opts ...Option) []*Case {
	op := Op{Op: OpInsert, Doc: doc}
	return r.expand(name, TagInsert, op, nil, 0, opts)
}

// AddUpdateTest registers the variants of a test that populates the collection
// from gen and then applies update to randomly chosen documents.
func (r *Registry) AddUpdateTest(name string, gen Generator, update bson.D, opts ...Option) []*Case {
	op := Op{Op: OpUpdate, Query: UpdateQuery(), Update: update}
	return r.expand(name, TagUpdate, op, gen, DefaultNumDocs, opts)
}

func (r *Registry) expand(name, kind string, op Op, gen Generator, numDocs int, opts []Option) []*Case {
	e := expansion{numDocs: numDocs}
	for _, opt := range opts {
		opt(&e)
	}
	if gen == nil {
		e.numDocs = 0
	}
	baseTags := []string{kind, TagDocValidation}

	cases := []*Case{newCase(name+".Compare", append([]string{TagCompare}, baseTags...), nil, gen, e.numDocs, op)}
	if e.hasMatch {
		cases = append(cases, newCase(name, append([]string{TagRegression}, baseTags...), e.validator, gen, e.numDocs, op))
	}
	if e.hasSchema {
		cases = append(cases, newCase(name+".JSONSchema", append([]string{TagRegression, TagJSONSchema}, baseTags...),
			JSONSchemaValidator(e.jsonSchema), gen, e.numDocs, op))
	}
	for _, c := range cases {
		r.Add(c)
	}
	return cases
}

func newCase(name string, tags []string, validator bson.D, gen Generator, numDocs int, op Op) *Case {
	return &Case{
		Name:      name,
		Tags:      tags,
		Validator: validator,
		NumDocs:   numDocs,
		Pre:       setup(validator, gen, numDocs),
		Ops:       []Op{op},
	}
}

// setup drops the collection, recreates it with validator when one is given
// and inserts numDocs documents produced by gen.
func setup(validator bson.D, gen Generator, numDocs int) SetupFunc {
	return func(ctx context.Context, collection Collection) error {
		if err := collection.Drop(ctx); err != nil {
			return fmt.Errorf("drop collection: %w", err)
		}
		if validator != nil {
			if err := collection.RunCommand(ctx, "create", bson.D{{Key: "validator", Value: validator}}); err != nil {
				return fmt.Errorf("create collection with validator: %w", err)
			}
		}
		if gen == nil || numDocs <= 0 {
			return nil
		}
		return populate(ctx, collection, gen, numDocs)
	}
}

func populate(ctx context.Context, collection Collection, gen Generator, numDocs int) error {
	docs := make([]interface{}, 0, numDocs)
	for i := 0; i < numDocs; i++ {
		docs = append(docs, gen(i))
	}
	if _, err := collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return fmt.Errorf("populate %d documents: %w", numDocs, err)
	}
	return nil
}
