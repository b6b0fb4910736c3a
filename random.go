package main

import (
	"math/rand"
	"time"

	"github.com/idealo/mongodb-docvalidation-benchmarking/testcases"
	"go.mongodb.org/mongo-driver/bson"
)

// Randomizer fills in the placeholders of operation templates. It is not safe
// for concurrent use; every worker owns one.
type Randomizer struct {
	rnd *rand.Rand
}

// NewRandomizer initializes a new Randomizer instance with a seeded random number generator.
func NewRandomizer() *Randomizer {
	return NewSeededRandomizer(time.Now().UnixNano())
}

func NewSeededRandomizer(seed int64) *Randomizer {
	return &Randomizer{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Resolve returns a copy of v with every placeholder replaced by a value drawn
// for worker. v itself is left untouched.
func (r *Randomizer) Resolve(v interface{}, worker int) interface{} {
	if p, ok := testcases.AsPlaceholder(v); ok {
		return p.Draw(r.rnd, worker)
	}
	switch t := v.(type) {
	case bson.D:
		out := make(bson.D, len(t))
		for i, e := range t {
			out[i] = bson.E{Key: e.Key, Value: r.Resolve(e.Value, worker)}
		}
		return out
	case bson.M:
		out := make(bson.M, len(t))
		for k, val := range t {
			out[k] = r.Resolve(val, worker)
		}
		return out
	case bson.A:
		out := make(bson.A, len(t))
		for i, val := range t {
			out[i] = r.Resolve(val, worker)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = r.Resolve(val, worker)
		}
		return out
	}
	return v
}

// ResolveDoc is Resolve for a top-level document.
func (r *Randomizer) ResolveDoc(doc bson.D, worker int) bson.D {
	if doc == nil {
		return nil
	}
	if resolved, ok := r.Resolve(doc, worker).(bson.D); ok {
		return resolved
	}
	return doc
}
