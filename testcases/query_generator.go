package testcases

import "go.mongodb.org/mongo-driver/bson"

// idBlockSize is the number of populated ids each worker updates. With the
// default population of 4800 documents, 48 workers cover the collection.
const idBlockSize = 100

// UpdateQuery selects one of the documents populated by an update test. Each
// worker draws from its own block of idBlockSize ids.
func UpdateQuery() bson.D {
	return bson.D{{Key: "_id", Value: RandIntPlusThread{Min: 0, Max: idBlockSize}}}
}
