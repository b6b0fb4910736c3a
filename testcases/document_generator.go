package testcases

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// BSON type codes used by $type predicates.
const (
	typeDouble = 1
	typeInt32  = 16
)

// fieldNames returns n field names following a, b, ..., z, aa, ab, ..., az,
// aaa, ... so that every name is unique and sorts with its position.
func fieldNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = strings.Repeat("a", i/26) + string(rune('a'+i%26))
	}
	return names
}

// randIntDoc returns a document whose fields each hold a random integer.
func randIntDoc(fields []string) bson.D {
	doc := make(bson.D, 0, len(fields))
	for _, f := range fields {
		doc = append(doc, bson.E{Key: f, Value: RandInt{Min: 0, Max: 10000}})
	}
	return doc
}

// zeroDocGenerator returns a generator of {_id: i, <field>: 0.0, ...}.
func zeroDocGenerator(fields []string) Generator {
	zero := zeroFieldsGenerator(fields)
	return func(i int) bson.D {
		return append(bson.D{{Key: "_id", Value: i}}, zero(i)...)
	}
}

// zeroFieldsGenerator is zeroDocGenerator without the _id, leaving it to the
// server.
func zeroFieldsGenerator(fields []string) Generator {
	return func(int) bson.D {
		doc := make(bson.D, 0, len(fields))
		for _, f := range fields {
			doc = append(doc, bson.E{Key: f, Value: 0.0})
		}
		return doc
	}
}

// incAll returns {$inc: {<field>: 1.0, ...}}.
func incAll(fields []string) bson.D {
	inc := make(bson.D, 0, len(fields))
	for _, f := range fields {
		inc = append(inc, bson.E{Key: f, Value: 1.0})
	}
	return bson.D{{Key: "$inc", Value: inc}}
}

// existsAndTypeValidator requires every field to exist and carry typeCode.
func existsAndTypeValidator(fields []string, typeCode int) bson.D {
	clauses := make(bson.A, 0, 2*len(fields))
	for _, f := range fields {
		clauses = append(clauses,
			bson.D{{Key: f, Value: bson.D{{Key: "$exists", Value: true}}}},
			bson.D{{Key: f, Value: bson.D{{Key: "$type", Value: typeCode}}}},
		)
	}
	return bson.D{{Key: "$and", Value: clauses}}
}

// bsonTypeSchema is the JSON Schema counterpart of existsAndTypeValidator.
func bsonTypeSchema(fields []string, bsonType string) bson.D {
	props := make(bson.D, 0, len(fields))
	required := make(bson.A, 0, len(fields))
	for _, f := range fields {
		props = append(props, bson.E{Key: f, Value: bson.D{{Key: "bsonType", Value: bsonType}}})
		required = append(required, f)
	}
	return bson.D{
		{Key: "properties", Value: props},
		{Key: "required", Value: required},
	}
}

// nestedDoc wraps leaf in one sub-document per path element, outermost first.
func nestedDoc(path []string, leaf bson.D) bson.D {
	doc := leaf
	for i := len(path) - 1; i >= 0; i-- {
		doc = bson.D{{Key: path[i], Value: doc}}
	}
	return doc
}

// nestedSchema describes nested objects along path ending in leafProps.
func nestedSchema(path []string, leafProps bson.D) bson.D {
	props := leafProps
	for i := len(path) - 1; i >= 0; i-- {
		props = bson.D{{Key: path[i], Value: bson.D{
			{Key: "type", Value: "object"},
			{Key: "properties", Value: props},
		}}}
	}
	return bson.D{{Key: "properties", Value: props}}
}

func dottedPath(path []string, field string) string {
	return strings.Join(append(append([]string{}, path...), field), ".")
}
