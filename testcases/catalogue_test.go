package testcases

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestDefaultCatalogue(t *testing.T) {
	r := Default()

	assert.Equal(t, []string{
		"Insert.DocValidation.OneInt.Compare",
		"Insert.DocValidation.OneInt",
		"Insert.DocValidation.OneInt.JSONSchema",
		"Insert.DocValidation.TenInt.Compare",
		"Insert.DocValidation.TenInt",
		"Insert.DocValidation.TwentyInt.Compare",
		"Insert.DocValidation.TwentyInt",
		"Insert.DocValidation.TwentyInt.JSONSchema",
		"Insert.DocValidation.OneFiftyInt.Compare",
		"Insert.DocValidation.OneFiftyInt",
		"Insert.DocValidation.OneFiftyInt.JSONSchema",
		"Insert.DocValidation.Variety.Compare",
		"Insert.DocValidation.Variety.JSONSchema",
		"Insert.DocValidation.Array.Compare",
		"Insert.DocValidation.Array.JSONSchema",
		"Insert.DocValidation.Nested.Compare",
		"Insert.DocValidation.Nested.JSONSchema",
		"Update.DocValidation.OneNum.Compare",
		"Update.DocValidation.OneNum",
		"Update.DocValidation.OneNum.JSONSchema",
		"Update.DocValidation.TenNum.Compare",
		"Update.DocValidation.TenNum",
		"Update.DocValidation.TwentyNum.Compare",
		"Update.DocValidation.TwentyNum",
		"Update.DocValidation.TwentyNum.JSONSchema",
		"Update.DocValidation.OneFiftyNum.Compare",
		"Update.DocValidation.OneFiftyNum",
		"Update.DocValidation.OneFiftyNum.JSONSchema",
		"Update.DocValidation.Variety.Compare",
		"Update.DocValidation.Variety.JSONSchema",
		"Update.DocValidation.Array.Compare",
		"Update.DocValidation.Array.JSONSchema",
		"Update.DocValidation.Nested.Compare",
		"Update.DocValidation.Nested.JSONSchema",
	}, caseNames(r.Cases()))

	seen := make(map[string]bool)
	for _, c := range r.Cases() {
		assert.False(t, seen[c.Name], "duplicate case %s", c.Name)
		seen[c.Name] = true
		assert.True(t, c.HasTag(TagDocValidation), c.Name)
		require.Len(t, c.Ops, 1, c.Name)
		if c.HasTag(TagUpdate) {
			assert.Equal(t, DefaultNumDocs, c.NumDocs, c.Name)
		}
	}
}

func TestFieldNames(t *testing.T) {
	names := fieldNames(150)

	assert.Equal(t, []string{"a", "b", "c"}, names[:3])
	assert.Equal(t, "z", names[25])
	assert.Equal(t, "aa", names[26])
	assert.Equal(t, "aaz", names[77])
	assert.Equal(t, "aaaaat", names[149])
}

func TestOneIntMatchesDocumentedExample(t *testing.T) {
	r := NewRegistry()
	RegisterInsertCases(r)

	c, ok := r.Lookup("Insert.DocValidation.OneInt")
	require.True(t, ok)
	assert.Equal(t, oneIntValidator, c.Validator)
	assert.Equal(t, oneIntDoc, c.Ops[0].Doc)

	c, ok = r.Lookup("Insert.DocValidation.OneInt.JSONSchema")
	require.True(t, ok)
	assert.Equal(t, JSONSchemaValidator(oneIntSchema), c.Validator)
}

func TestOneFiftyIntValidator(t *testing.T) {
	r := NewRegistry()
	RegisterInsertCases(r)

	c, ok := r.Lookup("Insert.DocValidation.OneFiftyInt")
	require.True(t, ok)
	require.Len(t, c.Validator, 1)
	clauses, ok := c.Validator[0].Value.(bson.A)
	require.True(t, ok)
	assert.Len(t, clauses, 300)
	assert.Len(t, c.Ops[0].Doc, 150)

	c, ok = r.Lookup("Insert.DocValidation.OneFiftyInt.JSONSchema")
	require.True(t, ok)
	schema := c.Validator[0].Value.(bson.D)
	assert.Len(t, schema[0].Value, 150)
	assert.Len(t, schema[1].Value, 150)
}

func TestUpdateGeneratorsProduceDoubles(t *testing.T) {
	gen := zeroDocGenerator(fieldNames(2))

	assert.Equal(t, bson.D{{Key: "_id", Value: 7}, {Key: "a", Value: 0.0}, {Key: "b", Value: 0.0}}, gen(7))
	assert.Equal(t, bson.D{{Key: "$inc", Value: bson.D{{Key: "a", Value: 1.0}, {Key: "b", Value: 1.0}}}}, incAll(fieldNames(2)))
	assert.Equal(t, bson.D{{Key: "a", Value: 0.0}, {Key: "b", Value: 0.0}}, zeroFieldsGenerator(fieldNames(2))(7))
}

// populated runs the setup of the named case and returns the documents it
// inserted.
func populated(t *testing.T, name string) []interface{} {
	c, ok := Default().Lookup(name)
	require.True(t, ok, name)

	var docs []interface{}
	coll := new(MockCollection)
	coll.On("Drop", mock.Anything).Return(nil)
	coll.On("InsertMany", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.InsertManyResult{}, nil).
		Run(func(args mock.Arguments) { docs = args.Get(1).([]interface{}) })

	require.NoError(t, c.Pre(context.Background(), coll))
	require.Len(t, docs, DefaultNumDocs)
	return docs
}

func hasID(doc interface{}) bool {
	for _, e := range doc.(bson.D) {
		if e.Key == "_id" {
			return true
		}
	}
	return false
}

func TestUpdatePopulateIDs(t *testing.T) {
	tests := []struct {
		name  string
		hasID bool
	}{
		{"Update.DocValidation.OneNum.Compare", true},
		{"Update.DocValidation.TenNum.Compare", true},
		{"Update.DocValidation.TwentyNum.Compare", true},
		{"Update.DocValidation.OneFiftyNum.Compare", false},
		{"Update.DocValidation.Variety.Compare", true},
		{"Update.DocValidation.Array.Compare", false},
		{"Update.DocValidation.Nested.Compare", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := populated(t, tt.name)
			assert.Equal(t, tt.hasID, hasID(docs[0]))
			assert.Equal(t, tt.hasID, hasID(docs[DefaultNumDocs-1]))
		})
	}

	docs := populated(t, "Update.DocValidation.OneFiftyNum.Compare")
	assert.Len(t, docs[0], 150)
}

// schemaValue walks a schema through nested documents by key.
func schemaValue(t *testing.T, d bson.D, keys ...string) interface{} {
	t.Helper()
	var v interface{} = d
	for _, key := range keys {
		doc, ok := v.(bson.D)
		require.True(t, ok, "%s is not a document", key)
		found := false
		for _, e := range doc {
			if e.Key == key {
				v, found = e.Value, true
				break
			}
		}
		require.True(t, found, "missing key %s", key)
	}
	return v
}

func TestVarietySchema(t *testing.T) {
	schema := varietySchema()

	assert.Equal(t, 15, schemaValue(t, schema, "minProperties"))
	assert.Equal(t, 21, schemaValue(t, schema, "maxProperties"))
	if diff := cmp.Diff(bson.A{"_id", "a", "b", "f", "g", "k", "l", "p", "q"}, schemaValue(t, schema, "required")); diff != "" {
		t.Errorf("required mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, schemaValue(t, schema, "properties"), 20)
	if diff := cmp.Diff(bson.D{{Key: "bsonType", Value: bson.A{"array", "object"}}}, schemaValue(t, schema, "properties", "m")); diff != "" {
		t.Errorf("properties.m mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 15, schemaValue(t, schema, "properties", "t", "maxProperties"))
}

func TestArraySchema(t *testing.T) {
	schema := arraySchema()

	assert.Equal(t, bson.A{"a"}, schemaValue(t, schema, "required"))
	assert.Equal(t, bson.A{"array"}, schemaValue(t, schema, "properties", "a", "type"))
	assert.Equal(t, true, schemaValue(t, schema, "properties", "a", "uniqueItems"))
	assert.Equal(t, 10, schemaValue(t, schema, "properties", "a", "minItems"))
	assert.Equal(t, 30, schemaValue(t, schema, "properties", "a", "maxItems"))

	items, ok := schemaValue(t, schema, "properties", "a", "items").(bson.A)
	require.True(t, ok)
	require.Len(t, items, 21)
	assert.Equal(t, bson.D{{Key: "enum", Value: bson.A{loremLines[0]}}}, items[0])
	if diff := cmp.Diff(bson.D{
		{Key: "properties", Value: bson.D{{Key: "b", Value: bson.D{}}, {Key: "c", Value: bson.D{}}}},
		{Key: "additionalProperties", Value: false},
	}, items[13]); diff != "" {
		t.Errorf("items[13] mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, bson.D{{Key: "bsonType", Value: bson.A{"int", "long", "number"}}}, items[17])
	assert.Equal(t, bson.D{{Key: "multipleOf", Value: 2}}, items[20])

	assert.Equal(t, "array", schemaValue(t, schema, "properties", "a", "additionalItems", "type"))
	pair := func(first, second string) bson.D {
		return bson.D{{Key: "items", Value: bson.A{
			bson.D{{Key: "type", Value: first}},
			bson.D{{Key: "type", Value: second}},
		}}}
	}
	want := bson.A{pair("number", "string"), pair("string", "number"), pair("string", "string")}
	if diff := cmp.Diff(want, schemaValue(t, schema, "properties", "a", "additionalItems", "oneOf")); diff != "" {
		t.Errorf("additionalItems.oneOf mismatch (-want +got):\n%s", diff)
	}
}

func TestNestedValidationSchema(t *testing.T) {
	schema := nestedValidationSchema()

	keys := make([]string, 0, 2*len(nestedSchemaPath))
	for _, name := range nestedSchemaPath[:len(nestedSchemaPath)-1] {
		keys = append(keys, "properties", name)
		assert.Equal(t, "object", schemaValue(t, schema, append(keys, "type")...))
	}
	keys = append(keys, "properties", nestedSchemaPath[len(nestedSchemaPath)-1], "properties")

	want := bson.D{
		{Key: "sku", Value: bson.D{{Key: "type", Value: "number"}}},
		{Key: "price", Value: bson.D{{Key: "type", Value: "number"}, {Key: "minimum", Value: 0}, {Key: "maximum", Value: 10.0}}},
		{Key: "country", Value: bson.D{{Key: "enum", Value: bson.A{"fr", "es"}}}},
		{Key: "stock", Value: bson.D{{Key: "type", Value: "number"}, {Key: "minimum", Value: 0}, {Key: "multipleOf", Value: 1}}},
		{Key: "name", Value: bson.D{{Key: "type", Value: "string"}}},
	}
	if diff := cmp.Diff(want, schemaValue(t, schema, keys...)); diff != "" {
		t.Errorf("leaf properties mismatch (-want +got):\n%s", diff)
	}
}

func TestArrayItems(t *testing.T) {
	items := arrayItems()

	require.Len(t, items, 30)
	assert.Equal(t, loremLines[0], items[0])
	assert.Equal(t, bson.D{{Key: "b", Value: 6.0}, {Key: "c", Value: 6.0}}, items[13])
	assert.Equal(t, 0.0, items[14])
	assert.Equal(t, bson.A{1600.0, "Pennsylvania Avenue"}, items[29])
}

func TestNestedDocuments(t *testing.T) {
	assert.Len(t, nestedDocPath, 34)
	assert.Len(t, nestedSchemaPath, 30)
	assert.Equal(t, "ad", nestedSchemaPath[29])

	doc := nestedDoc([]string{"a", "b"}, bson.D{{Key: "x", Value: 1.0}})
	assert.Equal(t, bson.D{{Key: "a", Value: bson.D{{Key: "b", Value: bson.D{{Key: "x", Value: 1.0}}}}}}, doc)

	schema := nestedSchema([]string{"a"}, bson.D{{Key: "x", Value: typeIs("number")}})
	assert.Equal(t, bson.D{{Key: "properties", Value: bson.D{{Key: "a", Value: bson.D{
		{Key: "type", Value: "object"},
		{Key: "properties", Value: bson.D{{Key: "x", Value: bson.D{{Key: "type", Value: "number"}}}}},
	}}}}}, schema)

	assert.Equal(t, "a.b.price", dottedPath([]string{"a", "b"}, "price"))
}
