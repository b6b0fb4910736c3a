package testcases

import "go.mongodb.org/mongo-driver/bson"

// Documents and schemas shared by the insert and update catalogues.

func sku(v interface{}) bson.D { return bson.D{{Key: "sku", Value: v}} }

func valueDoc(v float64) bson.D { return bson.D{{Key: "value", Value: v}} }

func foobar() bson.D { return bson.D{{Key: "foo", Value: "bar"}} }

// varietyFields holds twenty fields of assorted types.
func varietyFields() bson.D {
	return bson.D{
		{Key: "a", Value: 0.0},
		{Key: "b", Value: 1.0},
		{Key: "c", Value: 2.0},
		{Key: "d", Value: 3.0},
		{Key: "e", Value: 4.0},
		{Key: "f", Value: "f"},
		{Key: "g", Value: "g"},
		{Key: "h", Value: "h"},
		{Key: "i", Value: "i"},
		{Key: "j", Value: "j"},
		{Key: "k", Value: bson.A{0.0, 1.0, 2.0}},
		{Key: "l", Value: bson.A{"a", "b", "c"}},
		{Key: "m", Value: bson.A{foobar()}},
		{Key: "n", Value: bson.A{0.0, "a", foobar()}},
		{Key: "o", Value: bson.A{bson.A{1.0, 2.0}, bson.A{3.0, 4.0}}},
		{Key: "p", Value: sku("123")},
		{Key: "q", Value: sku(123.0)},
		{Key: "r", Value: valueDoc(10)},
		{Key: "s", Value: valueDoc(-10)},
		{Key: "t", Value: bson.D{}},
	}
}

func typeIs(t interface{}) bson.D { return bson.D{{Key: "type", Value: t}} }

func bsonTypeIs(t interface{}) bson.D { return bson.D{{Key: "bsonType", Value: t}} }

func keyword(k string, v interface{}) bson.D { return bson.D{{Key: k, Value: v}} }

// varietySchema constrains the twenty varietyFields with a mix of keywords.
func varietySchema() bson.D {
	return bson.D{
		{Key: "minProperties", Value: 15},
		{Key: "maxProperties", Value: 21},
		{Key: "properties", Value: bson.D{
			{Key: "a", Value: typeIs("number")},
			{Key: "b", Value: bsonTypeIs("number")},
			{Key: "c", Value: bsonTypeIs("double")},
			{Key: "d", Value: typeIs(bson.A{"number", "string"})},
			{Key: "e", Value: keyword("minimum", 0)},
			{Key: "f", Value: typeIs("string")},
			{Key: "g", Value: bsonTypeIs("string")},
			{Key: "h", Value: typeIs(bson.A{"string", "array"})},
			{Key: "i", Value: keyword("minLength", 1)},
			{Key: "j", Value: keyword("maxLength", 1)},
			{Key: "k", Value: typeIs("array")},
			{Key: "l", Value: bsonTypeIs("array")},
			{Key: "m", Value: bsonTypeIs(bson.A{"array", "object"})},
			{Key: "n", Value: keyword("minItems", 1)},
			{Key: "o", Value: keyword("maxItems", 10)},
			{Key: "p", Value: typeIs("object")},
			{Key: "q", Value: bsonTypeIs("object")},
			{Key: "r", Value: typeIs(bson.A{"object", "string"})},
			{Key: "s", Value: keyword("minProperties", 1)},
			{Key: "t", Value: keyword("maxProperties", 15)},
		}},
		{Key: "required", Value: bson.A{"_id", "a", "b", "f", "g", "k", "l", "p", "q"}},
	}
}

var loremLines = []string{
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit",
	"sed do eiusmod tempor incididunt ut labore et dolore magna aliqua",
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco",
	"laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor",
	"in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla",
	"pariatur. Excepteur sint occaecat cupidatat non proident, sunt in culpa",
	"qui officia deserunt mollit anim id est laborum",
}

// arrayItems returns the thirty mixed items stored under "a" by the Array
// tests: seven strings, seven objects, seven numbers and nine address pairs.
func arrayItems() bson.A {
	items := make(bson.A, 0, 30)
	for _, line := range loremLines {
		items = append(items, line)
	}
	for i := 0; i < 7; i++ {
		items = append(items, bson.D{{Key: "b", Value: float64(i)}, {Key: "c", Value: float64(i)}})
	}
	for i := 0; i < 7; i++ {
		items = append(items, float64(i))
	}
	return append(items,
		bson.A{229.0, "West 43rd Street"},
		bson.A{"1-2-1", "銀座"},
		bson.A{29.0, "Rue Montmartre"},
		bson.A{"Maximilianstraße", 7.0},
		bson.A{70.0, "Comunipaw Avenue"},
		bson.A{"Prinzregentenstraße", 9.0},
		bson.A{120.0, "Ocean Avenue"},
		bson.A{"1-9-1", "丸の内"},
		bson.A{1600.0, "Pennsylvania Avenue"},
	)
}

// arraySchema applies one positional constraint per leading item of
// arrayItems and a oneOf constraint to the remaining address pairs.
func arraySchema() bson.D {
	pair := func(first, second string) bson.D {
		return keyword("items", bson.A{typeIs(first), typeIs(second)})
	}
	return bson.D{
		{Key: "properties", Value: bson.D{
			{Key: "a", Value: bson.D{
				{Key: "type", Value: bson.A{"array"}},
				{Key: "uniqueItems", Value: true},
				{Key: "minItems", Value: 10},
				{Key: "maxItems", Value: 30},
				{Key: "items", Value: bson.A{
					keyword("enum", bson.A{loremLines[0]}),
					typeIs("string"),
					typeIs(bson.A{"string"}),
					typeIs("string"),
					keyword("minLength", 5),
					keyword("maxLength", 90),
					keyword("pattern", "[a-zA-Z .,]+"),
					typeIs("object"),
					keyword("minProperties", 1),
					keyword("maxProperties", 3),
					keyword("properties", bson.D{{Key: "b", Value: typeIs("number")}}),
					keyword("patternProperties", bson.D{{Key: "c", Value: typeIs("number")}}),
					keyword("required", bson.A{"b", "c"}),
					bson.D{
						{Key: "properties", Value: bson.D{{Key: "b", Value: bson.D{}}, {Key: "c", Value: bson.D{}}}},
						{Key: "additionalProperties", Value: false},
					},
					typeIs("number"),
					typeIs(bson.A{"number"}),
					bsonTypeIs("number"),
					bsonTypeIs(bson.A{"int", "long", "number"}),
					keyword("minimum", 0),
					keyword("maximum", 10),
					keyword("multipleOf", 2),
				}},
				{Key: "additionalItems", Value: bson.D{
					{Key: "type", Value: "array"},
					{Key: "oneOf", Value: bson.A{
						pair("number", "string"),
						pair("string", "number"),
						pair("string", "string"),
					}},
				}},
			}},
		}},
		{Key: "required", Value: bson.A{"a"}},
	}
}

// nestedDocPath is the thirty-four level path the Nested documents are stored
// under. It repeats q, r, s, t after t, so it diverges from nestedSchemaPath.
var nestedDocPath = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r", "s", "t",
	"q", "r", "s", "t", "u", "v", "w", "x", "y", "z", "aa", "ab", "ac", "ad",
}

// nestedSchemaPath is the thirty level path described by nestedValidationSchema.
var nestedSchemaPath = fieldNames(30)

func nestedLeaf() bson.D {
	return bson.D{
		{Key: "sku", Value: "123"},
		{Key: "price", Value: 3.14},
		{Key: "country", Value: "fr"},
		{Key: "stock", Value: 1000.0},
		{Key: "name", Value: "widget"},
	}
}

func nestedValidationSchema() bson.D {
	return nestedSchema(nestedSchemaPath, bson.D{
		{Key: "sku", Value: typeIs("number")},
		{Key: "price", Value: bson.D{
			{Key: "type", Value: "number"},
			{Key: "minimum", Value: 0},
			{Key: "maximum", Value: 10.0},
		}},
		{Key: "country", Value: keyword("enum", bson.A{"fr", "es"})},
		{Key: "stock", Value: bson.D{
			{Key: "type", Value: "number"},
			{Key: "minimum", Value: 0},
			{Key: "multipleOf", Value: 1},
		}},
		{Key: "name", Value: typeIs("string")},
	})
}
