package testcases

import "go.mongodb.org/mongo-driver/bson"

// RegisterInsertCases adds the document validation insert benchmarks to r.
// Each test inserts one document per operation into a collection with and
// without a validator.
func RegisterInsertCases(r *Registry) {
	// A single field which must exist and be an integer. Targets $exists and
	// $type on one field.
	one := fieldNames(1)
	r.AddInsertTest("Insert.DocValidation.OneInt", randIntDoc(one),
		WithValidator(existsAndTypeValidator(one, typeInt32)),
		WithJSONSchema(bson.D{
			{Key: "properties", Value: bson.D{{Key: "a", Value: bsonTypeIs("integer")}}},
			{Key: "required", Value: bson.A{"a"}},
		}))

	ten := fieldNames(10)
	r.AddInsertTest("Insert.DocValidation.TenInt", randIntDoc(ten),
		WithValidator(existsAndTypeValidator(ten, typeInt32)))

	twenty := fieldNames(20)
	r.AddInsertTest("Insert.DocValidation.TwentyInt", randIntDoc(twenty),
		WithValidator(existsAndTypeValidator(twenty, typeInt32)),
		WithJSONSchema(bsonTypeSchema(twenty, "int")))

	oneFifty := fieldNames(150)
	r.AddInsertTest("Insert.DocValidation.OneFiftyInt", randIntDoc(oneFifty),
		WithValidator(existsAndTypeValidator(oneFifty, typeInt32)),
		WithJSONSchema(bsonTypeSchema(oneFifty, "int")))

	// JSON Schema only: a variety of constraints on twenty fields besides _id.
	r.AddInsertTest("Insert.DocValidation.Variety", varietyFields(),
		WithJSONSchema(varietySchema()))

	r.AddInsertTest("Insert.DocValidation.Array", bson.D{{Key: "a", Value: arrayItems()}},
		WithJSONSchema(arraySchema()))

	r.AddInsertTest("Insert.DocValidation.Nested", nestedDoc(nestedDocPath, nestedLeaf()),
		WithJSONSchema(nestedValidationSchema()))
}
