package testcases

import "go.mongodb.org/mongo-driver/bson"

// RegisterUpdateCases adds the document validation update benchmarks to r.
// Every test populates DefaultNumDocs documents and then updates random ones.
func RegisterUpdateCases(r *Registry) {
	// A single field which must exist and be a double.
	one := fieldNames(1)
	r.AddUpdateTest("Update.DocValidation.OneNum", zeroDocGenerator(one), incAll(one),
		WithValidator(existsAndTypeValidator(one, typeDouble)),
		WithJSONSchema(bsonTypeSchema(one, "double")))

	ten := fieldNames(10)
	r.AddUpdateTest("Update.DocValidation.TenNum", zeroDocGenerator(ten), incAll(ten),
		WithValidator(existsAndTypeValidator(ten, typeDouble)))

	twenty := fieldNames(20)
	r.AddUpdateTest("Update.DocValidation.TwentyNum", zeroDocGenerator(twenty), incAll(twenty),
		WithValidator(existsAndTypeValidator(twenty, typeDouble)),
		WithJSONSchema(bsonTypeSchema(twenty, "double")))

	// These documents carry server-assigned ids, so the _id filter matches none.
	oneFifty := fieldNames(150)
	r.AddUpdateTest("Update.DocValidation.OneFiftyNum", zeroFieldsGenerator(oneFifty), incAll(oneFifty),
		WithValidator(existsAndTypeValidator(oneFifty, typeDouble)),
		WithJSONSchema(bsonTypeSchema(oneFifty, "double")))

	variety := func(i int) bson.D {
		return append(bson.D{{Key: "_id", Value: i}}, varietyFields()...)
	}
	r.AddUpdateTest("Update.DocValidation.Variety", variety, incAll(fieldNames(1)),
		WithJSONSchema(varietySchema()))

	// The array documents carry no explicit _id.
	array := func(int) bson.D {
		return bson.D{{Key: "a", Value: arrayItems()}}
	}
	r.AddUpdateTest("Update.DocValidation.Array", array,
		bson.D{{Key: "$inc", Value: bson.D{{Key: "a.14", Value: 1.0}}}},
		WithJSONSchema(arraySchema()))

	nested := func(i int) bson.D {
		return append(bson.D{{Key: "_id", Value: i}}, nestedDoc(nestedDocPath, nestedLeaf())...)
	}
	r.AddUpdateTest("Update.DocValidation.Nested", nested,
		bson.D{{Key: "$inc", Value: bson.D{
			{Key: dottedPath(nestedSchemaPath, "price"), Value: 1.0},
			{Key: dottedPath(nestedSchemaPath, "stock"), Value: 1.0},
		}}},
		WithJSONSchema(nestedValidationSchema()))
}
