// Package workload defines the Avro schemas and deterministic sample
// data that the benchmark scenarios serialize. All datums use goavro's
// native form: map[string]interface{} for records, []interface{} for
// arrays.
package workload

import "fmt"

// SimpleSchema describes a flat record of four scalar fields.
const SimpleSchema = `{
	"type": "record",
	"name": "SimpleRecord",
	"fields": [
		{"name": "name", "type": "string"},
		{"name": "age", "type": "int"},
		{"name": "score", "type": "double"},
		{"name": "active", "type": "boolean"}
	]
}`

// ComplexSchema describes a record with nested array and map fields.
const ComplexSchema = `{
	"type": "record",
	"name": "ComplexRecord",
	"fields": [
		{"name": "id", "type": "long"},
		{"name": "name", "type": "string"},
		{"name": "email", "type": "string"},
		{"name": "age", "type": "int"},
		{"name": "salary", "type": "double"},
		{"name": "active", "type": "boolean"},
		{"name": "tags", "type": {"type": "array", "items": "string"}},
		{"name": "metadata", "type": {"type": "map", "values": "string"}}
	]
}`

// TableSchema describes one row of the batch container-file scenarios.
const TableSchema = `{
	"type": "record",
	"name": "TableRow",
	"fields": [
		{"name": "id", "type": "int"},
		{"name": "name", "type": "string"},
		{"name": "value", "type": "double"},
		{"name": "active", "type": "boolean"}
	]
}`

// SimpleRecord returns the fixed datum measured by the simple record
// scenario. A fresh map is returned on every call so callers may not
// alias each other's datum.
func SimpleRecord() map[string]interface{} {
	return map[string]interface{}{
		"name":   "Alice Johnson",
		"age":    int32(30),
		"score":  95.5,
		"active": true,
	}
}

// ComplexRecord returns the fixed datum measured by the complex record
// scenario.
func ComplexRecord() map[string]interface{} {
	return map[string]interface{}{
		"id":     int64(12345),
		"name":   "Bob Smith",
		"email":  "bob.smith@example.com",
		"age":    int32(45),
		"salary": 85000.50,
		"active": true,
		"tags":   []interface{}{"engineer", "senior", "staff"},
		"metadata": map[string]interface{}{
			"dept":     "R&D",
			"level":    "5",
			"location": "NYC",
		},
	}
}

// TableRows generates n rows deterministically. Row i (1-based) has
// id=i, name="user_<i>", value=i*1.1, and active set on even i. The
// derivation is purely index-based, so the same n always yields the
// same rows.
func TableRows(n int) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, n)

	for i := 1; i <= n; i++ {
		rows = append(rows, map[string]interface{}{
			"id":     int32(i),
			"name":   fmt.Sprintf("user_%d", i),
			"value":  float64(i) * 1.1,
			"active": i%2 == 0,
		})
	}

	return rows
}
