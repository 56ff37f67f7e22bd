package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/linkedin/goavro/v2"

	"github.com/weiihann/avrobench/harness"
	"github.com/weiihann/avrobench/workload"
)

// Sizes encodes six fixed (schema, value) pairs once each and reports
// the encoded byte lengths. No timing; purely a size measurement.
func Sizes(w io.Writer, res *harness.Results) error {
	pairs := []struct {
		label  string
		key    string
		schema string
		datum  interface{}
	}{
		{"Int32(42)", "size_int32", `"int"`, int32(42)},
		{"Int64(1000000)", "size_int64", `"long"`, int64(1_000_000)},
		{"Float64(3.14)", "size_float64", `"double"`, 3.14},
		{
			"String(100 chars)", "size_string_100",
			`"string"`, strings.Repeat("x", 100),
		},
		{
			"Simple Record", "size_simple_record",
			workload.SimpleSchema, workload.SimpleRecord(),
		},
		{
			"Complex Record", "size_complex_record",
			workload.ComplexSchema, workload.ComplexRecord(),
		},
	}

	fmt.Fprintln(w, "--- Serialization Sizes ---")

	for _, p := range pairs {
		codec, err := goavro.NewCodec(p.schema)
		if err != nil {
			return fmt.Errorf("parse schema for %s: %w", p.label, err)
		}

		buf, err := codec.BinaryFromNative(nil, p.datum)
		if err != nil {
			return fmt.Errorf("encode %s: %w", p.label, err)
		}

		fmt.Fprintf(w, "  %s => %d bytes\n", p.label, len(buf))
		res.Add(p.key, float64(len(buf)), harness.UnitBytes)
	}

	return nil
}
