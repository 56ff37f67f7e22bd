package scenario

import (
	"fmt"
	"io"

	"github.com/linkedin/goavro/v2"

	"github.com/weiihann/avrobench/harness"
	"github.com/weiihann/avrobench/workload"
)

// SimpleRecord measures binary encode and decode of the fixed simple
// record, reporting records/s for each direction.
func SimpleRecord(cfg Config, w io.Writer, res *harness.Results) error {
	fmt.Fprintln(w, "--- Simple Record Serialization (single record) ---")

	return benchRecord(
		w, res, "simple",
		workload.SimpleSchema, workload.SimpleRecord(), cfg.SimpleIters,
	)
}

// ComplexRecord measures binary encode and decode of the fixed complex
// record, which exercises nested array and map encoding.
func ComplexRecord(cfg Config, w io.Writer, res *harness.Results) error {
	fmt.Fprintln(w, "--- Complex Record Serialization ---")

	return benchRecord(
		w, res, "complex",
		workload.ComplexSchema, workload.ComplexRecord(), cfg.ComplexIters,
	)
}

func benchRecord(
	w io.Writer,
	res *harness.Results,
	prefix, schema string,
	datum map[string]interface{},
	iters int,
) error {
	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return fmt.Errorf("parse %s schema: %w", prefix, err)
	}

	writeOp := func() error {
		_, err := codec.BinaryFromNative(nil, datum)

		return err
	}

	elapsed, err := harness.Time(writeOp, harness.DefaultWarmup, iters)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", prefix, err)
	}

	writeRate := harness.Rate(iters, elapsed)
	fmt.Fprintf(w, "  Write: %d records in %.4fs (%.0f records/s)\n",
		iters, elapsed.Seconds(), writeRate)
	res.Add(prefix+"_write_rate", writeRate, harness.UnitRate)

	// Capture one encoding for the decode direction.
	encoded, err := codec.BinaryFromNative(nil, datum)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", prefix, err)
	}

	readOp := func() error {
		_, _, err := codec.NativeFromBinary(encoded)

		return err
	}

	elapsed, err = harness.Time(readOp, harness.DefaultWarmup, iters)
	if err != nil {
		return fmt.Errorf("decode %s record: %w", prefix, err)
	}

	readRate := harness.Rate(iters, elapsed)
	fmt.Fprintf(w, "  Read:  %d records in %.4fs (%.0f records/s)\n",
		iters, elapsed.Seconds(), readRate)
	res.Add(prefix+"_read_rate", readRate, harness.UnitRate)

	return nil
}
