package scenario

import (
	"bytes"
	"testing"

	"github.com/linkedin/goavro/v2"
	"github.com/stretchr/testify/require"

	"github.com/weiihann/avrobench/harness"
	"github.com/weiihann/avrobench/workload"
)

func TestSimpleRecordRoundTrip(t *testing.T) {
	codec, err := goavro.NewCodec(workload.SimpleSchema)
	require.NoError(t, err)

	datum := workload.SimpleRecord()

	encoded, err := codec.BinaryFromNative(nil, datum)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	decoded, rest, err := codec.NativeFromBinary(encoded)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, datum, decoded)
}

func TestComplexRecordRoundTrip(t *testing.T) {
	codec, err := goavro.NewCodec(workload.ComplexSchema)
	require.NoError(t, err)

	datum := workload.ComplexRecord()

	encoded, err := codec.BinaryFromNative(nil, datum)
	require.NoError(t, err)

	decoded, rest, err := codec.NativeFromBinary(encoded)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, datum, decoded)
}

func TestSimpleRecordScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SimpleIters = 10

	var buf bytes.Buffer
	res := harness.NewResults()

	require.NoError(t, SimpleRecord(cfg, &buf, res))

	writeRate, ok := res.Get("simple_write_rate")
	require.True(t, ok)
	require.Greater(t, writeRate, 0.0)

	readRate, ok := res.Get("simple_read_rate")
	require.True(t, ok)
	require.Greater(t, readRate, 0.0)

	out := buf.String()
	require.Contains(t, out, "Write: 10 records")
	require.Contains(t, out, "Read:  10 records")
}

func TestComplexRecordScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ComplexIters = 10

	var buf bytes.Buffer
	res := harness.NewResults()

	require.NoError(t, ComplexRecord(cfg, &buf, res))

	for _, label := range []string{"complex_write_rate", "complex_read_rate"} {
		rate, ok := res.Get(label)
		require.True(t, ok, label)
		require.Greater(t, rate, 0.0, label)
	}
}
