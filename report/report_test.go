package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/weiihann/avrobench/harness"
)

func sampleResults() *harness.Results {
	res := harness.NewResults()
	res.Add("simple_write_rate", 81234.5, harness.UnitRate)
	res.Add("simple_read_rate", 1_250_000, harness.UnitRate)
	res.Add("table_write_1000", 950, harness.UnitRate)
	res.Add("compress_write_ms_deflate", 12.34, harness.UnitMillis)
	res.Add("compress_size_bytes_null", 150*1024, harness.UnitBytes)
	res.Add("size_int32", 1, harness.UnitBytes)

	return res
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, sampleResults()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	checks := []string{
		"## Benchmark Results",
		"| simple_write_rate | 81.2K/s |",
		"| simple_read_rate | 1.25M/s |",
		"| table_write_1000 | 950/s |",
		"| compress_write_ms_deflate | 12.34ms |",
		"| compress_size_bytes_null | 150 KB |",
		"| size_int32 | 1 B |",
	}
	for _, want := range checks {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\ngot:\n%s", want, output)
		}
	}
}

func TestGenerateRendersByUnit(t *testing.T) {
	// The declared unit decides rendering, not the label's spelling: a
	// rate whose label happens to contain "_ms" still prints as a rate.
	res := harness.NewResults()
	res.Add("flush_ms_batch_rate", 500, harness.UnitRate)
	res.Add("warmup_rate_cost", 12.5, harness.UnitMillis)

	var buf bytes.Buffer
	if err := Generate(&buf, res); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "| flush_ms_batch_rate | 500/s |") {
		t.Errorf("rate entry not rendered as rate:\n%s", output)
	}
	if !strings.Contains(output, "| warmup_rate_cost | 12.50ms |") {
		t.Errorf("millisecond entry not rendered as ms:\n%s", output)
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, harness.NewResults()); err == nil {
		t.Error("expected error for empty results")
	}
}

func TestGenerateJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateJSON(&buf, sampleResults()); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	var parsed []harness.Entry
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(parsed) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(parsed))
	}
	if parsed[0].Label != "simple_write_rate" {
		t.Errorf("first label = %q, want simple_write_rate",
			parsed[0].Label)
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{999, "999/s"},
		{1000, "1.0K/s"},
		{81234.5, "81.2K/s"},
		{1_250_000, "1.25M/s"},
	}

	for _, tt := range tests {
		got := formatRate(tt.input)
		if got != tt.want {
			t.Errorf("formatRate(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatMs(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0.00ms"},
		{12.34, "12.34ms"},
		{999.99, "999.99ms"},
		{1000, "1.00s"},
		{1500, "1.50s"},
	}

	for _, tt := range tests {
		got := formatMs(tt.input)
		if got != tt.want {
			t.Errorf("formatMs(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input uint64
		want  string
	}{
		{0, "-"},
		{512, "512 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{1073741824, "1 GB"},
	}

	for _, tt := range tests {
		got := formatBytes(tt.input)
		if got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
