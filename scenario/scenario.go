// Package scenario implements the individual benchmark scenarios. Each
// scenario prints human-readable measurement lines to an io.Writer and
// accumulates its rates and sizes into a shared harness.Results.
package scenario

import (
	"fmt"
	"io"
	"os"

	"github.com/linkedin/goavro/v2"

	"github.com/weiihann/avrobench/harness"
)

// SupportedCodecs lists the container-file compression codecs accepted
// by the compression scenario.
var SupportedCodecs = []string{
	goavro.CompressionNullLabel,
	goavro.CompressionDeflateLabel,
	goavro.CompressionSnappyLabel,
}

// Config holds the per-scenario iteration and row counts. Zero values
// are not defaulted; use DefaultConfig as the starting point.
type Config struct {
	SimpleIters  int
	ComplexIters int
	TableRows    []int
	Repeats      int
	CompressRows int
	Codecs       []string
	TempDir      string
}

// DefaultConfig returns the standard benchmark parameters. The
// iteration counts are high enough to amortize clock-call and buffer
// allocation overhead against the serialization work being measured;
// whole-file scenarios use few repetitions because each one writes or
// reads the entire file.
func DefaultConfig() Config {
	return Config{
		SimpleIters:  100_000,
		ComplexIters: 50_000,
		TableRows:    []int{1_000, 10_000, 100_000},
		Repeats:      5,
		CompressRows: 10_000,
		Codecs: []string{
			goavro.CompressionNullLabel,
			goavro.CompressionDeflateLabel,
		},
		TempDir: os.TempDir(),
	}
}

// Validate checks that every configured codec is supported and that
// the repetition count is usable. Averages divide by Repeats, so zero
// is rejected rather than defaulted.
func (c Config) Validate() error {
	if c.Repeats < 1 {
		return fmt.Errorf("repeats must be at least 1, got %d", c.Repeats)
	}

	for _, codec := range c.Codecs {
		if !codecSupported(codec) {
			return fmt.Errorf(
				"unsupported codec %q (supported: %v)",
				codec, SupportedCodecs,
			)
		}
	}

	return nil
}

func codecSupported(name string) bool {
	for _, c := range SupportedCodecs {
		if c == name {
			return true
		}
	}

	return false
}

// Scenario pairs a display name with the function that runs it.
type Scenario struct {
	Name string
	Run  func(w io.Writer, res *harness.Results) error
}

// List returns the five scenarios in their fixed execution order.
func List(cfg Config) []Scenario {
	return []Scenario{
		{
			Name: "simple-record",
			Run: func(w io.Writer, res *harness.Results) error {
				return SimpleRecord(cfg, w, res)
			},
		},
		{
			Name: "complex-record",
			Run: func(w io.Writer, res *harness.Results) error {
				return ComplexRecord(cfg, w, res)
			},
		},
		{
			Name: "table",
			Run: func(w io.Writer, res *harness.Results) error {
				return Table(cfg, w, res)
			},
		},
		{
			Name: "compression",
			Run: func(w io.Writer, res *harness.Results) error {
				return Compression(cfg, w, res)
			},
		},
		{
			Name: "sizes",
			Run: func(w io.Writer, res *harness.Results) error {
				return Sizes(w, res)
			},
		},
	}
}
