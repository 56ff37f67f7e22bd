// Package report formats accumulated benchmark measurements into a
// summary table or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/weiihann/avrobench/harness"
)

// Generate writes a markdown summary table for the given results.
func Generate(w io.Writer, results *harness.Results) error {
	if results.Len() == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Measurement | Value |")
	fmt.Fprintln(w, "|-------------|-------|")

	for _, e := range results.Entries() {
		fmt.Fprintf(w, "| %s | %s |\n", e.Label, formatValue(e))
	}

	return nil
}

// GenerateJSON writes results as an indented JSON array to w.
func GenerateJSON(w io.Writer, results *harness.Results) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results.Entries())
}

// formatValue renders an entry according to its declared unit.
func formatValue(e harness.Entry) string {
	switch e.Unit {
	case harness.UnitMillis:
		return formatMs(e.Value)
	case harness.UnitRate:
		return formatRate(e.Value)
	default:
		return formatBytes(uint64(e.Value))
	}
}

func formatRate(perSec float64) string {
	if perSec >= 1_000_000 {
		return fmt.Sprintf("%.2fM/s", perSec/1_000_000)
	}
	if perSec >= 1_000 {
		return fmt.Sprintf("%.1fK/s", perSec/1_000)
	}

	return fmt.Sprintf("%.0f/s", perSec)
}

func formatMs(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.2fms", ms)
	}

	return fmt.Sprintf("%.2fs", ms/1000)
}

func formatBytes(b uint64) string {
	if b == 0 {
		return "-"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(b)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	formatted := fmt.Sprintf("%.1f", size)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")

	return formatted + " " + units[unit]
}
