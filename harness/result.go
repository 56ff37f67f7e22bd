package harness

// Unit identifies how an Entry's value should be rendered.
type Unit string

// Units produced by the scenarios.
const (
	UnitRate   Unit = "per_second"
	UnitMillis Unit = "ms"
	UnitBytes  Unit = "bytes"
)

// Entry is a single labeled measurement. Unit says whether Value is a
// rate in operations per second, a duration in milliseconds, or a size
// in bytes.
type Entry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// Results accumulates measurements in insertion order. Scenarios run
// sequentially on a single goroutine, so no locking is needed.
type Results struct {
	entries []Entry
	index   map[string]int
}

// NewResults returns an empty accumulator.
func NewResults() *Results {
	return &Results{index: make(map[string]int)}
}

// Add records value under label. Adding an existing label overwrites
// its value and unit in place without changing its position.
func (r *Results) Add(label string, value float64, unit Unit) {
	if i, ok := r.index[label]; ok {
		r.entries[i].Value = value
		r.entries[i].Unit = unit

		return
	}

	r.index[label] = len(r.entries)
	r.entries = append(r.entries, Entry{
		Label: label, Value: value, Unit: unit,
	})
}

// Get returns the value recorded under label.
func (r *Results) Get(label string) (float64, bool) {
	i, ok := r.index[label]
	if !ok {
		return 0, false
	}

	return r.entries[i].Value, true
}

// Entries returns all measurements in insertion order.
func (r *Results) Entries() []Entry {
	return r.entries
}

// Len returns the number of recorded measurements.
func (r *Results) Len() int {
	return len(r.entries)
}
