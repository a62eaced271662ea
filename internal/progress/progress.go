// Package progress defines the contract between a download source and the
// indicator UI. The widget itself never downloads anything; a source feeds
// fractional progress through a Reporter and finishes with exactly one
// Result carrying the outcome to visualize.
package progress

// Outcome is the terminal result a source reports for its download.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
	OutcomeUnknown
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Update conveys in-flight download progress.
// Percent is 0..1 when known; set a negative value (e.g. -1) to mean unknown.
type Update struct {
	Percent float64 // 0..1, or <0 if unknown
	Bytes   int64   // cumulative bytes, 0 if not meaningful
	Total   int64   // expected total bytes, <=0 if unknown
	Speed   string  // optional, e.g. "2.5 MB/s"
	Message string  // short human-friendly status line
}

// Result is emitted exactly once per download when it finishes.
type Result struct {
	Outcome Outcome
	Bytes   int64
	Err     error // nil unless the outcome is a failure
}

// Reporter is implemented by the UI or any observer interested in progress
// events. Update may be called many times; Result exactly once.
type Reporter interface {
	Update(u Update)
	Result(r Result)
}

// Nop is a Reporter that discards everything, for tests and silent mode.
type Nop struct{}

func (Nop) Update(Update) {}
func (Nop) Result(Result) {}
