package fastfact

import "fmt"

// TraceStep records the outcome of one extraction strategy. The extraction
// engine tries ordered lists of strategies ("first success wins"); the trace
// makes visible which tier matched without resorting to ambient debug
// output.
type TraceStep struct {
	// Stage names the pipeline stage, e.g. "identifier" or "boundary".
	Stage string

	// Strategy names the strategy within the stage, e.g. "filename".
	Strategy string

	// Matched reports whether the strategy produced a result.
	Matched bool

	// Detail carries strategy-specific context, such as the matched value
	// or offset.
	Detail string
}

// Trace is the ordered list of strategy outcomes for one extraction.
type Trace struct {
	Steps []TraceStep
}

// Add appends a step to the trace. A nil trace ignores the call, so
// callers that don't need diagnostics can pass nil throughout.
func (t *Trace) Add(stage, strategy string, matched bool, format string, args ...any) {
	if t == nil {
		return
	}
	t.Steps = append(t.Steps, TraceStep{
		Stage:    stage,
		Strategy: strategy,
		Matched:  matched,
		Detail:   fmt.Sprintf(format, args...),
	})
}

// Matched returns the strategy name that matched for a stage, or "".
func (t *Trace) Matched(stage string) string {
	if t == nil {
		return ""
	}
	for _, s := range t.Steps {
		if s.Stage == stage && s.Matched {
			return s.Strategy
		}
	}
	return ""
}
