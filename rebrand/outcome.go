package rebrand

// Outcome is what happened to one target of a run.
type Outcome int

const (
	Applied Outcome = iota
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Skip reasons.
const (
	ReasonAbsent    = "absent"
	ReasonNoAnswers = "no answers"
	ReasonInPlace   = "in place"
)

// Result reports the outcome for one substitution target.
type Result struct {
	Target  string // slash-separated, relative to the project root
	Outcome Outcome
	Reason  string // set when Skipped
	Changed bool   // bytes on disk differ from before the run
	Err     error  // set when Failed
}

func failed(r Result, err error) Result {
	r.Outcome = Failed
	r.Err = err
	return r
}
