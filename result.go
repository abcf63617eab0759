package emailverify

// Result is the full outcome of a verification.
// Valid is true only if the address is structurally sound and no check
// definitively failed. Checks that errored count as passes; they are
// listed with FailedOpen set.
type Result struct {
	ID      string        `json:"id"`
	Address string        `json:"address"`
	Valid   bool          `json:"valid"`
	Reason  string        `json:"reason,omitempty"`
	Checks  []CheckResult `json:"checks"`

	// Err is the structural failure when Reason is set.
	Err error `json:"-"`
}

// FailedChecks returns those CheckResults that did not pass.
func (r Result) FailedChecks() []CheckResult {
	var out []CheckResult
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// FailedOpenChecks returns the checks whose pass was substituted after an
// error or timeout. A non-empty list means the verdict is weaker than usual.
func (r Result) FailedOpenChecks() []CheckResult {
	var out []CheckResult
	for _, c := range r.Checks {
		if c.FailedOpen {
			out = append(out, c)
		}
	}
	return out
}

// CheckFor returns the CheckResult for the given level, if it exists.
// The second return value indicates whether the given level was executed.
func (r Result) CheckFor(level CheckLevel) (CheckResult, bool) {
	for _, c := range r.Checks {
		if c.Level == level {
			return c, true
		}
	}
	return CheckResult{}, false
}
