package trackermodels

// TrackerResult is the report produced by a single tracker run.
type TrackerResult struct {
	Solutions   []*Solution  `json:"solutions" yaml:"solutions"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

func NewTrackerResult() *TrackerResult {
	return &TrackerResult{
		Solutions: []*Solution{},
	}
}

func (r *TrackerResult) Warnings() []Diagnostic {
	return r.filter(Warning)
}

func (r *TrackerResult) Errors() []Diagnostic {
	return r.filter(Error)
}

func (r *TrackerResult) filter(severity Severity) []Diagnostic {
	var result []Diagnostic
	for _, diagnostic := range r.Diagnostics {
		if diagnostic.Severity == severity {
			result = append(result, diagnostic)
		}
	}
	return result
}
