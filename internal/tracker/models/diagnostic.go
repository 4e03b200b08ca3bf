package trackermodels

type Severity string

const (
	Warning Severity = "warning"
	Error   Severity = "error"
)

type Diagnostic struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
	Solution string   `json:"solution,omitempty" yaml:"solution,omitempty"`
	Project  string   `json:"project,omitempty" yaml:"project,omitempty"`
}
