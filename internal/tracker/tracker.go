package tracker

import (
	trackermodels "github.com/RobsonDevCode/frameworkscan/internal/tracker/models"
)

type Tracker interface {
	Name() string
	Description() string
	Run(workspace string, skipList []string) *trackermodels.TrackerResult
}

// DiagnosticSink receives diagnostics as they are recorded on the report.
type DiagnosticSink interface {
	Warn(message string)
	Error(message string)
}

type ProgressReporter interface {
	OnScanStart(solutionCount int)
	OnSolutionScanned(solution *trackermodels.Solution)
	OnScanComplete(result *trackermodels.TrackerResult)
}

type noopSink struct{}

func (noopSink) Warn(string)  {}
func (noopSink) Error(string) {}

type noopProgress struct{}

func (noopProgress) OnScanStart(int)                             {}
func (noopProgress) OnSolutionScanned(*trackermodels.Solution)   {}
func (noopProgress) OnScanComplete(*trackermodels.TrackerResult) {}
