package tracker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	cache "github.com/RobsonDevCode/frameworkscan/internal/caching"
	filefinderservice "github.com/RobsonDevCode/frameworkscan/internal/services/fileFinderService"
	projectreaderservice "github.com/RobsonDevCode/frameworkscan/internal/services/projectReaderService"
	solutionreaderservice "github.com/RobsonDevCode/frameworkscan/internal/services/solutionReaderService"
	trackermodels "github.com/RobsonDevCode/frameworkscan/internal/tracker/models"
)

const (
	SolutionExtension   = ".sln"
	FrameworkDependency = ".NetFramework"
)

type FrameworkVersionTracker struct {
	fileFinder     filefinderservice.FileFinderService
	solutionReader solutionreaderservice.SolutionReaderService
	projectReader  projectreaderservice.ProjectReaderService
	sink           DiagnosticSink
	progress       ProgressReporter
}

// NewFrameworkVersionTracker builds a tracker. sink and progress may be nil.
func NewFrameworkVersionTracker(fileFinder filefinderservice.FileFinderService,
	solutionReader solutionreaderservice.SolutionReaderService,
	projectReader projectreaderservice.ProjectReaderService,
	sink DiagnosticSink,
	progress ProgressReporter) *FrameworkVersionTracker {
	if sink == nil {
		sink = noopSink{}
	}
	if progress == nil {
		progress = noopProgress{}
	}

	return &FrameworkVersionTracker{
		fileFinder:     fileFinder,
		solutionReader: solutionReader,
		projectReader:  projectReader,
		sink:           sink,
		progress:       progress,
	}
}

func (t *FrameworkVersionTracker) Name() string {
	return "FrameworkVersionTracker"
}

func (t *FrameworkVersionTracker) Description() string {
	return "Tracks target framework version for each project"
}

// Run never fails: problems with a single solution or project are recorded as
// diagnostics on the result and the scan moves on.
func (t *FrameworkVersionTracker) Run(workspace string, skipList []string) *trackermodels.TrackerResult {
	scan := &scanRun{
		tracker:  t,
		result:   trackermodels.NewTrackerResult(),
		projects: cache.NewCache[*string](),
	}

	solutionFiles, err := t.fileFinder.FindFiles(workspace, SolutionExtension, skipList)
	if err != nil {
		scan.fail(fmt.Errorf("error finding solution files in %s: %w", workspace, err), "", "")
		t.progress.OnScanComplete(scan.result)
		return scan.result
	}

	t.progress.OnScanStart(len(solutionFiles))
	for _, solutionFile := range solutionFiles {
		solution := scan.scanSolution(solutionFile)
		t.progress.OnSolutionScanned(solution)
	}
	t.progress.OnScanComplete(scan.result)

	return scan.result
}

// scanRun holds the state of one Run call.
type scanRun struct {
	tracker  *FrameworkVersionTracker
	result   *trackermodels.TrackerResult
	projects *cache.Cache[*string]
}

func (s *scanRun) scanSolution(solutionFile string) *trackermodels.Solution {
	solution := &trackermodels.Solution{
		Name:     fileStem(solutionFile),
		Location: solutionFile,
		Projects: []*trackermodels.Project{},
	}
	s.result.Solutions = append(s.result.Solutions, solution)

	err := contain(func() error {
		references, err := s.tracker.solutionReader.ReadSolution(solutionFile)
		if err != nil {
			return err
		}

		for _, reference := range references {
			s.scanProject(solution, reference.Path)
		}
		return nil
	})
	if err != nil {
		s.fail(err, solutionFile, "")
	}

	return solution
}

func (s *scanRun) scanProject(solution *trackermodels.Solution, location string) {
	project := &trackermodels.Project{
		Name:         fileStem(location),
		Location:     location,
		Dependencies: []trackermodels.Dependency{},
	}
	solution.Projects = append(solution.Projects, project)

	err := contain(func() error {
		projectFile, err := resolveProjectPath(solution.Location, location)
		if err != nil {
			return err
		}

		exists, err := fileExists(projectFile)
		if err != nil {
			return err
		}
		if !exists {
			s.warn(fmt.Sprintf("Missing file: %s", projectFile), solution.Location, location)
			return nil
		}

		version, err := s.projects.GetOrCreate(projectFile, func() (*string, error) {
			return s.tracker.projectReader.ReadFrameworkVersion(projectFile)
		})
		if err != nil {
			return err
		}

		project.Dependencies = append(project.Dependencies, trackermodels.Dependency{
			Name:     FrameworkDependency,
			Version:  copyVersion(version),
			Location: "",
		})
		return nil
	})
	if err != nil {
		s.fail(err, solution.Location, location)
	}
}

func (s *scanRun) warn(message string, solution string, project string) {
	s.result.Diagnostics = append(s.result.Diagnostics, trackermodels.Diagnostic{
		Severity: trackermodels.Warning,
		Message:  message,
		Solution: solution,
		Project:  project,
	})
	s.tracker.sink.Warn(message)
}

func (s *scanRun) fail(err error, solution string, project string) {
	s.result.Diagnostics = append(s.result.Diagnostics, trackermodels.Diagnostic{
		Severity: trackermodels.Error,
		Message:  err.Error(),
		Solution: solution,
		Project:  project,
	})
	s.tracker.sink.Error(err.Error())
}

// contain runs fn and turns a panic into an error so one bad file cannot
// abort the scan.
func contain(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	return fn()
}

// resolveProjectPath resolves a project path as written in a solution file.
// Relative paths are relative to the directory holding the solution.
func resolveProjectPath(solutionFile string, location string) (string, error) {
	location = normalizeSeparators(location)
	if location == "" {
		return "", fmt.Errorf("empty project path in %s", solutionFile)
	}

	if !filepath.IsAbs(location) {
		return filepath.Join(filepath.Dir(solutionFile), location), nil
	}

	projectFile, err := filepath.Abs(location)
	if err != nil {
		return "", fmt.Errorf("error resolving project path %s: %w", location, err)
	}
	return projectFile, nil
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking project file %s: %w", path, err)
	}

	return !info.IsDir(), nil
}

// fileStem returns the file name without its extension. Solution files written
// on Windows use backslashes, so both separators are honoured.
func fileStem(path string) string {
	name := filepath.Base(normalizeSeparators(path))
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func normalizeSeparators(path string) string {
	if filepath.Separator == '\\' {
		return path
	}
	return strings.ReplaceAll(path, `\`, string(filepath.Separator))
}

// copyVersion gives each Dependency its own value so that reports built from a
// cached read do not share state.
func copyVersion(version *string) *string {
	if version == nil {
		return nil
	}

	v := *version
	return &v
}
