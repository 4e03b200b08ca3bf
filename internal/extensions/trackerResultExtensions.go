package extensions

import (
	trackermodels "github.com/RobsonDevCode/frameworkscan/internal/tracker/models"
)

// ReportRow is one line of the flattened report: a solution, one of its
// projects and one dependency of that project. Solutions without projects and
// projects without dependencies still get a row with the missing parts empty.
type ReportRow struct {
	Solution        string
	SolutionPath    string
	Project         string
	ProjectLocation string
	Dependency      string
	Version         string
}

func FlattenReport(result *trackermodels.TrackerResult) []ReportRow {
	rows := []ReportRow{}
	if result == nil {
		return rows
	}

	for _, solution := range result.Solutions {
		if len(solution.Projects) == 0 {
			rows = append(rows, ReportRow{Solution: solution.Name, SolutionPath: solution.Location})
			continue
		}

		for _, project := range solution.Projects {
			row := ReportRow{
				Solution:        solution.Name,
				SolutionPath:    solution.Location,
				Project:         project.Name,
				ProjectLocation: project.Location,
			}

			if len(project.Dependencies) == 0 {
				rows = append(rows, row)
				continue
			}

			for _, dependency := range project.Dependencies {
				row.Dependency = dependency.Name
				row.Version = dependency.VersionOrEmpty()
				rows = append(rows, row)
			}
		}
	}

	return rows
}

func CountProjects(result *trackermodels.TrackerResult) int {
	count := 0
	for _, solution := range result.Solutions {
		count += len(solution.Projects)
	}
	return count
}
