package tablewriterservice

import (
	"fmt"
	"io"
	"strings"

	"github.com/RobsonDevCode/frameworkscan/internal/constants/tableHeaders"
	"github.com/RobsonDevCode/frameworkscan/internal/extensions"
	trackermodels "github.com/RobsonDevCode/frameworkscan/internal/tracker/models"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const (
	maxLocationLength = 60
	maxMessageLength  = 200
	missingVersion    = "-"
)

func newTable(out io.Writer, maxWidth int) *tablewriter.Table {
	return tablewriter.NewTable(out,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On}},
		})),
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap:  tw.WrapNormal,
					MergeMode: tw.MergeHierarchical}, //solution name spans its project rows
				Alignment:    tw.CellAlignment{Global: tw.AlignLeft},
				ColMaxWidths: tw.CellWidth{Global: maxWidth},
			},
		}),
	)
}

func DisplayReportTable(out io.Writer, result *trackermodels.TrackerResult) error {
	if result == nil || len(result.Solutions) == 0 {
		fmt.Fprint(out, color.YellowString("\n No solution files found!\n"))
		return nil
	}

	fmt.Fprintf(out, "\n Framework Versions: \n")
	table := newTable(out, maxLocationLength)
	table.Header(tableHeaders.ReportTableHeaders)

	for _, row := range extensions.FlattenReport(result) {
		version := row.Version
		if row.Dependency != "" && version == "" {
			version = missingVersion
		}

		if err := table.Append([]string{
			row.Solution,
			row.Project,
			extensions.TruncateStringStart(row.ProjectLocation, maxLocationLength),
			row.Dependency,
			version,
		}); err != nil {
			return fmt.Errorf("error building report table: %w", err)
		}
	}

	return table.Render()
}

func DisplayDiagnosticsTable(out io.Writer, diagnostics []trackermodels.Diagnostic) error {
	if len(diagnostics) == 0 {
		return nil
	}

	fmt.Fprintf(out, "%s", color.RedString("\n Diagnostics: \n"))
	table := newTable(out, maxMessageLength)
	table.Header(tableHeaders.DiagnosticTableHeaders)

	for _, diagnostic := range diagnostics {
		if err := table.Append([]string{
			strings.ToUpper(string(diagnostic.Severity)),
			extensions.TruncateStringStart(diagnostic.Solution, maxLocationLength),
			diagnostic.Project,
			extensions.TruncateString(diagnostic.Message, maxMessageLength),
		}); err != nil {
			return fmt.Errorf("error building diagnostics table: %w", err)
		}
	}

	return table.Render()
}
