package scannerselectionservice

import (
	"fmt"
	"io"
	"os"

	consolewriter "github.com/RobsonDevCode/frameworkscan/internal/cmdLineWriters/consoleWriter"
	tablewriterservice "github.com/RobsonDevCode/frameworkscan/internal/cmdLineWriters/tablewriter"
	"github.com/RobsonDevCode/frameworkscan/internal/configuration"
	"github.com/RobsonDevCode/frameworkscan/internal/constants/exportExcelOptions"
	excelexportservice "github.com/RobsonDevCode/frameworkscan/internal/services/excelExportService"
	filefinderservice "github.com/RobsonDevCode/frameworkscan/internal/services/fileFinderService"
	projectreaderservice "github.com/RobsonDevCode/frameworkscan/internal/services/projectReaderService"
	reportexportservice "github.com/RobsonDevCode/frameworkscan/internal/services/reportExportService"
	solutionreaderservice "github.com/RobsonDevCode/frameworkscan/internal/services/solutionReaderService"
	"github.com/RobsonDevCode/frameworkscan/internal/tracker"
	trackermodels "github.com/RobsonDevCode/frameworkscan/internal/tracker/models"
	"github.com/fatih/color"
)

type ScanOptions struct {
	Workspace       string
	SkipList        []string
	Format          string
	OutputPath      string
	ExportDirectory string
	Export          bool
	Interactive     bool
	Quiet           bool
}

type ScannerSelectionService interface {
	Scan(options ScanOptions) (*trackermodels.TrackerResult, error)
}

type ScanSelection struct {
	fileFinder     filefinderservice.FileFinderService
	solutionReader solutionreaderservice.SolutionReaderService
	projectReader  projectreaderservice.ProjectReaderService
	out            io.Writer
	errOut         io.Writer
	selectExport   func() (string, error)
}

func NewScanSelection(fileFinder filefinderservice.FileFinderService,
	solutionReader solutionreaderservice.SolutionReaderService,
	projectReader projectreaderservice.ProjectReaderService,
	out io.Writer,
	errOut io.Writer) *ScanSelection {
	return &ScanSelection{
		fileFinder:     fileFinder,
		solutionReader: solutionReader,
		projectReader:  projectReader,
		out:            out,
		errOut:         errOut,
		selectExport:   excelexportservice.SelectExportReportToExcel,
	}
}

// Scan runs the framework tracker over the workspace and renders the report.
// Diagnostics never fail the scan; only rendering and exporting can.
func (s *ScanSelection) Scan(options ScanOptions) (*trackermodels.TrackerResult, error) {
	var sink tracker.DiagnosticSink
	if !options.Quiet {
		sink = consolewriter.NewConsoleSink(s.errOut)
	}
	progress := consolewriter.NewProgressReporter(s.errOut, options.Quiet)

	frameworkTracker := tracker.NewFrameworkVersionTracker(s.fileFinder, s.solutionReader, s.projectReader, sink, progress)
	result := frameworkTracker.Run(options.Workspace, options.SkipList)

	if err := s.render(result, options); err != nil {
		return result, err
	}

	if err := s.export(result, options); err != nil {
		return result, err
	}

	return result, nil
}

func (s *ScanSelection) render(result *trackermodels.TrackerResult, options ScanOptions) error {
	if options.Format == configuration.FormatTable || options.Format == "" {
		if err := tablewriterservice.DisplayReportTable(s.out, result); err != nil {
			return err
		}
		return tablewriterservice.DisplayDiagnosticsTable(s.out, result.Diagnostics)
	}

	if options.OutputPath == "" {
		return reportexportservice.WriteReport(s.out, result, options.Format)
	}

	file, err := os.Create(options.OutputPath)
	if err != nil {
		return fmt.Errorf("error creating report file %s, %w", options.OutputPath, err)
	}
	defer file.Close()

	if err := reportexportservice.WriteReport(file, result, options.Format); err != nil {
		return err
	}

	fmt.Fprintf(s.errOut, "\n Report saved to: %s\n", options.OutputPath)
	return nil
}

func (s *ScanSelection) export(result *trackermodels.TrackerResult, options ScanOptions) error {
	if !options.Export {
		if !s.shouldPrompt(result, options) {
			return nil
		}

		choice, err := s.selectExport()
		if err != nil {
			return err
		}
		if choice != exportExcelOptions.Yes {
			return nil
		}
	}

	path, err := excelexportservice.ExportReport(result, options.ExportDirectory)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.errOut, "%s\n", color.GreenString("\n Your file has been saved to: %s", path))
	return nil
}

func (s *ScanSelection) shouldPrompt(result *trackermodels.TrackerResult, options ScanOptions) bool {
	isTable := options.Format == configuration.FormatTable || options.Format == ""
	return isTable && options.Interactive && !options.Quiet && len(result.Solutions) > 0
}
