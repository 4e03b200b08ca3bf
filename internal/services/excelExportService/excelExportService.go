package excelexportservice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/RobsonDevCode/frameworkscan/internal/constants/exportExcelOptions"
	"github.com/RobsonDevCode/frameworkscan/internal/constants/tableHeaders"
	"github.com/RobsonDevCode/frameworkscan/internal/extensions"
	trackermodels "github.com/RobsonDevCode/frameworkscan/internal/tracker/models"
	"github.com/xuri/excelize/v2"
)

const (
	ReportSheetName      = "Framework Versions"
	DiagnosticsSheetName = "Diagnostics"
)

// ExportReport writes the report to a timestamped xlsx file in saveFileTo and
// returns the path of the file.
func ExportReport(result *trackermodels.TrackerResult, saveFileTo string) (string, error) {
	if err := os.MkdirAll(saveFileTo, 0755); err != nil {
		return "", fmt.Errorf("error creating directory %s, %w", saveFileTo, err)
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", ReportSheetName); err != nil {
		return "", fmt.Errorf("error naming sheet %s, %w", ReportSheetName, err)
	}

	if err := writeReportSheet(file, result); err != nil {
		return "", err
	}

	if len(result.Diagnostics) > 0 {
		if err := writeDiagnosticsSheet(file, result.Diagnostics); err != nil {
			return "", err
		}
	}

	fileName := fmt.Sprintf("framework_versions_%s.xlsx", time.Now().Format("2006-01-02T15-04-05"))
	fullPath := filepath.Join(saveFileTo, fileName)

	if err := file.SaveAs(fullPath); err != nil {
		return "", fmt.Errorf("failed to save excel to %s, %w", fullPath, err)
	}

	return fullPath, nil
}

func writeReportSheet(file *excelize.File, result *trackermodels.TrackerResult) error {
	if err := writeHeaders(file, ReportSheetName, tableHeaders.ReportTableHeaders); err != nil {
		return err
	}

	for i, row := range extensions.FlattenReport(result) {
		rowData := []interface{}{
			row.Solution,
			row.Project,
			row.ProjectLocation,
			row.Dependency,
			row.Version,
		}

		// excel is 1 indexed and the first row holds the headers
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(ReportSheetName, cell, &rowData); err != nil {
			return fmt.Errorf("error writing row %s, %w", cell, err)
		}
	}

	return nil
}

func writeDiagnosticsSheet(file *excelize.File, diagnostics []trackermodels.Diagnostic) error {
	if _, err := file.NewSheet(DiagnosticsSheetName); err != nil {
		return fmt.Errorf("error creating sheet %s, %w", DiagnosticsSheetName, err)
	}

	if err := writeHeaders(file, DiagnosticsSheetName, tableHeaders.DiagnosticTableHeaders); err != nil {
		return err
	}

	for i, diagnostic := range diagnostics {
		rowData := []interface{}{
			strings.ToUpper(string(diagnostic.Severity)),
			diagnostic.Solution,
			diagnostic.Project,
			diagnostic.Message,
		}

		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(DiagnosticsSheetName, cell, &rowData); err != nil {
			return fmt.Errorf("error writing row %s, %w", cell, err)
		}
	}

	return nil
}

func writeHeaders(file *excelize.File, sheet string, headers []string) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("error resolving header cell, %w", err)
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("error writing header %s, %w", header, err)
		}
	}
	return nil
}

func SelectExportReportToExcel() (string, error) {
	prompt := &survey.Select{
		Message: "Export Framework Report",
		Options: exportExcelOptions.ExcelOptions,
	}

	var selectedIndex int
	err := survey.AskOne(prompt, &selectedIndex)
	if err != nil {
		fmt.Print("selection cancelled")
		return "", fmt.Errorf("selection error: %w", err)
	}

	return exportExcelOptions.ExcelOptions[selectedIndex], nil
}
