package main

import (
	"os"

	"github.com/RobsonDevCode/frameworkscan/cmd"
	filefinderservice "github.com/RobsonDevCode/frameworkscan/internal/services/fileFinderService"
	projectreaderservice "github.com/RobsonDevCode/frameworkscan/internal/services/projectReaderService"
	scannerselectionservice "github.com/RobsonDevCode/frameworkscan/internal/services/scannerSelectionService"
	solutionreaderservice "github.com/RobsonDevCode/frameworkscan/internal/services/solutionReaderService"
)

func main() {
	fileFinder := filefinderservice.NewFileFinder()
	solutionReader := solutionreaderservice.NewSolutionReader()
	projectReader := projectreaderservice.NewProjectReader()
	scanSelection := scannerselectionservice.NewScanSelection(fileFinder, solutionReader, projectReader, os.Stdout, os.Stderr)

	// cant DI directly into the command so we use a setter
	cmd.SetScanSelection(scanSelection)
	cmd.Execute()
}
