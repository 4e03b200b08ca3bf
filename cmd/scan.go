package cmd

import (
	"fmt"
	"os"

	"github.com/RobsonDevCode/frameworkscan/internal/configuration"
	scannerselectionservice "github.com/RobsonDevCode/frameworkscan/internal/services/scannerSelectionService"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [workspace]",
	Short: "scan a workspace for solution files and report project framework versions",
	Long: `scan a workspace for solution files and report project framework versions.

		   If no workspace is provided, the current directory is scanned.
           Missing or unreadable project files are reported as diagnostics and never stop the scan.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

const (
	SkipFlag   = "skip"
	FormatFlag = "format"
	OutputFlag = "output"
	ExportFlag = "export"
	QuietFlag  = "quiet"
)

func runScan(cmd *cobra.Command, args []string) error {
	if scannerSelectionService == nil {
		return fmt.Errorf("scan service has not been configured")
	}

	config, err := configuration.Load(cfgFile)
	if err != nil {
		return err
	}

	options, err := scanOptions(cmd, args, config)
	if err != nil {
		return err
	}

	_, err = scannerSelectionService.Scan(options)
	return err
}

// scanOptions merges command line flags over the loaded configuration.
func scanOptions(cmd *cobra.Command, args []string, config *configuration.Config) (scannerselectionservice.ScanOptions, error) {
	workspace := "."
	if len(args) == 1 {
		workspace = args[0]
	}

	skipList, _ := cmd.Flags().GetStringSlice(SkipFlag)
	outputPath, _ := cmd.Flags().GetString(OutputFlag)
	export, _ := cmd.Flags().GetBool(ExportFlag)
	quiet, _ := cmd.Flags().GetBool(QuietFlag)

	format := config.Output.Format
	if cmd.Flags().Changed(FormatFlag) {
		format, _ = cmd.Flags().GetString(FormatFlag)
		config.Output.Format = format
		if err := configuration.Validate(config); err != nil {
			return scannerselectionservice.ScanOptions{}, err
		}
	}

	return scannerselectionservice.ScanOptions{
		Workspace:       workspace,
		SkipList:        append(append([]string{}, config.Scan.SkipList...), skipList...),
		Format:          format,
		OutputPath:      outputPath,
		ExportDirectory: config.Output.ExportDirectory,
		Export:          export,
		Interactive:     isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()),
		Quiet:           quiet || config.Output.Quiet,
	}, nil
}

func init() {
	scanCmd.Flags().StringSliceP(SkipFlag, "s", nil, "Glob of a directory or solution to skip, relative to the workspace (repeatable)")
	scanCmd.Flags().StringP(FormatFlag, "f", configuration.FormatTable, "Report format: table, json or yaml")
	scanCmd.Flags().StringP(OutputFlag, "o", "", "Write the json or yaml report to this file instead of stdout")
	scanCmd.Flags().BoolP(ExportFlag, "e", false, "Export the report to Excel without asking")
	scanCmd.Flags().BoolP(QuietFlag, "q", false, "Hide progress and live diagnostics")

	rootCmd.AddCommand(scanCmd)
}
