package cmd

import (
	"fmt"
	"os"

	scannerselectionservice "github.com/RobsonDevCode/frameworkscan/internal/services/scannerSelectionService"
	"github.com/spf13/cobra"
)

var cfgFile string

var scannerSelectionService scannerselectionservice.ScannerSelectionService

var rootCmd = &cobra.Command{
	Use:   "frameworkscan",
	Short: "report the .NET framework version of every project in a workspace",
	Long: `frameworkscan walks a workspace for solution files, follows every C# project
they reference and reports the TargetFrameworkVersion each project declares.`,
	SilenceUsage: true,
}

// SetScanSelection injects the scan service, cobra commands are package level
// so they cannot take constructor arguments.
func SetScanSelection(selection scannerselectionservice.ScannerSelectionService) {
	scannerSelectionService = selection
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is configuration/configuration.yaml)")
}
