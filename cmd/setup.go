package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/RobsonDevCode/frameworkscan/internal/configuration"
	setupservice "github.com/RobsonDevCode/frameworkscan/internal/services/setupService"
	"github.com/spf13/cobra"
)

var setUpCmd = &cobra.Command{
	Use:   "setup",
	Short: "create a configuration file with the default scan settings",
	Long: `setup writes the default configuration so scans can be tuned without flags.
		   An existing configuration file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runSetUp,
}

const PathFlag = "path"

func runSetUp(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString(PathFlag)
	skipList, _ := cmd.Flags().GetStringSlice(SkipFlag)

	fmt.Print("\n Setting up scanner...")

	if err := setupservice.CreateSetupFile(path, skipList); err != nil {
		return err
	}

	fmt.Print(color.GreenString("\n Configuration written to %s, run the scan command to scan a workspace!\n", path))
	return nil
}

func init() {
	setUpCmd.Flags().StringP(PathFlag, "p", configuration.FilePath, "Where to write the configuration file.")
	setUpCmd.Flags().StringSliceP(SkipFlag, "s", nil, "Skip list to store instead of the default one.")

	rootCmd.AddCommand(setUpCmd)
}
