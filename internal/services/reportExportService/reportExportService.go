package reportexportservice

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/RobsonDevCode/frameworkscan/internal/configuration"
	trackermodels "github.com/RobsonDevCode/frameworkscan/internal/tracker/models"
	"gopkg.in/yaml.v3"
)

func WriteReport(out io.Writer, result *trackermodels.TrackerResult, format string) error {
	switch format {
	case configuration.FormatJson:
		return WriteJson(out, result)
	case configuration.FormatYaml:
		return WriteYaml(out, result)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

func WriteJson(out io.Writer, result *trackermodels.TrackerResult) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("error marshalling report to json, %w", err)
	}
	return nil
}

func WriteYaml(out io.Writer, result *trackermodels.TrackerResult) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("error marshalling report to yaml, %w", err)
	}
	return encoder.Close()
}
