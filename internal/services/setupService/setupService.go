package setupservice

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RobsonDevCode/frameworkscan/internal/configuration"
	"gopkg.in/yaml.v3"
)

// CreateSetupFile writes the default configuration to filePath. An existing
// file is never overwritten.
func CreateSetupFile(filePath string, skipList []string) error {
	if filePath == "" {
		filePath = configuration.FilePath
	}

	if _, err := os.Stat(filePath); err == nil {
		return fmt.Errorf("configuration already exists at %s", filePath)
	}

	config := configuration.Default()
	if len(skipList) > 0 {
		config.Scan.SkipList = skipList
	}

	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error marshalling configuration, %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("error marshalling configuration, %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("error creating directory for %s, %w", filePath, err)
	}

	if err := os.WriteFile(filePath, buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing file at %s, %w", filePath, err)
	}

	return nil
}
