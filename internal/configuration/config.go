package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	FilePath  = "configuration/configuration.yaml"
	EnvPrefix = "FRAMEWORKSCAN"
)

const (
	FormatTable = "table"
	FormatJson  = "json"
	FormatYaml  = "yaml"
)

type Config struct {
	Scan   ScanSettings   `yaml:"scan" mapstructure:"scan"`
	Output OutputSettings `yaml:"output" mapstructure:"output"`
}

type ScanSettings struct {
	SkipList []string `yaml:"skip_list" mapstructure:"skip_list"` // glob patterns relative to the workspace
}

type OutputSettings struct {
	Format          string `yaml:"format" mapstructure:"format"` // table, json or yaml
	ExportDirectory string `yaml:"export_directory" mapstructure:"export_directory"`
	Quiet           bool   `yaml:"quiet" mapstructure:"quiet"`
}

func Default() *Config {
	return &Config{
		Scan: ScanSettings{
			SkipList: []string{
				".git",
				"node_modules",
				"bin",
				"obj",
			},
		},
		Output: OutputSettings{
			Format:          FormatTable,
			ExportDirectory: "./export",
			Quiet:           false,
		},
	}
}

// Load reads configuration with the priority env > file > defaults. An empty
// path falls back to FilePath, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	for _, key := range []string{"scan.skip_list", "output.format", "output.export_directory", "output.quiet"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("configuration error: %w", err)
		}
	}

	configFile := path
	if configFile == "" {
		configFile = FilePath
	}

	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("configuration error: %w", err)
		}
	} else if path != "" || !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("scan.skip_list", defaults.Scan.SkipList)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.export_directory", defaults.Output.ExportDirectory)
	v.SetDefault("output.quiet", defaults.Output.Quiet)
}

func Validate(config *Config) error {
	var errs []error

	switch config.Output.Format {
	case FormatTable, FormatJson, FormatYaml:
	default:
		errs = append(errs, fmt.Errorf("output.format must be one of %s, %s or %s, got %q", FormatTable, FormatJson, FormatYaml, config.Output.Format))
	}

	if strings.TrimSpace(config.Output.ExportDirectory) == "" {
		errs = append(errs, fmt.Errorf("output.export_directory cannot be empty"))
	}

	return errors.Join(errs...)
}
