package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

const FileName = "config.yaml"

// Config is read from config.yaml in the app directory.
type Config struct {
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	// LogFile receives TUI logs. Logs are discarded when empty.
	LogFile string `yaml:"log_file"`
	// DataDir overrides where the schema state is stored.
	DataDir string `yaml:"data_dir"`
	DevMode bool   `yaml:"dev_mode"`

	Preview PreviewSettings `yaml:"preview"`
}

// PreviewSettings controls the JSON preview pane.
type PreviewSettings struct {
	Wrap  bool `yaml:"wrap"`
	Width int  `yaml:"width_percent" validate:"omitempty,min=20,max=80"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Preview: PreviewSettings{
			Wrap:  true,
			Width: 50,
		},
	}
}

var defaultValidator = validator.New()

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	err := defaultValidator.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("%s: invalid value %v (%s)", fe.Namespace(), fe.Value(), fe.Tag()))
	}
	return utilerrors.NewAggregate(errs)
}

// Dir returns the per-user app directory, creating it if needed.
func Dir(devMode bool) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := AppID
	if devMode {
		appDir = AppID + "-dev"
	}

	dir := filepath.Join(configDir, appDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// Load reads path over Default(). A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}
