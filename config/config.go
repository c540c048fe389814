package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	CONFIG_PATH = "./res/config.yaml"
)

// ServiceConfig holds the configuration for the application.
type ServiceConfig struct {
	ServiceName   string  `yaml:"service_name" validate:"required"`
	LogLevel      string  `yaml:"loglevel" validate:"required"`
	AdminUsername string  `yaml:"admin_username" validate:"required,alpha"`
	Storage       Storage `yaml:"storage" validate:"required"`
	Login         Login   `yaml:"login"`
}

// Storage holds the backing store and report document file paths.
type Storage struct {
	UserFile         string `yaml:"user_file" validate:"required"`
	TaskFile         string `yaml:"task_file" validate:"required"`
	TaskOverviewFile string `yaml:"task_overview_file" validate:"required"`
	UserOverviewFile string `yaml:"user_overview_file" validate:"required"`
}

// Login holds the login attempt throttle settings.
type Login struct {
	AttemptsPerSecond float64 `yaml:"attempts_per_second"`
	Burst             int     `yaml:"burst"`
}

// ReadLocalConfig reads the service configuration from a YAML file at the specified path.
// It unmarshals the YAML content into a ServiceConfig struct and returns it.
// If there is an error reading the file or unmarshaling the content, it returns an error.
func ReadLocalConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
