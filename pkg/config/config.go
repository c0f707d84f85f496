package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	GenAI struct {
		Project     string  `yaml:"project"`
		Location    string  `yaml:"location"`
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float64 `yaml:"temperature"`
		TopP        float64 `yaml:"top_p"`
		Seed        int     `yaml:"seed"`
	} `yaml:"genai"`

	Server struct {
		ListenAddress string `yaml:"listen_address"`
	} `yaml:"server"`

	Feedback struct {
		APIKey      string   `yaml:"api_key"`
		FromAddress string   `yaml:"from_address"`
		Recipients  []string `yaml:"recipients"`
	} `yaml:"feedback"`
}

func LoadConfig(path string) (*Config, error) {
	// If no path provided, try default locations
	if path == "" {
		locations := []string{
			"config.yaml",
			"config.yml",
			filepath.Join(os.Getenv("HOME"), ".config/capricorn/config.yaml"),
			"/etc/capricorn/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return getDefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	// Merge with environment variables
	mergeWithEnv(&config)

	// Apply defaults for unset values
	applyDefaults(&config)

	return &config, nil
}

func getDefaultConfig() (*Config, error) {
	config := &Config{}
	applyDefaults(config)
	mergeWithEnv(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.GenAI.Project == "" {
		config.GenAI.Project = "gemini-med-lit-review"
	}
	if config.GenAI.Location == "" {
		config.GenAI.Location = "global"
	}
	if config.GenAI.Model == "" {
		config.GenAI.Model = "gemini-2.5-flash-preview-05-20"
	}
	if config.GenAI.MaxTokens == 0 {
		config.GenAI.MaxTokens = 65535
	}
	if config.GenAI.Temperature == 0 {
		config.GenAI.Temperature = 1
	}
	if config.GenAI.TopP == 0 {
		config.GenAI.TopP = 1
	}

	if config.Server.ListenAddress == "" {
		config.Server.ListenAddress = "0.0.0.0:8080"
	}

	if config.Feedback.FromAddress == "" {
		config.Feedback.FromAddress = "feedback@capricorn-med.dev"
	}
	if len(config.Feedback.Recipients) == 0 {
		config.Feedback.Recipients = []string{"team@capricorn-med.dev"}
	}
}

func mergeWithEnv(config *Config) {
	if project := os.Getenv("PROJECT_ID"); project != "" {
		config.GenAI.Project = project
	}
	if location := os.Getenv("LOCATION"); location != "" {
		config.GenAI.Location = location
	}
	if port := os.Getenv("PORT"); port != "" {
		config.Server.ListenAddress = "0.0.0.0:" + port
	}
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		config.Feedback.APIKey = apiKey
	}
}
