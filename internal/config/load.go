package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML or TOML config file, chosen by extension.
// An empty path yields an empty Config so everything can come from the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse toml config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	}

	return cfg, nil
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides file values with the named environment values.
func (c *Config) ApplyEnv(lookup LookupFunc) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	set("OPENAI_API_KEY", &c.OpenAI.APIKey)
	set("GOOGLE_DRIVE_API_KEY", &c.Drive.APIKey)
	set("GOOGLE_DRIVE_FOLDER_ID", &c.Drive.AudioFolderID)
	set("AUDIO_PARENT_FOLDER_ID", &c.Drive.AudioParentFolderID)
	set("WEBSITE_DRIVE_FOLDER_ID", &c.Drive.WebsiteFolderID)
	set("GOOGLE_SHEET", &c.Sheet.ID)
	set("GOOGLE_SERVICE_ACCOUNT", &c.Google.ServiceAccountPath)
	set("LLM_PROVIDER", &c.LLM.Provider)
	set("LOG_LEVEL", &c.Logging.Level)

	if v, ok := lookup("GEMINI_API_KEYS"); ok {
		var keys []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			c.Gemini.APIKeys = keys
		}
	}
}
