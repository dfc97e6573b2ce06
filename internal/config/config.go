package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config manages CLI defaults stored at ~/.config/bumpvcs/config.json. Only
// the command-line surface reads it; the VCS backends take no configuration.
type Config struct {
	path string
}

// New creates a Config. If configPath is empty, uses the default location.
func New(configPath string) *Config {
	if configPath == "" {
		home, _ := os.UserHomeDir()
		configPath = filepath.Join(home, ".config", "bumpvcs", "config.json")
	}
	return &Config{path: configPath}
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.path
}

// Read returns the config data as a map, or an empty map if the file doesn't exist.
func (c *Config) Read() (map[string]any, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Write persists the config data to disk, creating directories as needed.
func (c *Config) Write(data map[string]any) error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, b, 0o644)
}

// SignTags reports whether tags should be signed by default.
func (c *Config) SignTags() bool {
	data, err := c.Read()
	if err != nil {
		return false
	}
	v, _ := data["sign_tags"].(bool)
	return v
}

// SetSignTags sets the sign_tags key in the config.
func (c *Config) SetSignTags(sign bool) error {
	data, err := c.Read()
	if err != nil {
		return err
	}
	data["sign_tags"] = sign
	return c.Write(data)
}

// TagMessage returns the default tag annotation message, or "" for a
// lightweight tag.
func (c *Config) TagMessage() string {
	data, err := c.Read()
	if err != nil {
		return ""
	}
	v, _ := data["tag_message"].(string)
	return v
}
