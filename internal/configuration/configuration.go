package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/malonaz/docchat/internal/file"
)

var defaultConfig = Config{
	ServerURL: "http://localhost:8000",
	// 0 disables the client-side timeout: a question left unanswered by the
	// server keeps its session pending until the server settles it.
	RequestTimeout: 0,

	Chat: &ChatConfig{
		DefaultDeepThink: false,
	},

	Upload: &UploadConfig{
		FileExtensions: file.DocumentExtensions,
	},
}

// Config holds configuration for the docchat tool.
type Config struct {
	ServerURL      string `json:"server_url"`
	RequestTimeout int    `json:"request_timeout"`

	Chat   *ChatConfig   `json:"chat"`
	Upload *UploadConfig `json:"upload"`
}

// ChatConfig holds configuration for docchat chat.
type ChatConfig struct {
	// Whether new sessions start in deep-think mode.
	DefaultDeepThink bool `json:"default_deep_think"`
}

// UploadConfig holds configuration for docchat upload.
type UploadConfig struct {
	// Extensions we recognize as uploadable documents.
	FileExtensions []string `json:"file_extensions"`
}

// Parse a configuration file.
func Parse(path string) (*Config, error) {
	path, err := file.ExpandPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding path")
	}

	if err := initializeIfNotPresent(path); err != nil {
		return nil, errors.Wrap(err, "initializing configuration")
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	config := &Config{}
	if err = json.Unmarshal(bytes, config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling into config")
	}

	if config.Chat == nil {
		config.Chat = defaultConfig.Chat
	}
	if config.Upload == nil {
		config.Upload = defaultConfig.Upload
	}
	return config, nil
}

// save a configuration file.
func (c *Config) save(path string) error {
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	err = os.WriteFile(path, bytes, 0644)
	if err != nil {
		return errors.Wrap(err, "writing file")
	}

	return nil
}

// initializeIfNotPresent initializes a config if it does not exist.
func initializeIfNotPresent(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	// Create the directories.
	dir, _ := filepath.Split(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating folders")
	}

	if err := defaultConfig.save(path); err != nil {
		return errors.Wrap(err, "saving default config")
	}
	return nil
}
