// Package config loads the settings shared by the CLI and the examples.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hsiuhsiu/aqkanji2koe-go/pkg/aquestalk"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvDictionary  = "AQKANJI2KOE_DIC"
	EnvKanjiDevKey = "AQKANJI2KOE_DEVKEY"
	EnvTalkDevKey  = "AQUESTALK_DEVKEY"
)

// Config describes one conversion run.
type Config struct {
	Dictionary  string `json:"dictionary"`
	KanjiDevKey string `json:"kanji_dev_key,omitempty"`
	TalkDevKey  string `json:"talk_dev_key,omitempty"`
	Speed       int    `json:"speed,omitempty"`
	Output      string `json:"output,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Dictionary: "./aq_dic",
		Speed:      aquestalk.DefaultSpeed,
	}
}

// Load reads and parses a JSON configuration file on top of Default. path
// is chosen by the caller and only cleaned; an output path read from the
// file itself must stay inside the working directory.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- path supplied by the operator
	if err != nil {
		return cfg, fmt.Errorf("read file: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal JSON: %w", err)
	}
	if cfg.Output != "" && cfg.Output != "-" {
		abs, err := SecurePath(cfg.Output)
		if err != nil {
			return cfg, fmt.Errorf("output: %w", err)
		}
		cfg.Output = abs
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDictionary); ok && v != "" {
		c.Dictionary = v
	}
	if v, ok := lookup(EnvKanjiDevKey); ok && v != "" {
		c.KanjiDevKey = v
	}
	if v, ok := lookup(EnvTalkDevKey); ok && v != "" {
		c.TalkDevKey = v
	}
}

// Validate performs basic sanity checks. It does not open the dictionary.
func (c Config) Validate() error {
	if c.Dictionary == "" {
		return errors.New("dictionary is required")
	}
	if c.Output != "" && (c.Speed < aquestalk.MinSpeed || c.Speed > aquestalk.MaxSpeed) {
		return fmt.Errorf("speed %d not in [%d,%d]", c.Speed, aquestalk.MinSpeed, aquestalk.MaxSpeed)
	}
	return nil
}

// SecurePath validates that a file path doesn't escape the working directory.
// Load applies it to output paths taken from a config file.
func SecurePath(path string) (string, error) {
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}
