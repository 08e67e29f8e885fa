// Package config loads and saves rusk's optional per-store configuration
// file: a HuJSON (JSON with comments and trailing commas) document that
// currently carries nothing but a compaction threshold override, so a
// deployment can raise or lower the 1 MiB default without a code change.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

// FileName is the config file looked up inside a store directory.
const FileName = "config.json"

// Config is the on-disk configuration document.
type Config struct {
	// CompactionThresholdBytes overrides the engine's default compaction
	// trigger when greater than zero. Zero means "use the engine default".
	CompactionThresholdBytes int64 `json:"compactionThresholdBytes,omitempty"`
}

// Load reads and parses the config file at dir/config.json. A missing file
// is not an error: it returns the zero Config, meaning "use the engine
// defaults".
func Load(dir string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid HuJSON: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: invalid JSON: %w", err)
	}
	return cfg, nil
}

// Save atomically rewrites dir/config.json with cfg, so a reader never
// observes a partially-written file even if the process is interrupted
// mid-write.
func Save(dir string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return atomic.WriteFile(filepath.Join(dir, FileName), bytes.NewReader(data))
}
