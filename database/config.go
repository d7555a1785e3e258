/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tomoncle/baseenum"
	"github.com/tomoncle/baseenum/utils"
	"gopkg.in/yaml.v3"
)

// SyncConfig is the YAML document that drives SyncRegistered.
type SyncConfig struct {
	Connection ConnectionConfig `yaml:"connection"`
	// CreateTable creates enum_options when it does not exist yet.
	CreateTable bool `yaml:"create_table"`
	// Types limits the sync to these enum type names; empty means all.
	Types []string `yaml:"types"`

	Log LogConfig `yaml:"log"`
}

// LogConfig tunes the console loggers for a sync run. Empty fields keep
// the current settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c LogConfig) apply() {
	if c.Format != "" {
		utils.ConfigureConsoleLogFormat(c.Format)
	}
	if c.Level == "" {
		return
	}
	utils.SetAllLoggersLevel(utils.ParseLogLevel(c.Level))
	if dl, ok := GetLogger().(*DefaultLogger); ok {
		dl.SetLevel(c.Level)
	}
}

// LoadSyncConfig reads a SyncConfig from path. Connection fields missing
// from the file keep the values of DefaultConnectionConfig, so the file
// takes precedence over DB_* environment variables.
func LoadSyncConfig(path string) (*SyncConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &SyncConfig{Connection: *DefaultConnectionConfig()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Export writes the config as YAML to outputPath, creating directories as needed.
func (c *SyncConfig) Export(outputPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Selected filters tables down to the configured Types, keeping input order.
func (c *SyncConfig) Selected(tables []baseenum.Descriptor) []baseenum.Descriptor {
	if len(c.Types) == 0 {
		return tables
	}
	wanted := make(map[string]struct{}, len(c.Types))
	for _, t := range c.Types {
		wanted[t] = struct{}{}
	}
	out := make([]baseenum.Descriptor, 0, len(tables))
	for _, d := range tables {
		if _, ok := wanted[d.TypeName()]; ok {
			out = append(out, d)
		}
	}
	return out
}
