// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/cybrota/bstmap/bst"
	"gopkg.in/yaml.v3"
)

const configFileName = ".bstmap.yaml"

type WalkConfig struct {
	DefaultOrder string `yaml:"default_order"`
	Separator    string `yaml:"separator"`
}

type BenchConfig struct {
	Size    int    `yaml:"size"`
	Pattern string `yaml:"pattern"`
	Seed    uint64 `yaml:"seed"`
}

type UIConfig struct {
	WordWrap int `yaml:"word_wrap"`
}

type Config struct {
	Walk  WalkConfig  `yaml:"walk"`
	Bench BenchConfig `yaml:"bench"`
	UI    UIConfig    `yaml:"ui"`
}

var defaultConfig = Config{
	Walk: WalkConfig{
		DefaultOrder: "in",
		Separator:    " ",
	},
	Bench: BenchConfig{
		Size:    10000,
		Pattern: patternRandom,
		Seed:    1,
	},
	UI: UIConfig{
		WordWrap: 72,
	},
}

func newDefaultConfig() *Config {
	config := defaultConfig
	return &config
}

// LoadConfig reads ~/.bstmap.yaml. Any problem with the file yields the
// default settings.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return newDefaultConfig(), nil
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		return newDefaultConfig(), nil
	}
	return config, nil
}

// loadConfigFrom overlays the file at path on the defaults. A missing file
// is not an error.
func loadConfigFrom(path string) (*Config, error) {
	config := newDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return config, nil
}

// defaultOrder falls back to in-order when the configured name is unknown.
func (c *Config) defaultOrder() bst.Order {
	order, err := bst.ParseOrder(c.Walk.DefaultOrder)
	if err != nil {
		return bst.InOrderTraversal
	}
	return order
}

func (c *Config) separator() string {
	if c.Walk.Separator == "" {
		return " "
	}
	return c.Walk.Separator
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return writeConfigFile(configPath, &defaultConfig)
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 bstmap Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	}

	fmt.Fprintf(w, "🌳 %sTraversal:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sdefault_order%s: %s (effective: %s)\n", Green, Reset, config.Walk.DefaultOrder, config.defaultOrder())
	fmt.Fprintf(w, "  • %sseparator%s: %q\n\n", Green, Reset, config.separator())

	fmt.Fprintf(w, "⏱  %sBench:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %ssize%s: %d\n", Green, Reset, config.Bench.Size)
	fmt.Fprintf(w, "  • %spattern%s: %s\n", Green, Reset, config.Bench.Pattern)
	fmt.Fprintf(w, "  • %sseed%s: %d\n\n", Green, Reset, config.Bench.Seed)

	fmt.Fprintf(w, "🖥  %sInteractive UI:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sword_wrap%s: %d\n", Green, Reset, config.UI.WordWrap)
	return nil
}
