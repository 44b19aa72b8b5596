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
	"os"

	"gopkg.in/yaml.v3"
)

// DatasetEntry is one binding in a dataset file. An empty value binds the
// key to itself, matching bare keys on the command line.
type DatasetEntry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value,omitempty"`
}

// Dataset is a YAML document of the form:
//
//	entries:
//	  - key: "5"
//	    value: five
//	  - key: "3"
type Dataset struct {
	Entries []DatasetEntry `yaml:"entries"`
}

func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	dataset, err := parseDataset(data)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return dataset, nil
}

func parseDataset(data []byte) (*Dataset, error) {
	var dataset Dataset
	if err := yaml.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	for i, entry := range dataset.Entries {
		if entry.Key == "" {
			return nil, fmt.Errorf("entry %d has no key", i+1)
		}
	}
	return &dataset, nil
}

// Apply inserts every entry in file order, which determines the tree shape.
func (d *Dataset) Apply(s *Session) int {
	for _, entry := range d.Entries {
		value := entry.Value
		if value == "" {
			value = entry.Key
		}
		s.Insert(entry.Key, value)
	}
	return len(d.Entries)
}
