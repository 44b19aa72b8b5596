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
	"math/rand/v2"
	"time"

	"github.com/cybrota/bstmap/bst"
	"github.com/schollz/progressbar/v3"
)

const (
	patternRandom     = "random"
	patternAscending  = "ascending"
	patternDescending = "descending"
)

type BenchResult struct {
	Size       int
	Pattern    string
	Height     int
	InsertTime time.Duration
	DrainTime  time.Duration
}

// benchKeys generates size distinct keys in the requested order.
func benchKeys(cfg BenchConfig) ([]int, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("bench size must be positive, got %d", cfg.Size)
	}

	switch cfg.Pattern {
	case patternRandom:
		r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
		return r.Perm(cfg.Size), nil
	case patternAscending, patternDescending:
		keys := make([]int, cfg.Size)
		for i := range keys {
			keys[i] = i
			if cfg.Pattern == patternDescending {
				keys[i] = cfg.Size - 1 - i
			}
		}
		return keys, nil
	}
	return nil, fmt.Errorf("unknown bench pattern %q (want %s, %s or %s)", cfg.Pattern, patternRandom, patternAscending, patternDescending)
}

func newBenchBar(out io.Writer, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(out)
		}),
	)
}

// runBench fills a tree with keys in the configured pattern, measures its
// height, and drains it with RemoveMin while checking that keys come out
// ascending.
func runBench(cfg BenchConfig, out io.Writer, showProgress bool) (*BenchResult, error) {
	keys, err := benchKeys(cfg)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = newBenchBar(out, len(keys), "🌱 Inserting keys...")
	}

	tree := bst.New[int, int]()
	start := time.Now()
	for i, k := range keys {
		tree.Insert(k, i)
		if bar != nil {
			bar.Add(1)
		}
	}
	result := &BenchResult{
		Size:       tree.Size(),
		Pattern:    cfg.Pattern,
		InsertTime: time.Since(start),
		Height:     treeHeight(tree),
	}
	if result.Size != len(keys) {
		return nil, fmt.Errorf("inserted %d distinct keys but tree holds %d", len(keys), result.Size)
	}

	if showProgress {
		bar = newBenchBar(out, len(keys), "🍂 Draining with RemoveMin...")
	}

	start = time.Now()
	prev, drained := 0, 0
	for !tree.IsEmpty() {
		k, _ := tree.Min()
		if drained > 0 && k <= prev {
			return nil, fmt.Errorf("drain out of order: %d after %d", k, prev)
		}
		tree.RemoveMin()
		prev = k
		drained++
		if bar != nil {
			bar.Add(1)
		}
	}
	result.DrainTime = time.Since(start)

	if drained != result.Size || tree.Size() != 0 {
		return nil, fmt.Errorf("drained %d of %d keys, %d left", drained, result.Size, tree.Size())
	}
	return result, nil
}

func (r *BenchResult) String() string {
	return fmt.Sprintf("size=%d pattern=%s height=%d insert=%s drain=%s",
		r.Size, r.Pattern, r.Height, r.InsertTime.Round(time.Microsecond), r.DrainTime.Round(time.Microsecond))
}
