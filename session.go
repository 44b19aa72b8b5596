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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/bstmap/bst"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

const (
	absentMarker = "(absent)"
	emptyMarker  = "(empty)"
)

// commandSpec describes one session command for dispatch and help output.
type commandSpec struct {
	Name    string
	Aliases []string
	Args    string
	Summary string
}

var commandSpecs = []commandSpec{
	{"insert", []string{"put", "set"}, "key[=value]...", "bind keys; a bare key is bound to itself"},
	{"search", []string{"get"}, "key", "print the value bound to key"},
	{"contain", []string{"has"}, "key", "report whether key is present"},
	{"remove", []string{"del", "rm"}, "key...", "delete keys (Hibbard deletion)"},
	{"min", nil, "", "print the smallest key"},
	{"max", nil, "", "print the largest key"},
	{"removemin", []string{"popmin"}, "", "delete and print the smallest key"},
	{"removemax", []string{"popmax"}, "", "delete and print the largest key"},
	{"size", []string{"len"}, "", "print the number of keys"},
	{"empty", []string{"isempty"}, "", "report whether the tree is empty"},
	{"walk", []string{"traverse"}, "[pre|in|post|level]", "print keys in traversal order"},
	{"pre", nil, "", "walk pre-order"},
	{"in", nil, "", "walk in-order"},
	{"post", nil, "", "walk post-order"},
	{"level", []string{"bfs"}, "", "walk level-order"},
	{"show", []string{"tree"}, "", "print the tree shape"},
	{"clear", []string{"reset"}, "", "drop every key"},
	{"help", []string{"?"}, "", "list commands"},
}

var commandAliases = func() map[string]string {
	aliases := make(map[string]string)
	for _, spec := range commandSpecs {
		aliases[spec.Name] = spec.Name
		for _, alias := range spec.Aliases {
			aliases[alias] = spec.Name
		}
	}
	return aliases
}()

// Session interprets text commands against a single tree.
type Session struct {
	tree   *bst.Tree[string, string]
	walks  *cache.Cache
	config *Config
}

func NewSession(config *Config) *Session {
	if config == nil {
		config = newDefaultConfig()
	}
	return &Session{
		tree:   newKeyTree(),
		walks:  NewWalkCache(),
		config: config,
	}
}

// Tree exposes the underlying tree for read-only inspection.
func (s *Session) Tree() *bst.Tree[string, string] {
	return s.tree
}

// Insert binds key to value and invalidates memoized traversals.
func (s *Session) Insert(key, value string) {
	s.tree.Insert(key, value)
	InvalidateWalks(s.walks)
}

// Exec runs one command line and returns its output.
func (s *Session) Exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil
	}

	args, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("failed to parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return "", nil
	}

	name, ok := commandAliases[strings.ToLower(args[0])]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownCommand, args[0])
	}
	args = args[1:]

	switch name {
	case "insert":
		if len(args) == 0 {
			return "", usageError(name)
		}
		for _, arg := range args {
			s.Insert(parseBinding(arg))
		}
		return fmt.Sprintf("ok (size %d)", s.tree.Size()), nil

	case "search":
		if len(args) != 1 {
			return "", usageError(name)
		}
		if value, ok := s.tree.Search(args[0]); ok {
			return value, nil
		}
		return absentMarker, nil

	case "contain":
		if len(args) != 1 {
			return "", usageError(name)
		}
		return strconv.FormatBool(s.tree.Contain(args[0])), nil

	case "remove":
		if len(args) == 0 {
			return "", usageError(name)
		}
		removed := 0
		for _, key := range args {
			before := s.tree.Size()
			s.tree.Remove(key)
			removed += before - s.tree.Size()
		}
		if removed > 0 {
			InvalidateWalks(s.walks)
		}
		return fmt.Sprintf("removed %d (size %d)", removed, s.tree.Size()), nil

	case "min", "max", "removemin", "removemax":
		if len(args) != 0 {
			return "", usageError(name)
		}
		return s.extreme(name), nil

	case "size":
		if len(args) != 0 {
			return "", usageError(name)
		}
		return strconv.Itoa(s.tree.Size()), nil

	case "empty":
		if len(args) != 0 {
			return "", usageError(name)
		}
		return strconv.FormatBool(s.tree.IsEmpty()), nil

	case "walk":
		if len(args) > 1 {
			return "", usageError(name)
		}
		order := s.config.defaultOrder()
		if len(args) == 1 {
			if order, err = bst.ParseOrder(args[0]); err != nil {
				return "", err
			}
		}
		return s.Walk(order), nil

	case "pre", "in", "post", "level":
		if len(args) != 0 {
			return "", usageError(name)
		}
		order, _ := bst.ParseOrder(name)
		return s.Walk(order), nil

	case "show":
		if len(args) != 0 {
			return "", usageError(name)
		}
		return renderShape(s.tree), nil

	case "clear":
		if len(args) != 0 {
			return "", usageError(name)
		}
		s.tree = newKeyTree()
		InvalidateWalks(s.walks)
		return "ok (size 0)", nil

	case "help":
		return commandHelpText(), nil
	}

	return "", fmt.Errorf("%w %q", ErrUnknownCommand, name)
}

func (s *Session) extreme(name string) string {
	var key string
	var ok bool
	if name == "min" || name == "removemin" {
		key, ok = s.tree.Min()
	} else {
		key, ok = s.tree.Max()
	}
	if !ok {
		return emptyMarker
	}

	switch name {
	case "removemin":
		s.tree.RemoveMin()
		InvalidateWalks(s.walks)
	case "removemax":
		s.tree.RemoveMax()
		InvalidateWalks(s.walks)
	}
	return key
}

// Walk renders the keys visited by order, memoized until the next mutation.
func (s *Session) Walk(order bst.Order) string {
	if rendered, ok := GetCachedWalk(s.walks, order); ok {
		return rendered
	}

	rendered := emptyMarker
	if keys := s.tree.Keys(order); len(keys) > 0 {
		rendered = strings.Join(keys, s.config.separator())
	}
	CacheWalk(s.walks, order, rendered)
	return rendered
}

// Run executes a script line by line and writes non-empty output to w.
// It stops at the first failing line.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		out, err := s.Exec(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return nil
}

func usageError(name string) error {
	for _, spec := range commandSpecs {
		if spec.Name == name {
			return fmt.Errorf("%w: %s", ErrUsage, strings.TrimSpace(spec.Name+" "+spec.Args))
		}
	}
	return fmt.Errorf("%w: %s", ErrUsage, name)
}

func commandHelpText() string {
	var b strings.Builder
	for i, spec := range commandSpecs {
		if i > 0 {
			b.WriteByte('\n')
		}
		usage := strings.TrimSpace(spec.Name + " " + spec.Args)
		fmt.Fprintf(&b, "%-28s %s", usage, spec.Summary)
		if len(spec.Aliases) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(spec.Aliases, ", "))
		}
	}
	return b.String()
}

// commandReference renders the command list as a markdown table.
func commandReference() string {
	var b strings.Builder
	b.WriteString("# Commands\n\n| command | aliases | description |\n|---|---|---|\n")
	for _, spec := range commandSpecs {
		usage := strings.TrimSpace(spec.Name + " " + spec.Args)
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", usage, strings.Join(spec.Aliases, ", "), spec.Summary)
	}
	return b.String()
}
