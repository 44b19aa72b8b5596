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

	"github.com/cybrota/bstmap/bst"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

const asciiLogo = `
 _         _
| |__  ___| |_ _ __ ___   __ _ _ __
| '_ \/ __| __| '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \
| |_) \__ \ |_| | | | | | (_| | |_) |
|_.__/|___/\__|_| |_| |_|\__,_| .__/
                              |_|
Ordered key-value map on an unbalanced binary search tree [Version: %s]
`

// writeTraversals prints the requested traversal, or all four when all is set.
func writeTraversals(w io.Writer, s *Session, order bst.Order, all bool) {
	if !all {
		fmt.Fprintln(w, s.Walk(order))
		return
	}
	for _, o := range bst.Orders() {
		fmt.Fprintf(w, "%-6s %s\n", o.String()+":", s.Walk(o))
	}
}

func resolveOrder(cmd *cobra.Command, config *Config) (bst.Order, error) {
	name, _ := cmd.Flags().GetString("order")
	if name == "" {
		return config.defaultOrder(), nil
	}
	return bst.ParseOrder(name)
}

func newRootCmd() *cobra.Command {
	logo := fmt.Sprintf(asciiLogo, version)

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = newDefaultConfig()
	}

	runUI := func(cmd *cobra.Command, args []string) error {
		return runBubbleTeaApp(NewSession(config), config)
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches an interactive tree session",
		Long:  fmt.Sprintf("%s\n%s", logo, `Run opens an interactive session that executes tree commands as you type them`),
		Args:  cobra.NoArgs,
		RunE:  runUI,
	}

	var cmdWalk = &cobra.Command{
		Use:   "walk [key[=value]...]",
		Short: "Build a tree from arguments and print a traversal",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := resolveOrder(cmd, config)
			if err != nil {
				return err
			}
			s := NewSession(config)
			for _, arg := range args {
				s.Insert(parseBinding(arg))
			}
			all, _ := cmd.Flags().GetBool("all")
			writeTraversals(cmd.OutOrStdout(), s, order, all)
			if shape, _ := cmd.Flags().GetBool("shape"); shape {
				fmt.Fprintln(cmd.OutOrStdout(), renderShape(s.Tree()))
			}
			return nil
		},
	}
	cmdWalk.Flags().String("order", "", "traversal order: pre, in, post or level (default from config)")
	cmdWalk.Flags().Bool("all", false, "print all four traversals")
	cmdWalk.Flags().Bool("shape", false, "also print the tree shape")

	var cmdLoad = &cobra.Command{
		Use:   "load FILE",
		Short: "Build a tree from a YAML dataset and print a traversal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := resolveOrder(cmd, config)
			if err != nil {
				return err
			}
			dataset, err := LoadDataset(args[0])
			if err != nil {
				return err
			}
			s := NewSession(config)
			n := dataset.Apply(s)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "loaded %d entries, %d distinct keys, height %d\n", n, s.Tree().Size(), treeHeight(s.Tree()))
			all, _ := cmd.Flags().GetBool("all")
			writeTraversals(w, s, order, all)
			return nil
		},
	}
	cmdLoad.Flags().String("order", "", "traversal order: pre, in, post or level (default from config)")
	cmdLoad.Flags().Bool("all", false, "print all four traversals")

	var cmdExec = &cobra.Command{
		Use:   "exec [FILE]",
		Short: "Run session commands from a script file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}
			return NewSession(config).Run(in, cmd.OutOrStdout())
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Insert and drain many keys, reporting tree height",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Bench
			if cmd.Flags().Changed("size") {
				cfg.Size, _ = cmd.Flags().GetInt("size")
			}
			if cmd.Flags().Changed("pattern") {
				cfg.Pattern, _ = cmd.Flags().GetString("pattern")
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed, _ = cmd.Flags().GetUint64("seed")
			}
			quiet, _ := cmd.Flags().GetBool("quiet")

			result, err := runBench(cfg, cmd.ErrOrStderr(), !quiet)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmdBench.Flags().Int("size", defaultConfig.Bench.Size, "number of keys")
	cmdBench.Flags().String("pattern", defaultConfig.Bench.Pattern, "insertion order: random, ascending or descending")
	cmdBench.Flags().Uint64("seed", defaultConfig.Bench.Seed, "seed for the random pattern")
	cmdBench.Flags().Bool("quiet", false, "hide progress bars")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show bstmap settings, creating the config file if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print bstmap usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the bstmap CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print bstmap version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "bstmap",
		Version:       version,
		Long:          logo,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Default to run command when no subcommand is provided
		RunE: runUI,
	}
	rootCmd.AddCommand(cmdRun, cmdWalk, cmdLoad, cmdExec, cmdBench, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func main() {
	InitializeColors()
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
