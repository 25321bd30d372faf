// Copyright 2025 Poiesic Systems
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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/itemsearch"
	"github.com/poiesic/itemsearch/alfred"
	"github.com/poiesic/itemsearch/catalog"
	"github.com/poiesic/itemsearch/config"
	"github.com/poiesic/itemsearch/core"
)

var (
	// errValidationFailed marks failures of --validate, the only mode with a
	// non-zero exit status.
	errValidationFailed = errors.New("catalog validation failed")

	// errInvalidArguments marks flag values rejected before the action runs.
	errInvalidArguments = errors.New("invalid arguments")
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the app and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	err := app.Run(separateQuery(app.Flags, args))
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errValidationFailed):
		fmt.Fprintln(stderr, err)
		return 1
	case errors.Is(err, errInvalidArguments):
		_ = invalidArguments(err).Write(stdout)
		return 0
	default:
		// Only writing the response can fail here, so there is nowhere left
		// to report it.
		slog.Error("writing response failed", "err", err)
		return 0
	}
}

// separateQuery rewrites argv so that the query is never parsed as a flag.
// A lone argument is always the query, which is how the launcher calls.
// Otherwise leading arguments naming one of flags stay flags and everything
// from the first other argument on is positional. An explicit "--" is only a
// separator when something follows it.
func separateQuery(flags []cli.Flag, args []string) []string {
	if len(args) < 2 {
		return args
	}
	if len(args) == 2 {
		return []string{args[0], "--", args[1]}
	}

	takesValue := make(map[string]bool)
	for _, flag := range flags {
		value := false
		if f, ok := flag.(cli.DocGenerationFlag); ok {
			value = f.TakesValue()
		}
		for _, name := range flag.Names() {
			takesValue[name] = value
		}
	}

	i := 1
	for i < len(args) {
		if args[i] == "--" && i+1 < len(args) {
			return args
		}
		name, inline := flagName(args[i])
		needsValue, known := takesValue[name]
		if !known {
			break
		}
		i++
		if needsValue && !inline {
			i++
		}
	}
	if i >= len(args) {
		return args
	}

	out := slices.Clone(args[:i])
	out = append(out, "--")
	return append(out, args[i:]...)
}

// flagName returns the name in a "-name", "--name" or "--name=value"
// argument, and whether the value was given inline.
func flagName(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false
	}
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	name, _, inline := strings.Cut(name, "=")
	return name, inline
}

func invalidArguments(err error) *alfred.Response {
	return alfred.NewErrorResponse("Invalid arguments", err.Error(), alfred.DefaultErrorIcon)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "itemsearch",
		Usage:     "Filter and rank a record catalog for a launcher search box",
		ArgsUsage: "[--] [query]",
		HideHelp:  true,
		// Help text must never reach the launcher
		Writer:    stderr,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error); logging is off when empty",
				EnvVars: []string{"ITEMSEARCH_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "dir",
				Usage:   "Workflow directory holding the catalog and config (default: directory of this binary)",
				EnvVars: []string{"ITEMSEARCH_DIR"},
			},
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "Catalog file, relative to the workflow directory unless absolute",
				EnvVars: []string{"ITEMSEARCH_CATALOG"},
			},
			&cli.BoolFlag{
				Name:  "validate",
				Usage: "Check the catalog and print its record count and fingerprint instead of searching",
			},
		},
		Before: func(c *cli.Context) error {
			if err := setupLogger(stderr, c.String("log-level")); err != nil {
				return fmt.Errorf("%w: %w", errInvalidArguments, err)
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("validate") {
				return validateCommand(c, stdout)
			}
			return searchCommand(c, stdout, stderr)
		},
		OnUsageError: func(c *cli.Context, err error, _ bool) error {
			return invalidArguments(err).Write(stdout)
		},
	}
}

func searchCommand(c *cli.Context, stdout, stderr io.Writer) error {
	dir, err := workflowDir(c)
	if err != nil {
		return itemsearch.ErrorResponse(err, alfred.DefaultErrorIcon).Write(stdout)
	}

	cfg, err := loadConfig(c, dir)
	if err != nil {
		return itemsearch.ErrorResponse(err, alfred.DefaultErrorIcon).Write(stdout)
	}
	// The config file may turn logging on when the flag did not.
	if !c.IsSet("log-level") && cfg.Logging.Level != "" {
		if err := setupLogger(stderr, cfg.Logging.Level); err != nil {
			return itemsearch.ErrorResponse(err, cfg.Icons.Error).Write(stdout)
		}
	}

	workflow, err := itemsearch.Open(dir, cfg, itemsearch.WithLogger(slog.Default()))
	if err != nil {
		return itemsearch.ErrorResponse(err, cfg.Icons.Error).Write(stdout)
	}

	return workflow.Run(c.Context, c.Args().Slice(), stdout)
}

func validateCommand(c *cli.Context, stdout io.Writer) error {
	dir, err := workflowDir(c)
	if err != nil {
		return fmt.Errorf("%w: %w", errValidationFailed, err)
	}

	cfg, err := loadConfig(c, dir)
	if err != nil {
		return fmt.Errorf("%w: %w", errValidationFailed, err)
	}

	loader, err := catalog.NewFileLoader(cfg.CatalogPath(dir))
	if err != nil {
		return fmt.Errorf("%w: %w", errValidationFailed, err)
	}

	records, err := loader.Load(c.Context)
	if err != nil {
		return fmt.Errorf("%w: %w", errValidationFailed, err)
	}

	fmt.Fprintf(stdout, "catalog:     %s\n", loader.Path())
	fmt.Fprintf(stdout, "format:      %s\n", loader.Format())
	fmt.Fprintf(stdout, "records:     %d\n", len(records))
	fmt.Fprintf(stdout, "fingerprint: %s\n", core.Fingerprint(records))

	if dups := core.DuplicateArgs(records); len(dups) > 0 {
		fmt.Fprintf(stdout, "duplicate args: %s\n", strings.Join(dups, ", "))
		return fmt.Errorf("%w: %d duplicate args", errValidationFailed, len(dups))
	}
	return nil
}

// workflowDir returns --dir, or the directory of the running binary.
func workflowDir(c *cli.Context) (string, error) {
	if dir := c.String("dir"); dir != "" {
		return dir, nil
	}
	return itemsearch.ExecutableDir()
}

// loadConfig reads the workflow config and applies flag overrides.
func loadConfig(c *cli.Context, dir string) (config.Config, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return config.Config{}, err
	}
	if c.IsSet("catalog") {
		cfg.Catalog.File = c.String("catalog")
		cfg.ApplyDefaults()
	}
	return cfg, nil
}

func setupLogger(w io.Writer, levelStr string) error {
	level, enabled, err := config.ParseLevel(levelStr)
	if err != nil {
		return err
	}

	// Logging is off unless a level is given
	if !enabled {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
