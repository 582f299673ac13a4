// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"go/token"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/trace"

	"github.com/xyproto/env/v2"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/stmtsema/diag"
	"fillmore-labs.com/stmtsema/internal/ccfront"
	"fillmore-labs.com/stmtsema/sema"
)

// EnvConfig names the JSON settings file.
const EnvConfig = "STMTSEMA_CONFIG"

// ErrNoFunctions is returned when none of the input files defines a function.
var ErrNoFunctions = errors.New("no function definitions found")

// Exit codes.
const (
	exitOK          = 0
	exitDiagnostics = 1
	exitFailure     = 2
)

type result struct {
	diagnostics []diag.Diagnostic
	summaries   []sema.Summary
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stmtcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)

	verbose := fs.Bool("v", false, "log checker events")
	color := fs.String("color", "auto", "colorize severities (auto, always, never)")

	opts, err := settingsOptions()
	if err != nil {
		fmt.Fprintf(stderr, "stmtcheck: %v\n", err)

		return exitFailure
	}

	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts = append(opts, sema.EnvOptions(), sema.WithLogger(logger))

	c := sema.New(opts...)
	c.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return exitFailure
	}

	if *verbose {
		level.Set(slog.LevelDebug)
	}

	if fs.NArg() == 0 {
		fs.Usage()

		return exitFailure
	}

	fset := token.NewFileSet()

	results, err := checkFiles(ctx, fset, c, fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "stmtcheck: %v\n", err)

		return exitFailure
	}

	p := printer{w: stdout, fset: fset, color: useColor(*color, stdout)}

	errs, functions := 0, 0
	for _, r := range results {
		for _, d := range r.diagnostics {
			p.print(d)
		}

		for _, s := range r.summaries {
			logger.LogAttrs(ctx, slog.LevelDebug, "Function checked", slog.Any("summary", s))
			errs += s.Errors
		}

		functions += len(r.summaries)
	}

	if functions == 0 {
		fmt.Fprintf(stderr, "stmtcheck: %v\n", ErrNoFunctions)

		return exitFailure
	}

	if errs > 0 {
		return exitDiagnostics
	}

	return exitOK
}

// settingsOptions reads the settings file named by [EnvConfig], if any.
func settingsOptions() (sema.Options, error) {
	name := env.Str(EnvConfig)
	if name == "" {
		return nil, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("can't read settings: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var s sema.Settings
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("can't decode settings %s: %w", name, err)
	}

	return s.Options(), nil
}

// checkFiles checks files concurrently. Results are in the order of files.
func checkFiles(ctx context.Context, fset *token.FileSet, c *sema.Checker, files []string) ([]result, error) {
	results := make([]result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range files {
		g.Go(func() error {
			ctx, task := trace.NewTask(ctx, "CheckFile")
			defer task.End()

			content, err := os.ReadFile(name)
			if err != nil {
				return err
			}

			u, err := ccfront.Parse(ctx, fset, ccfront.Source{Name: name, Value: string(content)})
			if err != nil {
				return err
			}

			var sink diag.Collector

			results[i] = result{summaries: u.Check(ctx, c, &sink), diagnostics: sink.All()}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
