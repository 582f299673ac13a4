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

package sema_test

import (
	"encoding/json"
	"flag"
	"io"
	"reflect"
	"strings"
	"testing"

	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/diag"
	"fillmore-labs.com/stmtsema/internal/config"
	"fillmore-labs.com/stmtsema/internal/testsource"
	. "fillmore-labs.com/stmtsema/sema"
)

const allSettings = `{
	"std": "c89",
	"gnu": false,
	"pedantic": true,
	"pedantic-errors": false,
	"warnings-as-errors": true,
	"warnings": {"unused-value": false}
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
		{"unknown_warning", `{"warnings": {"bogus": true, "empty-body": true}}`, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestSettingsUnknownStandard(t *testing.T) {
	t.Parallel()

	var s Settings
	if err := json.Unmarshal([]byte(`{"std": "k&r"}`), &s); err == nil {
		t.Error("Expected an error for an unknown standard")
	}
}

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		args []string
		ids  []diag.ID
	}{
		{"defaults", nil, []diag.ID{diag.UnusedValue}},
		{"disable_warning", []string{"-Wunused-value=false"}, nil},
		{"c89_pedantic", []string{"-std=c89", "-pedantic"}, []diag.ID{diag.MixedDeclarations, diag.UnusedValue}},
		{"c11_pedantic", []string{"-std=c11", "-pedantic"}, []diag.ID{diag.UnusedValue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New()

			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			c.RegisterFlags(fs)

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			var sink diag.Collector

			b := c.Function(t.Context(), Env{Sink: &sink, Semantics: testsource.Semantics{}}, intFunc)

			x := testsource.Var(20, "x", testsource.Int32)
			b.Compound(0, []ast.Stmt{
				b.Expr(testsource.Call(1, 5, testsource.Void)).Stmt,
				b.Decl([]ast.Decl{testsource.Local(10, "x")}, 8, 12).Stmt,
				b.Expr(x).Stmt,
			}, 30, false)

			expectIDs(t, &sink, tt.ids...)
		})
	}
}

func TestFlagUsage(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	New().RegisterFlags(fs)

	const expectedUsage = `
  -Wunused-value
    	enable unused-value warnings (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.Contains(got, want) {
		t.Errorf("Usage() = %q, want %q", got, want)
	}

	if f := fs.Lookup("std"); f == nil || f.DefValue != "c99" {
		t.Errorf("Got std flag %v, expected default c99", f)
	}
}

func TestFlagValues(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	New().RegisterFlags(fs)

	if err := fs.Parse([]string{"-Wempty-body=0", "-gnu"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for name, want := range map[string]bool{"Wempty-body": false, "gnu": true, "Wunused-value": true} {
		g, ok := fs.Lookup(name).Value.(flag.Getter)
		if !ok {
			t.Fatalf("Flag %s is not a flag.Getter", name)
		}

		if got := g.Get(); got != want {
			t.Errorf("Got %s=%v, expected %t", name, got, want)
		}
	}

	if err := fs.Set("Werror", "yes"); err == nil {
		t.Error("Expected an error for a non-boolean value")
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithStandard(config.C11), nil, Options{WithGNU(false), WithWarning(config.EmptyBody, false)}}

	got := opts.LogValue().String()
	for _, want := range [...]string{"std=c11", "gnu=false", "Wempty-body=false", "nil"} {
		if !strings.Contains(got, want) {
			t.Errorf("Got %q, expected it to contain %q", got, want)
		}
	}
}
