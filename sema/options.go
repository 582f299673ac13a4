// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package sema

import (
	"log/slog"

	"fillmore-labs.com/stmtsema/internal/config"
	"fillmore-labs.com/stmtsema/target"
)

// Option configures specific behavior of a [New] statement checker.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithStandard is an [Option] to select the language standard.
func WithStandard(std config.Standard) Option { return standardOption{std: std} }

type standardOption struct{ std config.Standard }

func (o standardOption) apply(r *runOptions) { r.std = o.std }

func (o standardOption) LogAttr() slog.Attr { return slog.String("std", o.std.String()) }

// WithGNU is an [Option] to accept GNU extensions silently.
func WithGNU(gnu bool) Option { return languageOption{flag: config.GNU, name: "gnu", value: gnu} }

// WithPedantic is an [Option] to report uses of language extensions.
func WithPedantic(pedantic bool) Option {
	return languageOption{flag: config.Pedantic, name: "pedantic", value: pedantic}
}

// WithPedanticErrors is an [Option] to report uses of language extensions as errors.
func WithPedanticErrors(pedanticErrors bool) Option {
	return languageOption{flag: config.PedanticErrors, name: "pedantic-errors", value: pedanticErrors}
}

// WithWarningsAsErrors is an [Option] to report warnings as errors.
func WithWarningsAsErrors(werror bool) Option {
	return languageOption{flag: config.WarningsAsErrors, name: "Werror", value: werror}
}

type languageOption struct {
	flag  config.Language
	name  string
	value bool
}

func (o languageOption) apply(r *runOptions) { r.language.Set(o.flag, o.value) }

func (o languageOption) LogAttr() slog.Attr { return slog.Bool(o.name, o.value) }

// WithWarning is an [Option] to enable or disable a warning group.
func WithWarning(w config.Warning, enabled bool) Option { return warningOption{warning: w, enabled: enabled} }

type warningOption struct {
	warning config.Warning
	enabled bool
}

func (o warningOption) apply(r *runOptions) { r.warnings.Set(o.warning, o.enabled) }

func (o warningOption) LogAttr() slog.Attr {
	return slog.Bool("W"+warningName(o.warning), o.enabled)
}

// WithTarget is an [Option] to select the target platform for inline assembly checks.
func WithTarget(t target.Info) Option { return targetOption{target: t} }

type targetOption struct{ target target.Info }

func (o targetOption) apply(r *runOptions) {
	if o.target != nil {
		r.target = o.target
	}
}

func (o targetOption) LogAttr() slog.Attr {
	if o.target == nil {
		return slog.String("target", "<nil>")
	}

	return slog.String("target", o.target.Name())
}

// WithLogger is an [Option] to set the logger for checker events.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	if o.logger != nil {
		r.logger = o.logger
	}
}

func (o loggerOption) LogAttr() slog.Attr { return slog.Bool("logger", o.logger != nil) }
