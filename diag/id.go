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

package diag

import "fillmore-labs.com/stmtsema/internal/config"

// ID identifies a diagnostic.
type ID uint8

//go:generate go tool stringer -type ID -linecomment

const (
	InternalError            ID = iota // internal-error
	DuplicateCase                      // duplicate-case
	PreviousCase                       // previous-case
	MultipleDefault                    // multiple-default
	FirstLabel                         // first-label
	CaseEmptyRange                     // case-empty-range
	CaseOverflow                       // case-overflow
	CaseNotConstant                    // case-not-constant
	CaseNotInSwitch                    // case-not-in-switch
	DefaultNotInSwitch                 // default-not-in-switch
	GNUCaseRange                       // gnu-case-range
	RedefinitionOfLabel                // redefinition-of-label
	PreviousDefinition                 // previous-definition
	UndeclaredLabel                    // undeclared-label
	RequiresScalar                     // requires-scalar
	RequiresInteger                    // requires-integer
	EmptyBody                          // empty-body
	MixedDeclarations                  // mixed-declarations
	UnusedValue                        // unused-value
	NonVariableDeclInFor               // non-variable-decl-in-for
	ContinueNotInLoop                  // continue-not-in-loop
	BreakNotInLoopOrSwitch             // break-not-in-loop-or-switch
	ReturnHasExpr                      // return-has-expr
	ReturnMissingExpr                  // return-missing-expr
	ReturnMissingExprC90               // return-missing-expr-c90
	ReturnMissingExprCXX               // return-missing-expr-cxx
	ReturnIncompatible                 // return-incompatible
	ReturnPointerFromInt               // return-pointer-from-int
	ReturnIntFromPointer               // return-int-from-pointer
	ReturnIncompatiblePointer          // return-incompatible-pointer
	ReturnDiscardsQualifiers           // return-discards-qualifiers
	ReturnStackAddress                 // return-stack-address
	InvalidOutputConstraint            // invalid-output-constraint
	InvalidLvalueInAsmOutput           // invalid-lvalue-in-asm-output
	InvalidInputConstraint             // invalid-input-constraint
	InvalidTypeInAsmInput              // invalid-type-in-asm-input
	UnknownRegisterName                // unknown-register-name
)

type info struct {
	class  Class
	group  config.Warning // zero when the diagnostic cannot be disabled
	format string
}

var infos = [...]info{
	InternalError:             {Error, 0, "internal error: %s"},
	DuplicateCase:             {Error, 0, "duplicate case value '%s'"},
	PreviousCase:              {ClassNote, 0, "previous case defined here"},
	MultipleDefault:           {Error, 0, "multiple default labels in one switch"},
	FirstLabel:                {ClassNote, 0, "first label is here"},
	CaseEmptyRange:            {Warning, config.EmptyRange, "empty case range specified"},
	CaseOverflow:              {Warning, config.CaseOverflow, "overflow converting case value to switch condition type (%s to %s)"},
	CaseNotConstant:           {Error, 0, "case label does not reduce to an integer constant"},
	CaseNotInSwitch:           {Error, 0, "'case' statement not in switch statement"},
	DefaultNotInSwitch:        {Error, 0, "'default' statement not in switch statement"},
	GNUCaseRange:              {Extension, 0, "use of GNU case range extension"},
	RedefinitionOfLabel:       {Error, 0, "redefinition of label '%s'"},
	PreviousDefinition:        {ClassNote, 0, "previous definition is here"},
	UndeclaredLabel:           {Error, 0, "use of undeclared label '%s'"},
	RequiresScalar:            {Error, 0, "statement requires expression of scalar type ('%s' invalid)"},
	RequiresInteger:           {Error, 0, "statement requires expression of integer type ('%s' invalid)"},
	EmptyBody:                 {Warning, config.EmptyBody, "if statement has empty body"},
	MixedDeclarations:         {Extension, 0, "mixing declarations and code is a C99 extension"},
	UnusedValue:               {Warning, config.UnusedValue, "expression result unused"},
	NonVariableDeclInFor:      {Error, 0, "declaration of non-local variable '%s' in 'for' loop"},
	ContinueNotInLoop:         {Error, 0, "'continue' statement not in loop statement"},
	BreakNotInLoopOrSwitch:    {Error, 0, "'break' statement not in loop or switch statement"},
	ReturnHasExpr:             {ExtWarn, 0, "void function '%s' should not return a value"},
	ReturnMissingExpr:         {ExtWarn, 0, "non-void function '%s' should return a value"},
	ReturnMissingExprC90:      {Warning, config.MissingReturnValue, "non-void function '%s' should return a value"},
	ReturnMissingExprCXX:      {Error, 0, "non-void function '%s' should return a value"},
	ReturnIncompatible:        {Error, 0, "returning '%s' from a function with incompatible result type '%s'"},
	ReturnPointerFromInt:      {ExtWarn, 0, "incompatible integer to pointer conversion returning '%s' from a function with result type '%s'"},
	ReturnIntFromPointer:      {ExtWarn, 0, "incompatible pointer to integer conversion returning '%s' from a function with result type '%s'"},
	ReturnIncompatiblePointer: {ExtWarn, 0, "incompatible pointer types returning '%s' from a function with result type '%s'"},
	ReturnDiscardsQualifiers:  {ExtWarn, 0, "returning '%s' from a function with result type '%s' discards qualifiers"},
	ReturnStackAddress:        {Warning, config.ReturnStackAddress, "address of stack memory associated with local variable '%s' returned"},
	InvalidOutputConstraint:   {Error, 0, "invalid output constraint '%s' in asm"},
	InvalidLvalueInAsmOutput:  {Error, 0, "invalid lvalue in asm output"},
	InvalidInputConstraint:    {Error, 0, "invalid input constraint '%s' in asm"},
	InvalidTypeInAsmInput:     {Error, 0, "invalid type '%s' in asm input"},
	UnknownRegisterName:       {Error, 0, "unknown register name '%s' in asm"},
}

// Class returns the default class of id.
func (id ID) Class() Class { return infos[id].class }

// Group returns the warning group controlling id, or zero.
func (id ID) Group() config.Warning { return infos[id].group }
