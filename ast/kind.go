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

package ast

//go:generate go tool stringer -type Kind -linecomment

// Kind identifies the statement variant of a [Stmt].
type Kind uint8

const (
	KindExpr         Kind = iota // expression
	KindNull                     // null
	KindDecl                     // declaration
	KindCompound                 // compound
	KindIf                       // if
	KindSwitch                   // switch
	KindCase                     // case
	KindDefault                  // default
	KindWhile                    // while
	KindDo                       // do
	KindFor                      // for
	KindForEach                  // for-each
	KindGoto                     // goto
	KindIndirectGoto             // indirect-goto
	KindLabel                    // label
	KindContinue                 // continue
	KindBreak                    // break
	KindReturn                   // return
	KindAsm                      // asm
	KindTry                      // try
	KindCatch                    // catch
	KindFinally                  // finally
	KindThrow                    // throw
)

func (*ExprStmt) Kind() Kind         { return KindExpr }
func (*NullStmt) Kind() Kind         { return KindNull }
func (*DeclStmt) Kind() Kind         { return KindDecl }
func (*CompoundStmt) Kind() Kind     { return KindCompound }
func (*IfStmt) Kind() Kind           { return KindIf }
func (*SwitchStmt) Kind() Kind       { return KindSwitch }
func (*CaseStmt) Kind() Kind         { return KindCase }
func (*DefaultStmt) Kind() Kind      { return KindDefault }
func (*WhileStmt) Kind() Kind        { return KindWhile }
func (*DoStmt) Kind() Kind           { return KindDo }
func (*ForStmt) Kind() Kind          { return KindFor }
func (*ForEachStmt) Kind() Kind      { return KindForEach }
func (*GotoStmt) Kind() Kind         { return KindGoto }
func (*IndirectGotoStmt) Kind() Kind { return KindIndirectGoto }
func (*LabelStmt) Kind() Kind        { return KindLabel }
func (*ContinueStmt) Kind() Kind     { return KindContinue }
func (*BreakStmt) Kind() Kind        { return KindBreak }
func (*ReturnStmt) Kind() Kind       { return KindReturn }
func (*AsmStmt) Kind() Kind          { return KindAsm }
func (*TryStmt) Kind() Kind          { return KindTry }
func (*CatchStmt) Kind() Kind        { return KindCatch }
func (*FinallyStmt) Kind() Kind      { return KindFinally }
func (*ThrowStmt) Kind() Kind        { return KindThrow }
