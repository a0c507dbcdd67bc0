/*
 * sicxeasm - Assembly error kinds
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package assembler

import "fmt"

// ErrorKind enumerates the fatal error conditions the assembler can raise.
type ErrorKind int

const (
	ErrMissingArguments ErrorKind = iota + 1
	ErrFileNotFound
	ErrBlankRecord
	ErrIllegalSymbol
	ErrIllegalOpcodeDirective
	ErrDuplicateSymbol
	ErrUnknownSymbol
	ErrOutOfRangeByte
	ErrAddressOutOfRange
	ErrOutOfMemory
)

var kindNames = map[ErrorKind]string{
	ErrMissingArguments:       "MISSING_COMMAND_LINE_ARGUMENTS",
	ErrFileNotFound:           "FILE_NOT_FOUND",
	ErrBlankRecord:            "BLANK_RECORD",
	ErrIllegalSymbol:          "ILLEGAL_SYMBOL",
	ErrIllegalOpcodeDirective: "ILLEGAL_OPCODE_DIRECTIVE",
	ErrDuplicateSymbol:        "DUPLICATE_SYMBOL",
	ErrUnknownSymbol:          "UNKNOWN_SYMBOL",
	ErrOutOfRangeByte:         "OUT_OF_RANGE_BYTE",
	ErrAddressOutOfRange:      "ADDRESS_OUT_OF_RANGE",
	ErrOutOfMemory:            "OUT_OF_MEMORY",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN_ERROR"
}

// AssemblyError is a fatal assembler error: a kind plus the offending
// token. All assembler errors terminate the pass immediately — there is
// no recovery or partial-output semantics.
type AssemblyError struct {
	Kind  ErrorKind
	Token string
}

func (e *AssemblyError) Error() string {
	if e.Token == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Token)
}

func newError(kind ErrorKind, token string) *AssemblyError {
	return &AssemblyError{Kind: kind, Token: token}
}
