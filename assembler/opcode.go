/*
 * sicxeasm - Directive and opcode tables
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

import "strings"

// DirectiveKind is a closed enumeration over the assembler directives.
// NONE means "operation is not a directive" — the caller should then try
// an opcode lookup.
type DirectiveKind int

const (
	DirNone DirectiveKind = iota
	DirStart
	DirEnd
	DirBase
	DirByte
	DirResb
	DirResw
)

var directiveTable = map[string]DirectiveKind{
	"START": DirStart,
	"END":   DirEnd,
	"BASE":  DirBase,
	"BYTE":  DirByte,
	"RESB":  DirResb,
	"RESW":  DirResw,
}

// LookupDirective recognizes a directive by exact, case-sensitive match.
func LookupDirective(operation string) DirectiveKind {
	if kind, ok := directiveTable[operation]; ok {
		return kind
	}
	return DirNone
}

func (k DirectiveKind) IsStart() bool   { return k == DirStart }
func (k DirectiveKind) IsEnd() bool     { return k == DirEnd }
func (k DirectiveKind) IsBase() bool    { return k == DirBase }
func (k DirectiveKind) IsData() bool    { return k == DirByte }
func (k DirectiveKind) IsReserve() bool { return k == DirResb || k == DirResw }

// opcodeDescriptor is the table entry for one mnemonic: the 8-bit opcode
// value (high six bits are the true opcode, low two bits are n,i and are
// zero in the table) and the instruction format (1, 2, or 3 — a leading
// '+' on the mnemonic promotes a format-3 entry to format 4 at lookup
// time, it is never stored as a separate table entry).
type opcodeDescriptor struct {
	Value  byte
	Format int
}

// opcodeTable is the SIC/XE instruction set: mnemonic -> {opcode, format}.
var opcodeTable = map[string]opcodeDescriptor{
	"ADD":    {0x18, 3},
	"ADDF":   {0x58, 3},
	"ADDR":   {0x90, 2},
	"AND":    {0x40, 3},
	"CLEAR":  {0xB4, 2},
	"COMP":   {0x28, 3},
	"COMPF":  {0x88, 3},
	"COMPR":  {0xA0, 2},
	"DIV":    {0x24, 3},
	"DIVF":   {0x64, 3},
	"DIVR":   {0x9C, 2},
	"FIX":    {0xC4, 1},
	"FLOAT":  {0xC0, 1},
	"HIO":    {0xF4, 1},
	"J":      {0x3C, 3},
	"JEQ":    {0x30, 3},
	"JGT":    {0x34, 3},
	"JLT":    {0x38, 3},
	"JSUB":   {0x48, 3},
	"LDA":    {0x00, 3},
	"LDB":    {0x68, 3},
	"LDCH":   {0x50, 3},
	"LDF":    {0x70, 3},
	"LDL":    {0x08, 3},
	"LDS":    {0x6C, 3},
	"LDT":    {0x74, 3},
	"LDX":    {0x04, 3},
	"LPS":    {0xD0, 3},
	"MUL":    {0x20, 3},
	"MULF":   {0x60, 3},
	"MULR":   {0x98, 2},
	"NORM":   {0xC8, 1},
	"OR":     {0x44, 3},
	"RD":     {0xD8, 3},
	"RMO":    {0xAC, 2},
	"RSUB":   {0x4C, 3},
	"SHIFTL": {0xA4, 2},
	"SHIFTR": {0xA8, 2},
	"SIO":    {0xF0, 1},
	"SSK":    {0xEC, 3},
	"STA":    {0x0C, 3},
	"STB":    {0x78, 3},
	"STCH":   {0x54, 3},
	"STF":    {0x80, 3},
	"STI":    {0xD4, 3},
	"STL":    {0x14, 3},
	"STS":    {0x7C, 3},
	"STSW":   {0xE8, 3},
	"STT":    {0x84, 3},
	"STX":    {0x10, 3},
	"SUB":    {0x1C, 3},
	"SUBF":   {0x5C, 3},
	"SUBR":   {0x94, 2},
	"SVC":    {0xB0, 2},
	"TD":     {0xE0, 3},
	"TIO":    {0xF8, 1},
	"TIX":    {0x2C, 3},
	"TIXR":   {0xB8, 2},
	"WD":     {0xDC, 3},
}

// registerTable maps SIC/XE register names to their encoding (used by
// Format 2 operands).
var registerTable = map[byte]int{
	'A': 0, 'X': 1, 'L': 2, 'B': 3, 'S': 4, 'T': 5,
}

// opcodeLookup is the result of an opcode table lookup: the descriptor
// plus whether the mnemonic was written with a leading '+' (format 4).
type opcodeLookup struct {
	opcodeDescriptor
	Extended bool
}

// LookupOpcode resolves a mnemonic, stripping a leading '+' to determine
// Format 4. Returns ok=false if the mnemonic is not a SIC/XE instruction.
func LookupOpcode(operation string) (opcodeLookup, bool) {
	mnemonic := operation
	extended := false
	if strings.HasPrefix(mnemonic, "+") {
		extended = true
		mnemonic = mnemonic[1:]
	}
	desc, ok := opcodeTable[mnemonic]
	if !ok {
		return opcodeLookup{}, false
	}
	return opcodeLookup{opcodeDescriptor: desc, Extended: extended}, true
}

// EffectiveFormat returns the format actually used for this statement: 4
// when a '+' prefix was present (the only way to reach format 4), else the
// table's natural format.
func (l opcodeLookup) EffectiveFormat() int {
	if l.Extended {
		return 4
	}
	return l.Format
}

// InstructionLength returns the byte length of this statement's format.
func InstructionLength(format int) int {
	return format
}

// isOpcodeOrDirectiveName reports whether name collides with any
// directive or opcode mnemonic (used to reject illegal symbol names).
func isOpcodeOrDirectiveName(name string) bool {
	if LookupDirective(name) != DirNone {
		return true
	}
	_, ok := LookupOpcode(name)
	return ok
}
