/*
 * sicxeasm - Pass 1 driver test set.
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

import "testing"

func TestRunPass1MinimalProgram(t *testing.T) {
	lines := []string{
		col("PROG", "START", "1000"),
		col("FIRST", "RSUB", ""),
		col("", "END", "FIRST"),
	}

	result, err := RunPass1(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State.Start != 0x1000 {
		t.Errorf("Start = %X, want 1000", result.State.Start)
	}
	addr, err := result.Symtab.Lookup("FIRST")
	if err != nil {
		t.Fatalf("expected FIRST to be defined: %v", err)
	}
	if addr != 0x1000 {
		t.Errorf("FIRST = %X, want 1000", addr)
	}
	if result.State.ProgramSize() != 3 {
		t.Errorf("program size = %d, want 3", result.State.ProgramSize())
	}
}

func TestRunPass1AdvancesOverByteAndReserve(t *testing.T) {
	lines := []string{
		col("PROG", "START", "0"),
		col("ONE", "BYTE", "X'F1'"),
		col("TWO", "RESW", "2"),
		col("THREE", "LDA", "ONE"),
		col("", "END", "THREE"),
	}

	result, err := RunPass1(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	one, _ := result.Symtab.Lookup("ONE")
	two, _ := result.Symtab.Lookup("TWO")
	three, _ := result.Symtab.Lookup("THREE")
	if one != 0 {
		t.Errorf("ONE = %d, want 0", one)
	}
	if two != 1 {
		t.Errorf("TWO = %d, want 1 (after one BYTE byte)", two)
	}
	if three != 7 {
		t.Errorf("THREE = %d, want 7 (after 1 + 2*3 reserved words)", three)
	}
}

func TestRunPass1IllegalSymbol(t *testing.T) {
	lines := []string{
		col("PROG", "START", "0"),
		col("LDA", "RSUB", ""),
	}
	_, err := RunPass1(lines)
	if err == nil {
		t.Fatal("expected ILLEGAL_SYMBOL error for a label matching an opcode")
	}
	if ae, ok := err.(*AssemblyError); !ok || ae.Kind != ErrIllegalSymbol {
		t.Errorf("expected ErrIllegalSymbol, got %v", err)
	}
}

func TestRunPass1DuplicateSymbol(t *testing.T) {
	lines := []string{
		col("PROG", "START", "0"),
		col("X", "RSUB", ""),
		col("X", "RSUB", ""),
	}
	_, err := RunPass1(lines)
	if err == nil {
		t.Fatal("expected DUPLICATE_SYMBOL error")
	}
	if ae, ok := err.(*AssemblyError); !ok || ae.Kind != ErrDuplicateSymbol {
		t.Errorf("expected ErrDuplicateSymbol, got %v", err)
	}
}

func TestRunPass1OverflowTakesPriorityOverBlankLine(t *testing.T) {
	// The bounds check must run before the blank/comment check on every
	// line, not after: a blank line reached once the counter has already
	// hit the address space limit must fail OUT_OF_MEMORY, not BLANK_RECORD.
	lines := []string{
		col("PROG", "START", "100000"),
		"",
	}
	_, err := RunPass1(lines)
	if err == nil {
		t.Fatal("expected OUT_OF_MEMORY error")
	}
	if ae, ok := err.(*AssemblyError); !ok || ae.Kind != ErrOutOfMemory {
		t.Errorf("expected ErrOutOfMemory, got %v", err)
	}
}

func TestRunPass1OverflowTakesPriorityOverComment(t *testing.T) {
	// A comment line normally just continues; once the counter is already
	// past the limit, the overflow must still be reported even though the
	// rest of the source is nothing but a trailing comment.
	lines := []string{
		col("PROG", "START", "100000"),
		"# trailing remark",
	}
	_, err := RunPass1(lines)
	if err == nil {
		t.Fatal("expected OUT_OF_MEMORY error despite the remaining line being a comment")
	}
	if ae, ok := err.(*AssemblyError); !ok || ae.Kind != ErrOutOfMemory {
		t.Errorf("expected ErrOutOfMemory, got %v", err)
	}
}

func TestRunPass1UnknownOperation(t *testing.T) {
	lines := []string{
		col("PROG", "START", "0"),
		col("", "NOTANOPCODE", ""),
	}
	_, err := RunPass1(lines)
	if err == nil {
		t.Fatal("expected ILLEGAL_OPCODE_DIRECTIVE error")
	}
}
