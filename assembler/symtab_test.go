/*
 * sicxeasm - Symbol table test set.
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

func TestSymbolTableInsertLookup(t *testing.T) {
	symtab := NewSymbolTable()
	if err := symtab.Insert("BUFFER", 0x1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	addr, err := symtab.Lookup("BUFFER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr != 0x1000 {
		t.Errorf("Lookup(BUFFER) = %#x, want 0x1000", addr)
	}
}

func TestSymbolTableDuplicate(t *testing.T) {
	symtab := NewSymbolTable()
	if err := symtab.Insert("BUFFER", 0x1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := symtab.Insert("BUFFER", 0x2000)
	if err == nil {
		t.Fatal("expected DUPLICATE_SYMBOL error")
	}
	if ae, ok := err.(*AssemblyError); !ok || ae.Kind != ErrDuplicateSymbol {
		t.Errorf("expected ErrDuplicateSymbol, got %v", err)
	}
}

func TestSymbolTableUnknown(t *testing.T) {
	symtab := NewSymbolTable()
	_, err := symtab.Lookup("NOWHERE")
	if err == nil {
		t.Fatal("expected UNKNOWN_SYMBOL error")
	}
	if ae, ok := err.(*AssemblyError); !ok || ae.Kind != ErrUnknownSymbol {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestSymbolTableLenAndNames(t *testing.T) {
	symtab := NewSymbolTable()
	_ = symtab.Insert("A", 1)
	_ = symtab.Insert("B", 2)
	if symtab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", symtab.Len())
	}
	names := symtab.Names()
	if len(names) != 2 {
		t.Errorf("Names() = %v, want 2 entries", names)
	}
}
