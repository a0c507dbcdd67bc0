/*
 * sicxeasm - Symbol table
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

// SymbolTable maps a user-defined label to its absolute address. It is
// write-once after Pass 1: the Pass 1 driver owns every insertion, Pass 2
// only looks symbols up.
type SymbolTable struct {
	addresses map[string]uint32
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{addresses: make(map[string]uint32)}
}

// Insert defines name at address. Redefining an existing name fails with
// DUPLICATE_SYMBOL.
func (t *SymbolTable) Insert(name string, address uint32) error {
	if _, exists := t.addresses[name]; exists {
		return newError(ErrDuplicateSymbol, name)
	}
	t.addresses[name] = address
	return nil
}

// Lookup resolves name to its address, failing with UNKNOWN_SYMBOL if the
// name was never defined.
func (t *SymbolTable) Lookup(name string) (uint32, error) {
	address, ok := t.addresses[name]
	if !ok {
		return 0, newError(ErrUnknownSymbol, name)
	}
	return address, nil
}

// Len reports how many symbols are defined.
func (t *SymbolTable) Len() int {
	return len(t.addresses)
}

// Names returns every defined symbol name. Order is unspecified — callers
// that need a stable order (the interactive inspector's symtab dump) sort
// it themselves.
func (t *SymbolTable) Names() []string {
	names := make([]string, 0, len(t.addresses))
	for name := range t.addresses {
		names = append(names, name)
	}
	return names
}
