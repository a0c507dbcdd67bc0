/*
 * sicxeasm - Pass 1 driver
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

import "strconv"

// Pass1Result is what Pass 1 hands to Pass 2: the populated symbol table
// and the address state at end of source (start, final current, base is
// always 0 here — BASE is re-resolved fresh in Pass 2).
type Pass1Result struct {
	Symtab *SymbolTable
	State  AddressState
}

// RunPass1 walks source exactly once: assign every label an
// address, classify each operation to compute its byte increment, and
// advance the location counter. It never invokes the Encoder — object code
// is entirely a Pass 2 concern.
func RunPass1(lines []string) (*Pass1Result, error) {
	symtab := NewSymbolTable()
	state := AddressState{}

	for _, line := range lines {
		if err := state.CheckBounds(); err != nil {
			return nil, err
		}

		seg, isComment, err := ParseLine(line)
		if err != nil {
			return nil, err
		}
		if isComment {
			continue
		}

		if seg.Label != "" && isOpcodeOrDirectiveName(seg.Label) {
			return nil, newError(ErrIllegalSymbol, seg.Label)
		}

		kind := LookupDirective(seg.Operation)
		switch {
		case kind.IsStart():
			addr, err := strconv.ParseUint(seg.Operand, 16, 32)
			if err != nil {
				return nil, newError(ErrIllegalOpcodeDirective, seg.Operand)
			}
			state.Start = uint32(addr)
			state.Current = uint32(addr)
			continue
		case kind != DirNone:
			size, err := directiveSize(kind, seg.Operand)
			if err != nil {
				return nil, err
			}
			state.Increment = size
		default:
			lookup, ok := LookupOpcode(seg.Operation)
			if !ok {
				return nil, newError(ErrIllegalOpcodeDirective, seg.Operation)
			}
			state.Increment = uint32(lookup.EffectiveFormat())
		}

		if seg.Label != "" {
			if err := symtab.Insert(seg.Label, state.Current); err != nil {
				return nil, err
			}
		}

		state.Advance()
	}

	return &Pass1Result{Symtab: symtab, State: state}, nil
}
