/*
 * sicxeasm - Pass 2 driver
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

import (
	"strconv"
	"strings"

	"sicxeasm/config/options"
	"sicxeasm/util/hex"
	"sicxeasm/util/trace"
)

// AssemblyOutput is everything Pass 2 produces: the listing text, the
// object-file text, and the final program size (for callers that want to
// report it without re-parsing the object file).
type AssemblyOutput struct {
	Listing     string
	Object      string
	ProgramSize uint32
}

// RunPass2 reproduces the Pass 1 walk, this time emitting a
// listing line per source line and accumulating object-code bytes into
// text records. symtab comes from Pass 1; base starts at opts.DefaultBase
// (0 by default) and BASE directives re-establish it as Pass 2 encounters
// them (the symbol table itself never changes in Pass 2).
func RunPass2(lines []string, symtab *SymbolTable, opts options.Options) (*AssemblyOutput, error) {
	var listing strings.Builder
	var object strings.Builder

	state := AddressState{}
	if opts.DefaultBase != 0 {
		state.Base = opts.DefaultBase
	}
	width := opts.ListingWidth

	buffer := NewObjectBuffer(state.Current)
	var programName string
	var entryAddress uint32
	var haveEntry bool

	for _, line := range lines {
		seg, isComment, err := ParseLine(line)
		if err != nil {
			return nil, err
		}
		if isComment {
			continue
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
			programName = seg.Label
			buffer = NewObjectBuffer(state.Current)
			listing.WriteString(FormatListingLine(state.Current, seg, "", width))
			listing.WriteByte('\n')
			continue

		case kind.IsEnd():
			if seg.Operand != "" {
				entryAddress, err = symtab.Lookup(seg.Operand)
				if err != nil {
					return nil, err
				}
			} else {
				entryAddress = state.Start
			}
			haveEntry = true
			listing.WriteString(FormatListingLine(state.Current, seg, "", width))
			continue

		case kind.IsBase():
			base, err := symtab.Lookup(seg.Operand)
			if err != nil {
				return nil, err
			}
			state.Base = base
			listing.WriteString(FormatListingLine(state.Current, seg, "", width))
			listing.WriteByte('\n')
			continue

		case kind.IsReserve():
			if !buffer.Empty() {
				object.WriteString(buffer.Flush(state.Current))
			}
			size, err := directiveSize(kind, seg.Operand)
			if err != nil {
				return nil, err
			}
			state.Increment = size
			listing.WriteString(FormatListingLine(state.Current, seg, "", width))
			listing.WriteByte('\n')
			state.Advance()
			buffer.recordAddress = state.Current
			continue

		case kind.IsData():
			size, value, err := byteLiteral(seg.Operand)
			if err != nil {
				return nil, err
			}
			if buffer.WouldOverflow(size) {
				object.WriteString(buffer.Flush(state.Current))
			}
			buffer.Append(size, value)
			var code strings.Builder
			hex.WriteValue(&code, value, int(size))
			listing.WriteString(FormatListingLine(state.Current, seg, code.String(), width))
			listing.WriteByte('\n')
			state.Increment = size
			state.Advance()
			continue
		}

		lookup, ok := LookupOpcode(seg.Operation)
		if !ok {
			return nil, newError(ErrIllegalOpcodeDirective, seg.Operation)
		}
		format := lookup.EffectiveFormat()
		nbytes := uint32(InstructionLength(format))

		code, err := Encode(symtab, &state, seg, format)
		if err != nil {
			return nil, err
		}

		if buffer.WouldOverflow(nbytes) {
			object.WriteString(buffer.Flush(state.Current))
		}
		buffer.Append(nbytes, code)

		var codeStr strings.Builder
		hex.WriteValue(&codeStr, code, int(nbytes))
		listing.WriteString(FormatListingLine(state.Current, seg, codeStr.String(), width))
		listing.WriteByte('\n')

		state.Increment = nbytes
		state.Advance()
		trace.Passf(2, "%s %s -> %s at %06X", seg.Operation, seg.Operand, codeStr.String(), state.Current-nbytes)
	}

	if !buffer.Empty() {
		object.WriteString(buffer.Flush(state.Current))
	}
	if !haveEntry {
		entryAddress = state.Start
	}

	size := state.Current - state.Start
	header := FormatHeaderRecord(programName, state.Start, size)
	object.WriteString(FormatEndRecord(entryAddress))

	return &AssemblyOutput{
		Listing:     listing.String(),
		Object:      header + object.String(),
		ProgramSize: size,
	}, nil
}
