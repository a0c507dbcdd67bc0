/*
 * sicxeasm - SIC/XE instruction encoder
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

	"sicxeasm/util/trace"
)

// PC-relative and base-relative displacement ranges.
const (
	pcRelMin   = -2048
	pcRelMax   = 2047
	baseRelMax = 4095
)

const (
	flagN = 0x20
	flagI = 0x10
	flagX = 0x08
	flagB = 0x04
	flagP = 0x02
	flagE = 0x01
)

// addressingMode is the result of stripping an operand's addressing-mode
// decoration (#, @, ,X).
type addressingMode struct {
	operand string
	n, i, x int
}

// parseOperand strips the addressing-mode prefix (# immediate, @
// indirect, neither simple) and the trailing ,X indexed suffix. The
// encoder permits any flag combination the syntax implies — semantic
// validation (e.g. immediate+indexed in strict SIC/XE) is left to an
// external layer.
func parseOperand(operand string) addressingMode {
	mode := addressingMode{operand: operand, n: 1, i: 1}

	switch {
	case strings.HasPrefix(operand, "#"):
		mode.n, mode.i = 0, 1
		mode.operand = operand[1:]
	case strings.HasPrefix(operand, "@"):
		mode.n, mode.i = 1, 0
		mode.operand = operand[1:]
	}

	if strings.HasSuffix(mode.operand, ",X") {
		mode.x = 1
		mode.operand = mode.operand[:len(mode.operand)-2]
	}
	return mode
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Encode computes the object code for a single instruction statement.
// It is a pure function of its arguments: no side effects beyond the
// returned value and error, which makes it unit-testable with
// hand-constructed symbol tables.
func Encode(symtab *SymbolTable, state *AddressState, seg Segment, format int) (uint32, error) {
	lookup, ok := LookupOpcode(seg.Operation)
	if !ok {
		return 0, newError(ErrIllegalOpcodeDirective, seg.Operation)
	}
	opcodeHigh6 := lookup.Value & 0xFC

	switch format {
	case 1:
		return uint32(lookup.Value), nil
	case 2:
		return encodeFormat2(opcodeHigh6|lookup.Value&0x03, seg.Operand)
	default:
	}

	if seg.Operand == "" {
		trace.Encodef(seg.Operation, "no operand, emitting bare instruction (RSUB-style)")
		return uint32(opcodeHigh6|0x03) << 16, nil
	}

	mode := parseOperand(seg.Operand)
	byte1 := uint32(opcodeHigh6) | uint32(mode.n<<1) | uint32(mode.i)

	if mode.i == 1 && mode.n == 0 && isDecimal(mode.operand) {
		value, err := strconv.ParseUint(mode.operand, 10, 32)
		if err != nil {
			return 0, newError(ErrUnknownSymbol, mode.operand)
		}
		if format == 4 {
			trace.Encodef(seg.Operation, "immediate numeric operand %d, format 4", value)
			return (byte1 << 24) | (0x10 << 16) | ((uint32(value) >> 8) << 8) | (uint32(value) & 0xFF), nil
		}
		trace.Encodef(seg.Operation, "immediate numeric operand %d, format 3", value)
		return (byte1 << 16) | (uint32(value) & 0xFFF), nil
	}

	if format == 4 {
		return encodeFormat4(symtab, byte1, mode)
	}

	return encodeFormat3(symtab, state, byte1, mode)
}

func encodeFormat2(opcodeLow byte, operand string) (uint32, error) {
	regs := strings.Split(operand, ",")
	reg1, err := registerCode(strings.TrimSpace(regs[0]))
	if err != nil {
		return 0, err
	}
	reg2 := 0
	if len(regs) > 1 && strings.TrimSpace(regs[1]) != "" {
		reg2, err = registerCode(strings.TrimSpace(regs[1]))
		if err != nil {
			return 0, err
		}
	}
	return (uint32(opcodeLow) << 8) | (uint32(reg1) << 4) | uint32(reg2), nil
}

func registerCode(name string) (int, error) {
	if len(name) != 1 {
		return 0, newError(ErrIllegalOpcodeDirective, name)
	}
	code, ok := registerTable[name[0]]
	if !ok {
		return 0, newError(ErrIllegalOpcodeDirective, name)
	}
	return code, nil
}

func encodeFormat4(symtab *SymbolTable, byte1 uint32, mode addressingMode) (uint32, error) {
	target, err := symtab.Lookup(mode.operand)
	if err != nil {
		return 0, err
	}
	flags := uint32(mode.x<<3) | flagE
	return (byte1 << 24) |
		((flags<<4 | (target>>16)&0xF) << 16) |
		((target >> 8) & 0xFF << 8) |
		(target & 0xFF), nil
}

func encodeFormat3(symtab *SymbolTable, state *AddressState, byte1 uint32, mode addressingMode) (uint32, error) {
	target, err := symtab.Lookup(mode.operand)
	if err != nil {
		return 0, err
	}

	nextPC := int64(state.Current) + 3
	diff := int64(target) - nextPC
	if diff >= pcRelMin && diff <= pcRelMax {
		trace.Encodef(mode.operand, "PC-relative, disp=%d", diff)
		flags := uint32(mode.x<<3) | flagP
		disp := uint32(diff) & 0xFFF
		return (byte1 << 16) | ((flags<<4 | (disp>>8)&0xF) << 8) | (disp & 0xFF), nil
	}

	bdisp := int64(target) - int64(state.Base)
	if bdisp >= 0 && bdisp <= baseRelMax {
		trace.Encodef(mode.operand, "base-relative, disp=%d (base=%06X)", bdisp, state.Base)
		flags := uint32(mode.x<<3) | flagB
		disp := uint32(bdisp)
		return (byte1 << 16) | ((flags<<4 | (disp>>8)&0xF) << 8) | (disp & 0xFF), nil
	}

	return 0, newError(ErrAddressOutOfRange, mode.operand)
}
