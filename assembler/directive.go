/*
 * sicxeasm - Directive operand sizing
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
)

// directiveSize returns the byte size a directive's operand occupies in
// the location counter. BASE and END contribute nothing.
func directiveSize(kind DirectiveKind, operand string) (uint32, error) {
	switch kind {
	case DirBase, DirEnd:
		return 0, nil
	case DirByte:
		size, _, err := byteLiteral(operand)
		return size, err
	case DirResb:
		n, err := strconv.ParseUint(operand, 10, 32)
		if err != nil {
			return 0, newError(ErrIllegalOpcodeDirective, operand)
		}
		return uint32(n), nil
	case DirResw:
		n, err := strconv.ParseUint(operand, 10, 32)
		if err != nil {
			return 0, newError(ErrIllegalOpcodeDirective, operand)
		}
		return uint32(n) * 3, nil
	default:
		return 0, nil
	}
}

// byteLiteral parses a BYTE operand, X'hh...h' or C'c1c2...cn', returning
// its size in bytes and its value packed big-endian into a uint32. A
// hex literal must have an even digit count.
func byteLiteral(operand string) (size uint32, value uint32, err error) {
	if len(operand) < 3 || operand[1] != '\'' || operand[len(operand)-1] != '\'' {
		return 0, 0, newError(ErrOutOfRangeByte, operand)
	}
	body := operand[2 : len(operand)-1]

	switch operand[0] {
	case 'X':
		if len(body)%2 != 0 || len(body) == 0 {
			return 0, 0, newError(ErrOutOfRangeByte, operand)
		}
		n, convErr := strconv.ParseUint(body, 16, 32)
		if convErr != nil {
			return 0, 0, newError(ErrOutOfRangeByte, operand)
		}
		return uint32(len(body) / 2), uint32(n), nil
	case 'C':
		if len(body) == 0 {
			return 0, 0, newError(ErrOutOfRangeByte, operand)
		}
		var packed uint32
		for i := range len(body) {
			packed = (packed << 8) | uint32(body[i])
		}
		return uint32(len(body)), packed, nil
	default:
		return 0, 0, newError(ErrOutOfRangeByte, operand)
	}
}

// byteLiteralKind reports a BYTE operand's literal kind ('X' or 'C')
// without re-parsing its value.
func byteLiteralKind(operand string) byte {
	if len(operand) == 0 {
		return 0
	}
	return operand[0]
}
