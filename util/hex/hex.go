/*
 * sicxeasm - Fixed-width hex rendering
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

// Package hex renders unsigned integers as fixed-width, zero-padded,
// uppercase hexadecimal directly into a strings.Builder, the way the
// listing and object-record emitters need them (no fmt.Sprintf allocation
// per field).
package hex

import "strings"

var hexMap = "0123456789ABCDEF"

// WriteDigits writes exactly digits hex characters of value, most
// significant nibble first, zero padded. Digits beyond value's width are
// simply zero; digits narrower than value's width truncate the high bits.
func WriteDigits(str *strings.Builder, value uint32, digits int) {
	shift := (digits - 1) * 4
	for range digits {
		str.WriteByte(hexMap[(value>>shift)&0xf])
		shift -= 4
	}
}

// WriteAddr writes a 20-bit SIC/XE address as 6 hex digits (%06X).
func WriteAddr(str *strings.Builder, addr uint32) {
	WriteDigits(str, addr, 6)
}

// WriteByteCount writes a text-record byte count as 2 hex digits (%02X).
func WriteByteCount(str *strings.Builder, count int) {
	WriteDigits(str, uint32(count), 2)
}

// WriteValue writes an object-code or BYTE-literal value using exactly
// size*2 hex digits, the width its byte length demands.
func WriteValue(str *strings.Builder, value uint32, size int) {
	WriteDigits(str, value, size*2)
}
