/*
 * sicxeasm - Listing line formatter
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
	"strings"

	"sicxeasm/util/hex"
)

// listingFieldWidth is the minimum column width each listing field is
// padded out to, shared with the Segmenter's column layout.
const listingFieldWidth = fieldWidth

// FormatListingLine renders one listing line: an 8-hex-digit address
// followed by label, operation, and operand columns, each left-justified
// and at least width wide (width <= 0 falls back to listingFieldWidth, the
// built-in default). When objectCode is non-empty it is appended as a
// final column, uppercase hex.
func FormatListingLine(addr uint32, seg Segment, objectCode string, width int) string {
	if width <= 0 {
		width = listingFieldWidth
	}
	var b strings.Builder
	hex.WriteDigits(&b, addr, 8)
	b.WriteByte(' ')
	writeField(&b, seg.Label, width)
	writeField(&b, seg.Operation, width)
	writeField(&b, seg.Operand, width)
	if objectCode != "" {
		b.WriteByte(' ')
		b.WriteString(objectCode)
	}
	return strings.TrimRight(b.String(), " ")
}

func writeField(b *strings.Builder, field string, width int) {
	b.WriteString(field)
	for range max(0, width-len(field)) {
		b.WriteByte(' ')
	}
}
