/*
 * sicxeasm - Fixed-column line segmenter
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

// ColumnWidth is the shared field width the fixed-column source layout is
// built from: label occupies columns 1..ColumnWidth-1, operation occupies
// ColumnWidth..2*ColumnWidth-2, operand occupies 2*ColumnWidth-1..3*ColumnWidth-3.
// Every component that cares about column positions imports this one
// constant so the Segmenter can never drift out of step with a consumer.
const ColumnWidth = 9

const fieldWidth = ColumnWidth - 1

// Segment is a parsed source line: label, operation, and operand, each
// trimmed of trailing spaces. Segments are transient — produced per line,
// consumed immediately, never stored.
type Segment struct {
	Label     string
	Operation string
	Operand   string
}

// CommentMarker starts a comment line; the whole line is skipped.
const CommentMarker = '#'

// ParseLine splits one fixed-column source line into a Segment. isComment
// reports a '#'-prefixed line (the caller should skip it, not an error).
// A line whose first byte is a control character (ASCII < 32) is a
// BLANK_RECORD error.
func ParseLine(line string) (seg Segment, isComment bool, err error) {
	if line == "" || line[0] < 32 {
		return Segment{}, false, newError(ErrBlankRecord, line)
	}
	if line[0] == CommentMarker {
		return Segment{}, true, nil
	}

	padded := line
	if len(padded) < fieldWidth*3 {
		padded += strings.Repeat(" ", fieldWidth*3-len(padded))
	}

	seg.Label = trimField(padded[0:fieldWidth])
	seg.Operation = trimField(padded[fieldWidth : fieldWidth*2])
	seg.Operand = trimField(padded[fieldWidth*2 : fieldWidth*3])
	return seg, false, nil
}

// trimField drops trailing spaces only — the column layout is fixed width,
// so nothing but padding ever trails a field's real content.
func trimField(field string) string {
	return strings.TrimRight(field, " ")
}
