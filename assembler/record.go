/*
 * sicxeasm - Object record emitters
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

// maxTextRecordBytes is the largest a single text record's entries may sum
// to before a flush is forced.
const maxTextRecordBytes = 30

// recordEntry is one packed value inside a text record: value occupies
// exactly size bytes when serialized.
type recordEntry struct {
	size  uint32
	value uint32
}

// ObjectBuffer accumulates one text record's worth of entries. The Pass 2
// driver owns a single buffer, flushing it to a text record whenever a
// reserve directive or a would-overflow append forces a break.
type ObjectBuffer struct {
	recordAddress uint32
	byteCount     uint32
	entries       []recordEntry
}

// NewObjectBuffer starts an empty buffer whose first entry will land at
// addr.
func NewObjectBuffer(addr uint32) *ObjectBuffer {
	return &ObjectBuffer{recordAddress: addr}
}

// Empty reports whether the buffer holds no entries.
func (b *ObjectBuffer) Empty() bool {
	return len(b.entries) == 0
}

// WouldOverflow reports whether appending size more bytes would exceed the
// 30-byte text-record limit.
func (b *ObjectBuffer) WouldOverflow(size uint32) bool {
	return b.byteCount+size > maxTextRecordBytes
}

// Append adds one entry. Callers must check WouldOverflow and flush first.
func (b *ObjectBuffer) Append(size, value uint32) {
	b.entries = append(b.entries, recordEntry{size: size, value: value})
	b.byteCount += size
}

// Flush serializes the buffer as a T record (empty string if the buffer
// holds no entries) and resets it to start fresh at nextAddress.
func (b *ObjectBuffer) Flush(nextAddress uint32) string {
	if b.Empty() {
		b.recordAddress = nextAddress
		return ""
	}
	record := FormatTextRecord(b.recordAddress, b.byteCount, b.entries)
	b.recordAddress = nextAddress
	b.byteCount = 0
	b.entries = nil
	return record
}

// FormatHeaderRecord builds the H record: name padded/truncated to 6
// characters, 6-hex-digit start, 6-hex-digit program size.
func FormatHeaderRecord(name string, start, size uint32) string {
	var b strings.Builder
	b.WriteByte('H')
	b.WriteString(padName(name))
	hex.WriteAddr(&b, start)
	hex.WriteValue(&b, size, 3)
	b.WriteByte('\n')
	return b.String()
}

// FormatTextRecord builds a single T record from a record address, byte
// count, and the ordered entries it covers.
func FormatTextRecord(addr, byteCount uint32, entries []recordEntry) string {
	var b strings.Builder
	b.WriteByte('T')
	hex.WriteAddr(&b, addr)
	hex.WriteByteCount(&b, int(byteCount))
	for _, e := range entries {
		hex.WriteValue(&b, e.value, int(e.size))
	}
	b.WriteByte('\n')
	return b.String()
}

// FormatEndRecord builds the E record: no trailing newline.
func FormatEndRecord(entry uint32) string {
	var b strings.Builder
	b.WriteByte('E')
	hex.WriteAddr(&b, entry)
	return b.String()
}

// FormatModificationRecord builds an M record shape for a format-4
// symbolic reference: an M record where a later, multi-control-section
// pass could resolve load-time relocation. RunPass2 never calls this —
// sicxeasm assembles a single control section, so there is nothing to
// relocate — but the shape is kept so options.EmitModification has
// somewhere to plug in if multi-CSECT support is ever added.
func FormatModificationRecord(addr uint32, halfByteCount int) string {
	var b strings.Builder
	b.WriteByte('M')
	hex.WriteAddr(&b, addr)
	hex.WriteByteCount(&b, halfByteCount)
	return b.String()
}

func padName(name string) string {
	if len(name) >= 6 {
		return name[:6]
	}
	return name + strings.Repeat(" ", 6-len(name))
}
