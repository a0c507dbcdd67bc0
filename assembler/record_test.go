/*
 * sicxeasm - Object record emitter test set.
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

func TestFormatHeaderRecord(t *testing.T) {
	got := FormatHeaderRecord("PROG", 0x1000, 3)
	want := "HPROG  001000000003\n"
	if got != want {
		t.Errorf("FormatHeaderRecord = %q, want %q", got, want)
	}
}

func TestFormatHeaderRecordNameTruncated(t *testing.T) {
	got := FormatHeaderRecord("VERYLONGNAME", 0, 0)
	want := "HVERYLO000000000000\n"
	if got != want {
		t.Errorf("FormatHeaderRecord = %q, want %q", got, want)
	}
}

func TestFormatTextRecord(t *testing.T) {
	got := FormatTextRecord(0x1000, 3, []recordEntry{{size: 3, value: 0x4F0000}})
	want := "T001000034F0000\n"
	if got != want {
		t.Errorf("FormatTextRecord = %q, want %q", got, want)
	}
}

func TestFormatEndRecordNoNewline(t *testing.T) {
	got := FormatEndRecord(0x1000)
	want := "E001000"
	if got != want {
		t.Errorf("FormatEndRecord = %q, want %q", got, want)
	}
}

func TestObjectBufferOverflowFlush(t *testing.T) {
	buf := NewObjectBuffer(0)
	for i := 0; i < 7; i++ {
		if buf.WouldOverflow(4) {
			t.Fatalf("unexpected overflow at entry %d", i)
		}
		buf.Append(4, 0)
	}
	if !buf.WouldOverflow(4) {
		t.Fatal("expected overflow after 28 bytes + 4 more")
	}
	record := buf.Flush(28)
	if buf.recordAddress != 28 {
		t.Errorf("recordAddress after flush = %d, want 28", buf.recordAddress)
	}
	if !buf.Empty() {
		t.Error("expected buffer empty after flush")
	}
	if record == "" {
		t.Error("expected non-empty flushed record")
	}
}

func TestObjectBufferFlushEmptyIsNoop(t *testing.T) {
	buf := NewObjectBuffer(100)
	record := buf.Flush(200)
	if record != "" {
		t.Errorf("expected empty flush to produce no record, got %q", record)
	}
	if buf.recordAddress != 200 {
		t.Errorf("recordAddress = %d, want 200", buf.recordAddress)
	}
}

func TestFormatModificationRecordShape(t *testing.T) {
	got := FormatModificationRecord(0x1003, 5)
	want := "M00100305"
	if got != want {
		t.Errorf("FormatModificationRecord = %q, want %q", got, want)
	}
}

func TestExactly30ByteRecordNoFlush(t *testing.T) {
	buf := NewObjectBuffer(0)
	for i := 0; i < 10; i++ {
		buf.Append(3, 0)
	}
	if buf.WouldOverflow(0) {
		t.Fatal("a record holding exactly 30 bytes must not itself overflow")
	}
	if buf.WouldOverflow(1) {
		// expected: one more byte does overflow
	} else {
		t.Error("expected adding one more byte to a full 30-byte record to overflow")
	}
}
