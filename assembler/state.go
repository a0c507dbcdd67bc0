/*
 * sicxeasm - Address state
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

// AddressSpaceLimit is the SIC/XE address space limit; the location
// counter must never reach it.
const AddressSpaceLimit = 0x100000

// AddressState holds the four mutable fields a pass threads through every
// line: the program origin, the running location counter, the byte size
// of the statement currently being processed, and the address the BASE
// directive last pointed at (0 until BASE is first issued).
type AddressState struct {
	Start     uint32
	Current   uint32
	Increment uint32
	Base      uint32
}

// CheckBounds fails with OUT_OF_MEMORY once the location counter reaches
// the SIC/XE address space limit.
func (s *AddressState) CheckBounds() error {
	if s.Current >= AddressSpaceLimit {
		return newError(ErrOutOfMemory, hexWord(s.Current))
	}
	return nil
}

// Advance adds the current increment to the location counter.
func (s *AddressState) Advance() {
	s.Current += s.Increment
}

// ProgramSize returns current - start, the program's total byte size.
func (s *AddressState) ProgramSize() uint32 {
	return s.Current - s.Start
}

func hexWord(v uint32) string {
	const digits = "0123456789ABCDEF"
	buf := [8]byte{}
	for i := 7; i >= 0; i-- {
		buf[i] = digits[v&0xf]
		v >>= 4
	}
	return "0x" + string(buf[:])
}
