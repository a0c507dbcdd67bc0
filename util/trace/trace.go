/*
 * sicxeasm - Encoder and driver tracing
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

// Package trace prints encoder and driver diagnostics explaining why an
// addressing mode or displacement was chosen. Disabled by default; the
// cost of a disabled call is one boolean check.
package trace

import (
	"fmt"
	"io"
	"os"
)

var (
	enabled bool
	out     io.Writer = os.Stderr
)

// Enable turns tracing on or off.
func Enable(on bool) {
	enabled = on
}

// SetOutput redirects trace output; intended for tests.
func SetOutput(w io.Writer) {
	out = w
}

// Encodef reports an encoder decision for one statement, e.g. the
// addressing mode selected and the displacement arithmetic behind it.
func Encodef(operation string, format string, a ...interface{}) {
	if !enabled {
		return
	}
	fmt.Fprintf(out, "encode %s: "+format+"\n", append([]interface{}{operation}, a...)...)
}

// Passf reports a driver-level event (pass start/end, record flush).
func Passf(pass int, format string, a ...interface{}) {
	if !enabled {
		return
	}
	fmt.Fprintf(out, "pass%d: "+format+"\n", append([]interface{}{pass}, a...)...)
}
