/*
 * sicxeasm - Assembler options file parser
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

// Package options parses an optional sicxeasm configuration file: a small
// "# comment" / "KEY = VALUE" grammar in the same hand-rolled-tokenizer
// style the emulator's own config parser uses, scaled down to the handful
// of genuine policy knobs an assembler has (the ISA invariants — the
// 4096-byte base range, the 2048-byte PC range, the 30-byte text record
// cap — are facts about SIC/XE, not configuration, and stay constants).
package options

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Options holds the overridable assembler policy knobs. Zero value is the
// built-in default behavior.
type Options struct {
	DefaultBase      uint32 // Base register value in effect before any BASE directive.
	EmitModification bool   // Request Format-4 M records (see DESIGN.md: still a stub, never emitted).
	ListingWidth     int    // Listing field column width; 0 keeps the built-in default.
}

type optionLine struct {
	line string
	pos  int
}

// Load reads a configuration file and returns the options it specifies.
// A missing key keeps the zero-value default.
func Load(name string) (Options, error) {
	opts := Options{}

	file, err := os.Open(name)
	if err != nil {
		return opts, err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	lineNumber := 0
	for {
		raw, readErr := reader.ReadString('\n')
		lineNumber++
		if len(raw) == 0 && readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return opts, readErr
		}

		ol := optionLine{line: raw}
		if err := ol.apply(&opts, lineNumber); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func (ol *optionLine) skipSpace() {
	for ol.pos < len(ol.line) && unicode.IsSpace(rune(ol.line[ol.pos])) {
		ol.pos++
	}
}

func (ol *optionLine) isEOL() bool {
	return ol.pos >= len(ol.line) || ol.line[ol.pos] == '#'
}

func (ol *optionLine) word() string {
	ol.skipSpace()
	start := ol.pos
	for ol.pos < len(ol.line) && !unicode.IsSpace(rune(ol.line[ol.pos])) &&
		ol.line[ol.pos] != '#' && ol.line[ol.pos] != '=' {
		ol.pos++
	}
	return ol.line[start:ol.pos]
}

func (ol *optionLine) apply(opts *Options, lineNumber int) error {
	key := ol.word()
	if key == "" {
		return nil
	}
	ol.skipSpace()
	if ol.isEOL() || ol.line[ol.pos] != '=' {
		return fmt.Errorf("options line %d: %q not followed by '='", lineNumber, key)
	}
	ol.pos++
	value := strings.TrimSpace(ol.word())

	switch strings.ToUpper(key) {
	case "DEFAULTBASE":
		base, err := strconv.ParseUint(value, 16, 20)
		if err != nil {
			return fmt.Errorf("options line %d: DEFAULTBASE must be hex: %q", lineNumber, value)
		}
		opts.DefaultBase = uint32(base)
	case "MODRECORDS":
		opts.EmitModification = strings.EqualFold(value, "true") || value == "1"
	case "LISTWIDTH":
		width, err := strconv.Atoi(value)
		if err != nil || width <= 0 {
			return fmt.Errorf("options line %d: LISTWIDTH must be a positive integer: %q", lineNumber, value)
		}
		opts.ListingWidth = width
	default:
		return fmt.Errorf("options line %d: unknown option %q", lineNumber, key)
	}
	return nil
}
