/*
 * sicxeasm - Options file loader test set.
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

package options

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sicxeasm.opts")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeTemp(t, "# nothing here\n")
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.DefaultBase != 0 || opts.EmitModification {
		t.Errorf("expected zero-value defaults, got %+v", opts)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeTemp(t, "DEFAULTBASE = 3000\nMODRECORDS = true\n")
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.DefaultBase != 0x3000 {
		t.Errorf("DefaultBase = %X, want 3000", opts.DefaultBase)
	}
	if !opts.EmitModification {
		t.Error("EmitModification = false, want true")
	}
}

func TestLoadListWidth(t *testing.T) {
	path := writeTemp(t, "LISTWIDTH = 12\n")
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.ListingWidth != 12 {
		t.Errorf("ListingWidth = %d, want 12", opts.ListingWidth)
	}
}

func TestLoadListWidthInvalid(t *testing.T) {
	for _, content := range []string{"LISTWIDTH = 0\n", "LISTWIDTH = -1\n", "LISTWIDTH = abc\n"} {
		if _, err := Load(writeTemp(t, content)); err == nil {
			t.Errorf("Load(%q): expected error for invalid LISTWIDTH", content)
		}
	}
}

func TestLoadUnknownOption(t *testing.T) {
	path := writeTemp(t, "BOGUS = 1\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown option")
	}
}

func TestLoadMissingEquals(t *testing.T) {
	path := writeTemp(t, "DEFAULTBASE 3000\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for missing '='")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.opts")); err == nil {
		t.Error("expected error for missing file")
	}
}
