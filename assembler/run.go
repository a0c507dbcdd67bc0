/*
 * sicxeasm - Assembly run orchestration
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
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sicxeasm/config/options"
)

// Result is everything a caller needs after a successful run: the two
// output paths written to disk and the symbol table and listing, so an
// interactive session can inspect them without re-reading the files.
type Result struct {
	ListingPath string
	ObjectPath  string
	Symtab      *SymbolTable
	Listing     string
	Object      string
	ProgramSize uint32
}

// RunFile assembles sourcePath end to end: Pass 1, Pass 2, and the listing
// and object files written beside the source with .lst/.obj extensions.
// Every file handle opened here is closed on every exit path, including
// error paths, per the single-threaded synchronous resource model.
func RunFile(sourcePath string, opts options.Options) (*Result, error) {
	source, err := os.Open(sourcePath)
	if err != nil {
		return nil, newError(ErrFileNotFound, sourcePath)
	}
	defer source.Close()

	lines, err := readLines(source)
	if err != nil {
		return nil, err
	}

	slog.Debug("pass 1 starting", "file", sourcePath)
	pass1, err := RunPass1(lines)
	if err != nil {
		return nil, err
	}
	slog.Debug("pass 1 complete", "symbols", pass1.Symtab.Len(), "size", pass1.State.ProgramSize())

	slog.Debug("pass 2 starting")
	output, err := RunPass2(lines, pass1.Symtab, opts)
	if err != nil {
		return nil, err
	}
	slog.Debug("pass 2 complete", "size", output.ProgramSize)

	stem := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath))
	listingPath := stem + ".lst"
	objectPath := stem + ".obj"

	if err := writeFile(listingPath, output.Listing); err != nil {
		return nil, err
	}
	if err := writeFile(objectPath, output.Object); err != nil {
		return nil, err
	}

	return &Result{
		ListingPath: listingPath,
		ObjectPath:  objectPath,
		Symtab:      pass1.Symtab,
		Listing:     output.Listing,
		Object:      output.Object,
		ProgramSize: output.ProgramSize,
	}, nil
}

func readLines(source *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(source)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func writeFile(path, content string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = out.WriteString(content)
	return err
}

