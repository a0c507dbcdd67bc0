/*
 * sicxeasm - Post-assembly interactive inspector
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

// Package inspect is a small liner-backed REPL for poking at the result of
// an assembly: dump the symbol table, look up one symbol, show program
// size, or reprint the listing. It runs after Pass 2 has already produced
// its output; it never re-assembles or mutates anything.
package inspect

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"sicxeasm/assembler"
)

// Session is the state the REPL commands read from. It is read-only —
// inspecting a completed assembly never changes its result.
type Session struct {
	Symtab      *assembler.SymbolTable
	Listing     string
	ProgramSize uint32
}

// command is one REPL verb: a name, the minimum unambiguous-abbreviation
// length, and the handler that executes it.
type command struct {
	name    string
	min     int
	process func(*Session, *cmdLine) (bool, error)
}

var cmdList = []command{
	{name: "symtab", min: 3, process: cmdSymtab},
	{name: "find", min: 1, process: cmdFind},
	{name: "stats", min: 2, process: cmdStats},
	{name: "list", min: 1, process: cmdListing},
	{name: "quit", min: 1, process: cmdQuit},
}

// Run starts the REPL. It blocks until the user quits or the prompt is
// aborted (Ctrl-D / Ctrl-C).
func Run(session *Session) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		return completeCommand(partial)
	})

	for {
		input, err := line.Prompt("sicxeasm> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return nil
			}
			return err
		}

		line.AppendHistory(input)
		quit, procErr := process(session, input)
		if procErr != nil {
			fmt.Println("error: " + procErr.Error())
		}
		if quit {
			return nil
		}
	}
}

func process(session *Session, input string) (bool, error) {
	cl := &cmdLine{line: input}
	name := cl.getWord()
	if name == "" {
		return false, nil
	}

	match := matchCommand(name)
	if len(match) == 0 {
		return false, fmt.Errorf("unknown command: %s", name)
	}
	if len(match) > 1 {
		return false, fmt.Errorf("ambiguous command: %s", name)
	}
	return match[0].process(session, cl)
}

func matchCommand(name string) []command {
	var matches []command
	for _, c := range cmdList {
		if len(name) >= c.min && len(name) <= len(c.name) && c.name[:len(name)] == name {
			matches = append(matches, c)
		}
	}
	return matches
}

func completeCommand(partial string) []string {
	var matches []string
	for _, c := range cmdList {
		if strings.HasPrefix(c.name, partial) {
			matches = append(matches, c.name)
		}
	}
	return matches
}

func cmdSymtab(session *Session, _ *cmdLine) (bool, error) {
	names := session.Symtab.Names()
	sort.Strings(names)
	for _, name := range names {
		addr, _ := session.Symtab.Lookup(name)
		fmt.Printf("%-10s %06X\n", name, addr)
	}
	return false, nil
}

func cmdFind(session *Session, cl *cmdLine) (bool, error) {
	name := strings.ToUpper(cl.getWord())
	if name == "" {
		return false, errors.New("find requires a symbol name")
	}
	addr, err := session.Symtab.Lookup(name)
	if err != nil {
		return false, err
	}
	fmt.Printf("%s = %06X\n", name, addr)
	return false, nil
}

func cmdStats(session *Session, _ *cmdLine) (bool, error) {
	fmt.Printf("symbols: %d\n", session.Symtab.Len())
	fmt.Printf("program size: %d bytes (0x%X)\n", session.ProgramSize, session.ProgramSize)
	return false, nil
}

func cmdListing(session *Session, _ *cmdLine) (bool, error) {
	fmt.Println(session.Listing)
	return false, nil
}

func cmdQuit(_ *Session, _ *cmdLine) (bool, error) {
	return true, nil
}

// cmdLine is a position-tracking cursor over one REPL input line, the same
// hand-rolled tokenizer shape the options file parser uses.
type cmdLine struct {
	line string
	pos  int
}

func (cl *cmdLine) skipSpace() {
	for cl.pos < len(cl.line) && cl.line[cl.pos] == ' ' {
		cl.pos++
	}
}

func (cl *cmdLine) isEOL() bool {
	cl.skipSpace()
	return cl.pos >= len(cl.line)
}

func (cl *cmdLine) getWord() string {
	cl.skipSpace()
	start := cl.pos
	for cl.pos < len(cl.line) && cl.line[cl.pos] != ' ' {
		cl.pos++
	}
	return strings.ToLower(cl.line[start:cl.pos])
}
