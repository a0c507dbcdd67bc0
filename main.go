/*
 * sicxeasm - Main process.
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
 *
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"sicxeasm/assembler"
	"sicxeasm/config/options"
	"sicxeasm/inspect"
	"sicxeasm/util/logger"
	"sicxeasm/util/trace"
)

var Logger *slog.Logger

func main() {
	optOpts := getopt.StringLong("opts", 'o', "", "Assembler options file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optTrace := getopt.BoolLong("trace", 't', "Enable encoder/driver tracing")
	optInteractive := getopt.BoolLong("interactive", 'i', "Start the interactive inspector after assembly")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	debug := false
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, &debug))
	slog.SetDefault(Logger)

	trace.Enable(*optTrace)

	args := getopt.Args()
	if len(args) != 1 || !strings.Contains(args[0], ".") {
		fmt.Fprintln(os.Stderr, "MISSING_COMMAND_LINE_ARGUMENTS: a single source file is required")
		os.Exit(255)
	}
	sourcePath := args[0]

	opts := options.Options{}
	if *optOpts != "" {
		var err error
		opts, err = options.Load(*optOpts)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(255)
		}
	}

	result, err := assembler.RunFile(sourcePath, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(255)
	}

	Logger.Info("assembly complete", "listing", result.ListingPath, "object", result.ObjectPath, "size", result.ProgramSize)
	fmt.Println("Done!")

	if *optInteractive {
		session := &inspect.Session{
			Symtab:      result.Symtab,
			Listing:     result.Listing,
			ProgramSize: result.ProgramSize,
		}
		if err := inspect.Run(session); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(255)
		}
	}
}
