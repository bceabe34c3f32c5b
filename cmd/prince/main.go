/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command prince is the PRINCE candidate generator's CLI front end. It
// reads a word list from stdin and streams candidate passwords built from
// 1..N input words.
package main

import (
	"errors"
	"fmt"
	"os"

	prince "github.com/flanglet/prince-go"
	"github.com/flanglet/prince-go/bigint"
	"github.com/flanglet/prince-go/schedule"
	"github.com/flanglet/prince-go/sink"
	"github.com/flanglet/prince-go/wordlist"
)

const _APP_HEADER = "prince " + _VERSION + " (PRINCE candidate generator)"

func main() {
	cfg := defaultConfig()
	status := processCommandLine(os.Args, cfg)

	if status != 0 {
		os.Exit(status)
	}

	if cfg.showVersion {
		fmt.Printf("v%s\n", _VERSION)
		os.Exit(1)
	}

	if cfg.showHelp {
		printUsage()
		os.Exit(1)
	}

	os.Exit(run(cfg))
}

func printUsage() {
	fmt.Println(_APP_HEADER)
	fmt.Println("Usage: prince [options] < wordlist")
	fmt.Println("  -V, --version            print version and exit")
	fmt.Println("  -h, --help               print this message and exit")
	fmt.Println("      --keyspace           print total keyspace and exit")
	fmt.Println("      --pw-min=N           minimum candidate length (default 1)")
	fmt.Println("      --pw-max=N           maximum candidate length (default 16)")
	fmt.Println("      --elem-cnt-min=N     minimum chain length (default 1)")
	fmt.Println("      --elem-cnt-max=N     maximum chain length (default 8)")
	fmt.Println("      --wl-dist-len        weight lengths by observed bucket size")
	fmt.Println("  -s, --skip=N             emission start offset")
	fmt.Println("  -l, --limit=N            maximum candidates to emit after skip")
	fmt.Println("  -o, --output-file=FILE   append output to FILE (default stdout)")
	fmt.Println("  -f, --force              allow appending to a non-empty output file")
	fmt.Println("  -v, --verbose=N          verbosity level (0..2)")
}

// run loads the word list, builds the driver and either prints the
// keyspace or streams candidates, returning a process exit code.
func run(cfg *config) int {
	buckets, err := wordlist.Load(os.Stdin)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read word list: %v\n", err)
		return prince.ErrReadFile
	}

	skip, err := bigint.Parse(cfg.skip)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid skip value: %v\n", err)
		return prince.ErrInvalidParam
	}

	limit, err := bigint.Parse(cfg.limit)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid limit value: %v\n", err)
		return prince.ErrInvalidParam
	}

	dist := schedule.NewDefaultWordlenDist()

	if cfg.wlDistLen {
		dist = schedule.NewObservedWordlenDist(buckets)
	}

	driver, err := schedule.NewDriver(cfg.pwMin, cfg.pwMax, cfg.elemCntMin, cfg.elemCntMax, buckets, dist, skip, limit)

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitCodeForDriverError(err)
	}

	if cfg.keyspace {
		fmt.Println(driver.TotalKsCnt().String())
		return 0
	}

	if cfg.verbose > 0 {
		log.Println(fmt.Sprintf("total keyspace: %s", driver.TotalKsCnt().String()), true)

		for _, s := range driver.LengthSummaries() {
			log.Println(fmt.Sprintf("length %d: %d chains, keyspace %s", s.Length, s.ChainCnt, s.KsCnt.String()), true)
		}
	}

	if cfg.verbose >= 2 {
		driver.SetListener(NewReporter(cfg.verbose))
	}

	out, code := openOutput(cfg)

	if code != 0 {
		return code
	}

	defer out.close()

	if err := driver.Run(out.sink); err != nil {
		fmt.Fprintf(os.Stderr, "Write failed: %v\n", err)
		return prince.ErrWriteFile
	}

	return 0
}

func exitCodeForDriverError(err error) int {
	switch {
	case errors.Is(err, schedule.ErrSkipOutOfRange),
		errors.Is(err, schedule.ErrLimitOutOfRange),
		errors.Is(err, schedule.ErrSkipLimitOutOfRange):
		return prince.ErrSkipLimitRange
	default:
		return prince.ErrInvalidParam
	}
}

// outputHandle bundles the opened file (if any) with the sink wrapping it,
// so main can defer a single close regardless of whether output went to
// stdout or a file.
type outputHandle struct {
	sink *sink.Writer
	file *os.File
}

func (this *outputHandle) close() {
	if this.sink != nil {
		_ = this.sink.Flush()
	}

	if this.file != nil {
		_ = this.file.Close()
	}
}

func openOutput(cfg *config) (*outputHandle, int) {
	if cfg.outputFile == "" {
		return &outputHandle{sink: sink.New(os.Stdout)}, 0
	}

	if fi, statErr := os.Stat(cfg.outputFile); statErr == nil {
		if fi.IsDir() {
			fmt.Fprintln(os.Stderr, "Output path is a directory")
			return nil, prince.ErrOutputIsDir
		}

		if fi.Size() > 0 && !cfg.force {
			fmt.Fprintln(os.Stderr, "Output file already has content, use --force to append to it")
			return nil, prince.ErrOverwriteFile
		}
	}

	// Output is appended to FILE rather than truncated.
	f, err := os.OpenFile(cfg.outputFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open output file: %v\n", err)
		return nil, prince.ErrOpenFile
	}

	return &outputHandle{sink: sink.New(f), file: f}, 0
}
