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

package main

import (
	"strconv"
	"strings"

	prince "github.com/flanglet/prince-go"
)

const (
	_VERSION = "0.17"

	_ARG_VERSION      = "--version"
	_ARG_HELP         = "--help"
	_ARG_KEYSPACE     = "--keyspace"
	_ARG_PW_MIN       = "--pw-min="
	_ARG_PW_MAX       = "--pw-max="
	_ARG_ELEM_MIN     = "--elem-cnt-min="
	_ARG_ELEM_MAX     = "--elem-cnt-max="
	_ARG_WL_DIST_LEN  = "--wl-dist-len"
	_ARG_SKIP         = "--skip="
	_ARG_LIMIT        = "--limit="
	_ARG_OUTPUT       = "--output-file="
	_ARG_FORCE        = "--force"
	_ARG_VERBOSE      = "--verbose="
)

// config holds the fully-parsed command line, the fields processCommandLine
// fills in before the driver is built.
type config struct {
	showVersion bool
	showHelp    bool
	keyspace    bool
	pwMin       int
	pwMax       int
	elemCntMin  int
	elemCntMax  int
	wlDistLen   bool
	skip        string
	limit       string
	outputFile  string
	force       bool
	verbose     uint
}

func defaultConfig() *config {
	return &config{
		pwMin:      1,
		pwMax:      16,
		elemCntMin: 1,
		elemCntMax: 8,
		skip:       "0",
		limit:      "0",
	}
}

// context indices for the short flags whose value arrives as the next
// bare token (e.g. "-s" "10").
const (
	ctxNone = iota
	ctxSkip
	ctxLimit
	ctxOutput
	ctxVerbose
)

// processCommandLine parses args (os.Args) into cfg, returning a status:
// 0 to continue, or a positive prince.Err* code on a usage error.
func processCommandLine(args []string, cfg *config) int {
	ctx := ctxNone

	for i, arg := range args {
		if i == 0 {
			continue
		}

		arg = strings.TrimSpace(arg)

		if ctx != ctxNone {
			if err := fillContextValue(cfg, ctx, arg); err != nil {
				return prince.ErrInvalidParam
			}

			ctx = ctxNone
			continue
		}

		switch {
		case arg == "-V" || arg == _ARG_VERSION:
			cfg.showVersion = true

		case arg == "-h" || arg == _ARG_HELP:
			cfg.showHelp = true

		case arg == _ARG_KEYSPACE:
			cfg.keyspace = true

		case strings.HasPrefix(arg, _ARG_PW_MIN):
			n, err := strconv.Atoi(arg[len(_ARG_PW_MIN):])

			if err != nil {
				return prince.ErrInvalidParam
			}

			cfg.pwMin = n

		case strings.HasPrefix(arg, _ARG_PW_MAX):
			n, err := strconv.Atoi(arg[len(_ARG_PW_MAX):])

			if err != nil {
				return prince.ErrInvalidParam
			}

			cfg.pwMax = n

		case strings.HasPrefix(arg, _ARG_ELEM_MIN):
			n, err := strconv.Atoi(arg[len(_ARG_ELEM_MIN):])

			if err != nil {
				return prince.ErrInvalidParam
			}

			cfg.elemCntMin = n

		case strings.HasPrefix(arg, _ARG_ELEM_MAX):
			n, err := strconv.Atoi(arg[len(_ARG_ELEM_MAX):])

			if err != nil {
				return prince.ErrInvalidParam
			}

			cfg.elemCntMax = n

		case arg == _ARG_WL_DIST_LEN:
			cfg.wlDistLen = true

		case strings.HasPrefix(arg, _ARG_SKIP):
			cfg.skip = arg[len(_ARG_SKIP):]

		case arg == "-s":
			ctx = ctxSkip

		case strings.HasPrefix(arg, _ARG_LIMIT):
			cfg.limit = arg[len(_ARG_LIMIT):]

		case arg == "-l":
			ctx = ctxLimit

		case strings.HasPrefix(arg, _ARG_OUTPUT):
			cfg.outputFile = arg[len(_ARG_OUTPUT):]

		case arg == "-o":
			ctx = ctxOutput

		case arg == _ARG_FORCE || arg == "-f":
			cfg.force = true

		case strings.HasPrefix(arg, _ARG_VERBOSE):
			n, err := strconv.ParseUint(arg[len(_ARG_VERBOSE):], 10, 32)

			if err != nil {
				return prince.ErrInvalidParam
			}

			cfg.verbose = uint(n)

		case arg == "-v":
			ctx = ctxVerbose

		default:
			return prince.ErrInvalidParam
		}
	}

	if ctx != ctxNone {
		return prince.ErrInvalidParam
	}

	return validateConfig(cfg)
}

// fillContextValue assigns arg as the value for the pending short flag ctx.
func fillContextValue(cfg *config, ctx int, arg string) error {
	switch ctx {
	case ctxSkip:
		cfg.skip = arg
	case ctxLimit:
		cfg.limit = arg
	case ctxOutput:
		cfg.outputFile = arg
	case ctxVerbose:
		n, err := strconv.ParseUint(arg, 10, 32)

		if err != nil {
			return err
		}

		cfg.verbose = uint(n)
	}

	return nil
}

// validateConfig checks the fully-parsed config: both pw_min and pw_max
// are checked against [1, wordlist.MaxWordLen], not just pw_min.
func validateConfig(cfg *config) int {
	const maxWordLen = 16

	if cfg.showHelp || cfg.showVersion {
		return 0
	}

	if cfg.pwMin < 1 || cfg.pwMin > maxWordLen {
		return prince.ErrInvalidParam
	}

	if cfg.pwMax < 1 || cfg.pwMax > maxWordLen {
		return prince.ErrInvalidParam
	}

	if cfg.pwMin > cfg.pwMax {
		return prince.ErrInvalidParam
	}

	if cfg.elemCntMin < 1 || cfg.elemCntMin > cfg.elemCntMax {
		return prince.ErrInvalidParam
	}

	return 0
}
