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

// Package prince defines the top-level error codes shared by the PRINCE
// candidate generator's command-line front end.
//
// The implementation is spread across focused sub-packages: bigint holds
// the arbitrary-precision arithmetic, wordlist the input buckets, chain
// the composition enumerator/keyspace/materializer, schedule the length
// scheduler and emission driver, and sink the output writer. cmd/prince
// wires them together behind the CLI.
package prince

// Error codes returned by cmd/prince via os.Exit.
const (
	ErrMissingParam   = 1
	ErrInvalidParam   = 2
	ErrOutputIsDir    = 3
	ErrOverwriteFile  = 4
	ErrCreateFile     = 5
	ErrOpenFile       = 6
	ErrReadFile       = 7
	ErrWriteFile      = 8
	ErrSkipLimitRange = 9
	ErrOutOfMemory    = 10
	ErrUnknown        = 127
)
