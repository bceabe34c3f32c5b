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

package wordlist

import (
	"bufio"
	"io"
)

// Load reads newline-separated byte strings from r up to EOF, one call
// filling every bucket for the lifetime of the run. Each line is
// right-trimmed of CR and LF bytes; lines whose trimmed length falls
// outside [1..MaxWordLen] are silently dropped. No deduplication is
// performed; insertion order is preserved within each bucket. A line
// longer than 1 MiB is not dropped: Load stops and returns
// bufio.ErrTooLong.
func Load(r io.Reader) (*Buckets, error) {
	buckets := NewBuckets()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := trimCRLF(scanner.Bytes())

		if len(line) < 1 || len(line) > MaxWordLen {
			continue
		}

		buckets.byLength[len(line)].append(line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}

// trimCRLF strips trailing CR and LF bytes from line. bufio.Scanner's
// default split function already strips the final newline, but a
// Windows-style CRLF stream leaves a trailing CR that must also be
// removed.
func trimCRLF(line []byte) []byte {
	n := len(line)

	for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
		n--
	}

	return line[:n]
}
