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

// Package sink implements the append-only, internally-buffered output
// writer the emission driver pushes candidate bytes into. It is owned
// solely by the driver and is never touched concurrently, so there is no
// mutex here.
package sink

import (
	"bufio"
	"io"
)

// defaultBufferSize is sized for high line-rate emission: candidate lines
// are at most 17 bytes (16-byte word plus LF) and batches can run into
// the tens of thousands of lines per flush.
const defaultBufferSize = 64 * 1024

// Writer is a *bufio.Writer-backed Sink over an underlying io.Writer
// (typically os.Stdout or an opened file).
type Writer struct {
	w *bufio.Writer
}

// New wraps w in a buffered Writer.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, defaultBufferSize)}
}

// Write appends p to the sink. A short write or broken pipe on the
// underlying writer surfaces as a non-nil error from this Write or from a
// later Write or Flush, which the driver propagates and the CLI turns into
// a fatal exit.
func (this *Writer) Write(p []byte) (int, error) {
	return this.w.Write(p)
}

// Flush pushes any buffered bytes to the underlying writer.
func (this *Writer) Flush() error {
	return this.w.Flush()
}
