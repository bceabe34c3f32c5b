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

package sink

import (
	"bytes"
	"errors"
)

var errClosed = errors.New("sink: write to closed memory sink")

// Memory is a closable in-memory Sink backed by a bytes.Buffer, for
// driver tests where writing to a real file or stdout is unnecessary.
type Memory struct {
	buf    bytes.Buffer
	closed bool
}

// NewMemory creates an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{}
}

// Write appends b to the internal buffer. Returns an error if Close was
// already called.
func (this *Memory) Write(b []byte) (int, error) {
	if this.closed {
		return 0, errClosed
	}

	return this.buf.Write(b)
}

// Flush is a no-op: Memory has no underlying I/O to push bytes to.
func (this *Memory) Flush() error {
	return nil
}

// Close makes the sink unavailable for further writes.
func (this *Memory) Close() error {
	this.closed = true
	return nil
}

// Bytes returns the accumulated output.
func (this *Memory) Bytes() []byte {
	return this.buf.Bytes()
}

// String returns the accumulated output as a string.
func (this *Memory) String() string {
	return this.buf.String()
}
