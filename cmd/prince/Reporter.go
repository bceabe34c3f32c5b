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
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/flanglet/prince-go/schedule"
)

// printer is a buffered, mutex-guarded writer for diagnostics.
type printer struct {
	mu sync.Mutex
	os *bufio.Writer
}

var log = printer{os: bufio.NewWriter(os.Stderr)}

// Println writes msg to stderr followed by a newline when printFlag is
// true, flushing immediately. Mirrors app.Printer.Println.
func (this *printer) Println(msg string, printFlag bool) {
	if !printFlag {
		return
	}

	this.mu.Lock()
	defer this.mu.Unlock()

	if w, _ := this.os.Write([]byte(msg + "\n")); w > 0 {
		_ = this.os.Flush()
	}
}

// Reporter is a schedule.Listener that prints per-batch drain information
// at --verbose=2 and above. It never touches stdout.
type Reporter struct {
	level uint
}

// NewReporter creates a Reporter for the requested verbosity level.
func NewReporter(level uint) *Reporter {
	return &Reporter{level: level}
}

// ProcessEvent implements schedule.Listener.
func (this *Reporter) ProcessEvent(evt *schedule.Event) {
	if this.level < 2 {
		return
	}

	switch evt.Type {
	case schedule.EvtBatchDrained:
		log.Println(fmt.Sprintf("length %d: drained %d candidates", evt.Length, evt.Count), true)
	}
}
