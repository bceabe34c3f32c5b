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

package schedule

// Event types reported to a Listener while the driver runs. There is only
// one kind today: a length's active chain batch has been drained.
const (
	EvtBatchDrained = 0
)

// Event reports one batch drain to a verbose-mode Listener. It never
// affects the candidate byte stream; it exists purely for --verbose
// reporting.
type Event struct {
	Type   int
	Length int
	Count  uint64
}

// Listener is implemented by verbose-mode reporters (see cmd/prince's
// Reporter) that want batch-level progress information.
type Listener interface {
	ProcessEvent(evt *Event)
}
