// Package metrics provides the Recorder interface and a noop implementation.
package metrics

import "time"

// Recorder is the interface for recording per-scheme operation metrics.
type Recorder interface {
	RecordEncode(scheme string)
	RecordDecode(scheme string)
	RecordError(scheme, op string)
	RecordLatency(scheme, op string, d time.Duration)
}

// Noop is a Recorder that discards all data.
type Noop struct{}

func (Noop) RecordEncode(scheme string)                       {}
func (Noop) RecordDecode(scheme string)                       {}
func (Noop) RecordError(scheme, op string)                    {}
func (Noop) RecordLatency(scheme, op string, d time.Duration) {}
