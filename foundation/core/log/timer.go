// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation takes and logs the duration
//              together with fields known only once it has finished.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Stop takes result fields

package log

import (
	"time"
)

// Timer logs "<operation> completed" at debug level when stopped
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	done      bool
}

// StartTimer starts timing operation
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{
		logger:    l,
		operation: operation,
		start:     time.Now(),
		fields:    Fields{},
	}
}

// WithField records a field known when the operation starts
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Stop logs the elapsed time merged with the start fields and result.
// Only the first call logs; later calls return 0.
func (t *Timer) Stop(result ...Fields) time.Duration {
	if t.done {
		return 0
	}
	t.done = true

	elapsed := time.Since(t.start)

	fields := t.fields
	for _, f := range result {
		fields = fields.Merge(f)
	}
	fields = fields.Merge(Fields{
		"operation":   t.operation,
		"duration_ms": float64(elapsed.Nanoseconds()) / 1e6,
	})

	if t.logger != nil {
		t.logger.log(LevelDebug, t.operation+" completed", nil, fields)
	}

	return elapsed
}
