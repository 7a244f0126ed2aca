package merge

import (
	"github.com/rs/zerolog"
)

// Sink receives the human-readable lines of an invocation: one success
// line per written file and one line per recovered failure.
type Sink interface {
	Success(line string)
	Failure(line string)
}

// RecordingSink keeps every line it receives, in order
type RecordingSink struct {
	Successes []string
	Failures  []string
}

// NewRecordingSink creates an empty RecordingSink
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

func (s *RecordingSink) Success(line string) {
	s.Successes = append(s.Successes, line)
}

func (s *RecordingSink) Failure(line string) {
	s.Failures = append(s.Failures, line)
}

// LoggerSink forwards sink lines to a zerolog logger, for embedding the
// pipeline in programs that have no console.
type LoggerSink struct {
	Logger zerolog.Logger
}

func (s LoggerSink) Success(line string) {
	s.Logger.Info().Msg(line)
}

func (s LoggerSink) Failure(line string) {
	s.Logger.Error().Msg(line)
}
