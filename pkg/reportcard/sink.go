package reportcard

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Sink receives diagnostics for grades that are not A, B, C, D or F.
type Sink interface {
	InvalidGrade(subject Subject, grade rune)
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(subject Subject, grade rune)

// InvalidGrade calls f.
func (f SinkFunc) InvalidGrade(subject Subject, grade rune) {
	f(subject, grade)
}

type nopSink struct{}

func (nopSink) InvalidGrade(Subject, rune) {}

type zapSink struct {
	logger *zap.Logger
}

// NewZapSink reports invalid grades as error-level log entries.
func NewZapSink(logger *zap.Logger) Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapSink{logger: logger}
}

func (s *zapSink) InvalidGrade(subject Subject, grade rune) {
	s.logger.Error("invalid grade",
		zap.String("subject", subject.String()),
		zap.String("grade", string(grade)),
	)
}

type sinkHolder struct {
	sink Sink
}

var defaultSink atomic.Value

func init() {
	defaultSink.Store(sinkHolder{sink: nopSink{}})
}

// SetDefaultSink installs the sink used by cards built without WithSink.
// Passing nil restores the no-op sink.
func SetDefaultSink(sink Sink) {
	if sink == nil {
		sink = nopSink{}
	}
	defaultSink.Store(sinkHolder{sink: sink})
}

// DefaultSink returns the currently installed package sink.
func DefaultSink() Sink {
	return defaultSink.Load().(sinkHolder).sink
}
