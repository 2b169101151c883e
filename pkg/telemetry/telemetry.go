// Package telemetry adapts structured logging onto the write-only
// info/error/debug sink the handshake assumes is available, by
// implementing logrus.Hook. Nothing here ever affects control flow —
// the handshake logs for diagnosis only, never branches on it.
package telemetry

import "github.com/sirupsen/logrus"

// Sink is a minimal write-only log destination: an on-device console, a
// file, a remote collector, or a test spy.
type Sink interface {
	Info(msg string)
	Error(msg string)
	Debug(msg string)
}

// SinkHook forwards logrus entries to a Sink, routing by level.
type SinkHook struct {
	Sink Sink
}

// NewSinkHook returns a hook that forwards every entry to sink.
func NewSinkHook(sink Sink) *SinkHook {
	return &SinkHook{Sink: sink}
}

// Levels implements logrus.Hook: this hook fires at every level, and
// Fire maps levels it doesn't distinguish down to Info.
func (h *SinkHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (h *SinkHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		line = entry.Message
	}
	switch entry.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		h.Sink.Debug(line)
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		h.Sink.Error(line)
	default:
		h.Sink.Info(line)
	}
	return nil
}
