package multiboot

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/retrolink/multiboot/pkg/firmware"
	"github.com/retrolink/multiboot/pkg/handshake"
	"github.com/retrolink/multiboot/pkg/link"
	monitorhttp "github.com/retrolink/multiboot/pkg/monitor/http"
	"github.com/retrolink/multiboot/pkg/telemetry"
)

// Session wires configuration, logging, and backend selection together
// and delegates the actual protocol work to pkg/handshake. It is
// plumbing, not a fourth protocol layer: Session itself holds no
// handshake state.
type Session struct {
	h       *handshake.Handshake
	logger  *logrus.Entry
	monitor *monitorhttp.Server
}

// Options configures a Session's backend selection.
type Options struct {
	// LinkBackend names a registered pkg/link backend ("mmio", "mmap",
	// or "fake").
	LinkBackend string
	// LinkChannel is passed through to the link backend unchanged.
	LinkChannel string

	// FirmwareBackend names a registered pkg/firmware backend ("bios" or
	// "fake").
	FirmwareBackend string

	// Logger receives handshake progress. A nil Logger falls back to
	// logrus's standard logger.
	Logger *logrus.Entry

	// Sink, if non-nil, receives every log entry through a
	// telemetry.SinkHook attached to Logger's underlying logger — the
	// write-only info/error/debug destination external to this package.
	Sink telemetry.Sink

	// Monitor, if non-nil, is reported into around every RunPayload call:
	// ReportStart before the handshake begins, ReportResult after it
	// ends. The caller owns serving it (e.g. via its ListenAndServe).
	Monitor *monitorhttp.Server
}

// NewSession constructs the link and firmware backends named in opts and
// wires them into a handshake.Handshake. This should be called once
// before any Run.
func NewSession(opts Options) (*Session, error) {
	l, err := link.New(opts.LinkBackend, opts.LinkChannel)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	fw, err := firmware.New(opts.FirmwareBackend)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	if opts.Sink != nil {
		logger.Logger.AddHook(telemetry.NewSinkHook(opts.Sink))
	}

	h, err := handshake.New(l, fw, logger)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return &Session{h: h, logger: logger, monitor: opts.Monitor}, nil
}

// Run loads payload from path and drives the handshake with the given
// palette byte, returning the bit-exact Code if the handshake fails, or a
// wrapped error if the payload file cannot be read.
func (s *Session) Run(path string, paletteData byte) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("session: reading payload: %w", err)
	}
	return s.RunPayload(payload, paletteData)
}

// RunPayload drives the handshake directly against an in-memory payload,
// skipping the filesystem read Run performs.
func (s *Session) RunPayload(payload []byte, paletteData byte) error {
	s.logger.WithField("payload_bytes", len(payload)).Info("starting multiboot attempt")
	if s.monitor != nil {
		s.monitor.ReportStart()
	}

	err := s.h.Start(payload, paletteData)

	if s.monitor != nil {
		s.monitor.ReportResult(s.h.LastClientBit(), err)
	}
	if err != nil {
		s.logger.WithError(err).Error("multiboot attempt failed")
		return err
	}
	return nil
}
