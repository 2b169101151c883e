package multiboot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// Registering these here is what makes "fake"/"fake" resolvable
	// below; NewSession/link.New/firmware.New only look backends up by
	// name in a registry populated by each backend's own init().
	_ "github.com/retrolink/multiboot/pkg/firmware/fake"
	_ "github.com/retrolink/multiboot/pkg/link/fake"
	monitorhttp "github.com/retrolink/multiboot/pkg/monitor/http"
)

func TestNewSessionResolvesRegisteredBackends(t *testing.T) {
	session, err := NewSession(Options{LinkBackend: "fake", FirmwareBackend: "fake"})
	require.NoError(t, err)
	assert.NotNil(t, session)
}

func TestNewSessionRejectsUnknownBackend(t *testing.T) {
	_, err := NewSession(Options{LinkBackend: "nonexistent", FirmwareBackend: "fake"})
	assert.Error(t, err)
}

func TestRunPayloadReportsIntoMonitor(t *testing.T) {
	session, err := NewSession(Options{LinkBackend: "fake", FirmwareBackend: "fake"})
	require.NoError(t, err)

	monitor := monitorhttp.NewServer()
	session.monitor = monitor

	// An unscripted fake link answers every discovery exchange with all
	// slots absent, exhausting the retry budget without ever seeing a
	// client, so this deterministically fails at discovery.
	err = session.RunPayload(make([]byte, 0x1C0), 0x81)
	assert.Error(t, err)

	status := monitor.Status()
	assert.Equal(t, 1, status.AttemptCount)
	assert.False(t, status.Running)
	assert.False(t, status.LastSuccess)
	assert.Equal(t, err.Error(), status.LastError)
}
