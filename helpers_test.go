package assethost

import (
	"context"
	"sync"
	"testing"

	"github.com/flexigpt/assethost-go/spec"
)

type fakeHost struct {
	identifier  string
	displayName string
	info        map[string]any
}

func (h *fakeHost) Identifier() string   { return h.identifier }
func (h *fakeHost) DisplayName() string  { return h.displayName }
func (h *fakeHost) Info() map[string]any { return h.info }

type logEntry struct {
	severity spec.Severity
	message  string
}

type captureLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *captureLogger) Log(severity spec.Severity, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{severity: severity, message: message})
}

type fakeManagerIface struct {
	identifier  string
	displayName string
	info        map[string]any

	settingsOut spec.SettingsMap
	initErr     error
	settingsErr error

	initCalls     int
	settingsCalls int

	lastInitSettings spec.SettingsMap
	lastInitSession  spec.HostSession
}

func (m *fakeManagerIface) Identifier() string   { return m.identifier }
func (m *fakeManagerIface) DisplayName() string  { return m.displayName }
func (m *fakeManagerIface) Info() map[string]any { return m.info }

func (m *fakeManagerIface) Initialize(
	_ context.Context,
	settings spec.SettingsMap,
	session spec.HostSession,
) error {
	m.initCalls++
	m.lastInitSettings = settings
	m.lastInitSession = session
	return m.initErr
}

func (m *fakeManagerIface) Settings(_ context.Context) (spec.SettingsMap, error) {
	m.settingsCalls++
	if m.settingsErr != nil {
		return nil, m.settingsErr
	}
	return m.settingsOut, nil
}

// flushableManagerIface additionally implements spec.CacheFlusher.
type flushableManagerIface struct {
	fakeManagerIface

	flushCalls int
	flushErr   error
}

func (m *flushableManagerIface) FlushCaches(_ context.Context) error {
	m.flushCalls++
	return m.flushErr
}

type fakeFactory struct {
	registered  map[string]bool
	managersOut []spec.ManagerDetail

	instantiateFn func(ctx context.Context, identifier string) (spec.ManagerInterface, error)

	managersCalls    int
	registeredCalls  int
	instantiateCalls int
	lastInstantiated string
}

func (f *fakeFactory) Managers(_ context.Context) ([]spec.ManagerDetail, error) {
	f.managersCalls++
	return f.managersOut, nil
}

func (f *fakeFactory) ManagerRegistered(identifier string) bool {
	f.registeredCalls++
	return f.registered[identifier]
}

func (f *fakeFactory) Instantiate(ctx context.Context, identifier string) (spec.ManagerInterface, error) {
	f.instantiateCalls++
	f.lastInstantiated = identifier
	return f.instantiateFn(ctx, identifier)
}

// newTestSession wires a session to a single registered fake manager and
// returns all the pieces for call-count assertions.
func newTestSession(t *testing.T, identifier string) (*Session, *fakeFactory, *fakeManagerIface, *captureLogger) {
	t.Helper()

	iface := &fakeManagerIface{identifier: identifier, displayName: "Fake Manager"}
	factory := &fakeFactory{
		registered: map[string]bool{identifier: true},
		instantiateFn: func(_ context.Context, _ string) (spec.ManagerInterface, error) {
			return iface, nil
		},
	}
	logger := &captureLogger{}
	s, err := NewSession(&fakeHost{identifier: "org.example.host"}, logger, factory)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, factory, iface, logger
}
