package assethost

import (
	"context"

	"github.com/flexigpt/assethost-go/spec"
)

// Manager is the host-facing wrapper around an instantiated manager
// plugin. It owns the plugin instance for its lifetime and shares the
// owning session's logger by reference. Managers are only constructed by
// Session; Session.CurrentManager returns the active one.
type Manager struct {
	iface  spec.ManagerInterface
	logger spec.Logger
}

func newManager(iface spec.ManagerInterface, logger spec.Logger) *Manager {
	return &Manager{iface: iface, logger: logger}
}

func (m *Manager) Identifier() string { return m.iface.Identifier() }

func (m *Manager) DisplayName() string { return m.iface.DisplayName() }

func (m *Manager) Info() map[string]any { return m.iface.Info() }

// Settings returns the manager's current settings. The result is
// delegated on every call, never cached by the wrapper.
func (m *Manager) Settings(ctx context.Context) (spec.SettingsMap, error) {
	return m.iface.Settings(ctx)
}

// FlushCaches asks the plugin to drop any internal caches. Plugins that
// do not implement the capability are treated as having nothing to flush.
func (m *Manager) FlushCaches(ctx context.Context) error {
	f, ok := m.iface.(spec.CacheFlusher)
	if !ok {
		return nil
	}
	return f.FlushCaches(ctx)
}

// initialize is called exactly once per plugin instance, by the owning
// Session, before the Manager becomes observable to the host.
func (m *Manager) initialize(ctx context.Context, settings spec.SettingsMap, session *HostSession) error {
	return m.iface.Initialize(ctx, settings, session)
}

// pluginInterface exposes the wrapped plugin instance for identity checks
// in tests; it is not part of the host-facing contract.
func (m *Manager) pluginInterface() spec.ManagerInterface { return m.iface }
