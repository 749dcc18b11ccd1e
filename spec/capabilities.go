package spec

import (
	"context"
)

// HostInterface is the capability a host application supplies to identify
// and describe itself to managers. Implementations must be safe to call
// for the life of the Session that wraps them.
type HostInterface interface {
	// Identifier returns the unique reverse-DNS style id of the host.
	Identifier() string

	// DisplayName returns a human-readable name for the host.
	DisplayName() string

	// Info returns additional host metadata a manager may query.
	Info() map[string]any
}

// Logger is the logging capability injected into the session and shared,
// by reference, with every manager it activates.
type Logger interface {
	Log(severity Severity, message string)
}

// ManagerFactory is the registry capability for manager plugins: it lists
// what is installed, answers registration queries, and instantiates plugin
// instances on demand. How plugins are located (linked in, scanned from
// disk, reached over IPC) is the factory's concern alone.
type ManagerFactory interface {
	// Managers returns details for all registered manager plugins. The
	// result reflects live registry state on every call.
	Managers(ctx context.Context) ([]ManagerDetail, error)

	// ManagerRegistered reports whether identifier names a registered plugin.
	ManagerRegistered(identifier string) bool

	// Instantiate creates a fresh, uninitialized plugin instance for the
	// given identifier.
	Instantiate(ctx context.Context, identifier string) (ManagerInterface, error)
}

// ManagerInterface is the capability satisfied by an instantiated manager
// plugin. Instances are single-use: Initialize is called exactly once,
// before any other method, by the owning session.
type ManagerInterface interface {
	// Identifier returns the unique reverse-DNS style id of the manager.
	Identifier() string

	// DisplayName returns a human-readable name for the manager.
	DisplayName() string

	// Info returns additional manager metadata.
	Info() map[string]any

	// Initialize prepares the instance for use with the given
	// manager-specific settings. The supplied HostSession remains valid
	// after the call returns and may be retained for later logging or
	// host queries.
	Initialize(ctx context.Context, settings SettingsMap, session HostSession) error

	// Settings returns the manager's current settings.
	Settings(ctx context.Context) (SettingsMap, error)
}

// CacheFlusher is an optional capability a manager plugin may implement to
// clear any internal caches on host request.
type CacheFlusher interface {
	FlushCaches(ctx context.Context) error
}

// HostSession is the capability bundle a manager receives at
// initialization: the host it is serving and the logger it should use.
type HostSession interface {
	Host() HostInterface
	Logger() Logger
}
