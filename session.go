package assethost

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/flexigpt/assethost-go/internal/settings"
	"github.com/flexigpt/assethost-go/sloglogger"
	"github.com/flexigpt/assethost-go/spec"
)

// selection is a manager choice that has not been materialized yet.
type selection struct {
	identifier      string
	managerSettings spec.SettingsMap
}

// Session orchestrates one host/manager pairing. It owns the currently
// active Manager (if any), holds the logger shared with every manager it
// activates, and mediates deferred instantiation and settings exchange.
//
// A Session is safe for concurrent use; UseManager, CurrentManager and
// the settings methods serialize on an internal mutex.
type Session struct {
	id      spec.SessionID
	host    *Host
	logger  spec.Logger
	factory spec.ManagerFactory

	mu      sync.Mutex
	pending *selection
	active  *Manager
}

// NewSession creates a session for the given host identity, logger and
// manager factory. The host interface and factory are required; a nil
// logger defaults to a slog-backed one. The logger reference is bound
// once here and injected into every Manager and HostSession this session
// produces.
func NewSession(
	host spec.HostInterface,
	logger spec.Logger,
	factory spec.ManagerFactory,
	opts ...Option,
) (*Session, error) {
	if host == nil {
		return nil, errors.Join(spec.ErrInvalidInput, errors.New("host interface is required"))
	}
	if factory == nil {
		return nil, errors.Join(spec.ErrInvalidInput, errors.New("manager factory is required"))
	}
	if logger == nil {
		logger = sloglogger.New(nil)
	}

	s := &Session{
		id:      spec.SessionID(uuid.Must(uuid.NewV7()).String()),
		host:    newHost(host),
		logger:  logger,
		factory: factory,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Session) ID() spec.SessionID { return s.id }

// Host returns the manager-facing adapter over the host interface this
// session was constructed with.
func (s *Session) Host() *Host { return s.host }

// Logger returns the logger bound at construction.
func (s *Session) Logger() spec.Logger { return s.logger }

// RegisteredManagers returns details for all managers known to the
// factory. The result reflects live registry state on every call; nothing
// is cached by the session.
func (s *Session) RegisteredManagers(ctx context.Context) ([]spec.ManagerDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.factory.Managers(ctx)
}

// UseManager records identifier as the session's manager selection, with
// optional manager-specific settings (nil is allowed). The manager is not
// instantiated here; activation happens on the next CurrentManager call.
// Any previously active manager is discarded. An unregistered identifier
// fails with spec.ErrManagerNotRegistered and leaves all state untouched.
func (s *Session) UseManager(ctx context.Context, identifier string, managerSettings spec.SettingsMap) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return errors.Join(spec.ErrInvalidInput, errors.New("manager identifier is required"))
	}
	if !s.factory.ManagerRegistered(identifier) {
		return errors.Join(spec.ErrManagerNotRegistered, fmt.Errorf("unknown manager: %s", identifier))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = &selection{
		identifier:      identifier,
		managerSettings: settings.StripReserved(managerSettings),
	}
	s.active = nil

	s.logger.Log(spec.SeverityDebug, fmt.Sprintf("selected manager %q", identifier))
	return nil
}

// CurrentManager returns the session's active manager, materializing a
// pending selection first. With no selection ever made it returns
// (nil, nil) without touching the factory. A pending selection triggers
// exactly one Instantiate and one Initialize (with the pending settings,
// or an empty mapping, and a fresh HostSession); on success the result is
// cached and returned from subsequent calls without further factory or
// plugin calls. On failure nothing is cached and the selection stays
// pending, so a later call retries; factory and plugin errors propagate
// unchanged.
func (s *Session) CurrentManager(ctx context.Context) (*Manager, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return s.active, nil
	}

	sel := s.pending
	iface, err := s.factory.Instantiate(ctx, sel.identifier)
	if err != nil {
		return nil, err
	}

	mgr := newManager(iface, s.logger)
	initSettings := sel.managerSettings
	if initSettings == nil {
		initSettings = spec.SettingsMap{}
	}
	if err := mgr.initialize(ctx, initSettings, newHostSession(s.host, s.logger)); err != nil {
		return nil, err
	}

	s.active = mgr
	s.pending = nil

	s.logger.Log(spec.SeverityDebug, fmt.Sprintf("initialized manager %q", sel.identifier))
	return mgr, nil
}

// GetSettings returns the combined session settings: the active manager's
// own settings merged with the reserved manager-identifier entry. A
// pending selection is materialized first. With no manager selected the
// result holds only the reserved entry, mapped to "".
func (s *Session) GetSettings(ctx context.Context) (spec.SettingsMap, error) {
	mgr, err := s.CurrentManager(ctx)
	if err != nil {
		return nil, err
	}
	if mgr == nil {
		return settings.Merge("", nil), nil
	}
	managerSettings, err := mgr.Settings(ctx)
	if err != nil {
		return nil, err
	}
	return settings.Merge(mgr.Identifier(), managerSettings), nil
}

// SetSettings applies a combined session settings mapping, as produced by
// GetSettings or loaded from a config file. The reserved
// manager-identifier entry selects the manager; the remaining entries
// become its pending settings. Activation stays deferred until the next
// CurrentManager call, and any previously pending selection is
// overwritten. An absent or empty identifier clears the selection.
func (s *Session) SetSettings(ctx context.Context, all spec.SettingsMap) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	identifier, managerSettings, err := settings.Split(all)
	if err != nil {
		return err
	}
	if identifier == "" {
		s.mu.Lock()
		s.pending = nil
		s.active = nil
		s.mu.Unlock()
		return nil
	}
	return s.UseManager(ctx, identifier, managerSettings)
}
