package assethost

import (
	"github.com/flexigpt/assethost-go/spec"
)

// HostSession is the capability bundle handed to a manager plugin during
// initialization: the host it serves plus the session's logger. A fresh
// HostSession is constructed for every initialization and never reused
// across managers; the plugin may retain it beyond the Initialize call,
// so the referenced host and logger stay valid for the life of the
// owning Session.
type HostSession struct {
	host   *Host
	logger spec.Logger
}

var _ spec.HostSession = (*HostSession)(nil)

func newHostSession(host *Host, logger spec.Logger) *HostSession {
	return &HostSession{host: host, logger: logger}
}

func (s *HostSession) Host() spec.HostInterface { return s.host }

func (s *HostSession) Logger() spec.Logger { return s.logger }

// Log forwards to the session logger.
func (s *HostSession) Log(severity spec.Severity, message string) {
	s.logger.Log(severity, message)
}
