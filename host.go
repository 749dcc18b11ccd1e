package assethost

import (
	"github.com/flexigpt/assethost-go/spec"
)

// Host is the manager-facing view of the host application. It is a pure
// pass-through over the spec.HostInterface supplied at session
// construction and holds no state of its own.
type Host struct {
	iface spec.HostInterface
}

func newHost(iface spec.HostInterface) *Host {
	return &Host{iface: iface}
}

func (h *Host) Identifier() string { return h.iface.Identifier() }

func (h *Host) DisplayName() string { return h.iface.DisplayName() }

func (h *Host) Info() map[string]any { return h.iface.Info() }
