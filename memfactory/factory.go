// Package memfactory provides an in-process spec.ManagerFactory for
// manager plugins compiled into the host: plugins register a constructor
// under their identifier, and the factory instantiates fresh instances on
// demand. Hosts that discover plugins externally supply their own factory
// instead.
package memfactory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/flexigpt/assethost-go/spec"
)

// ErrAlreadyRegistered is returned when registering an identifier that is
// already present in the factory.
var ErrAlreadyRegistered = errors.New("manager already registered")

// Constructor creates a fresh, uninitialized plugin instance.
type Constructor func(ctx context.Context) (spec.ManagerInterface, error)

type entry struct {
	detail spec.ManagerDetail
	ctor   Constructor
}

// Factory is a registry of manager plugin constructors keyed by
// identifier. The zero value is not usable; create one with New.
type Factory struct {
	mu      sync.RWMutex
	entries map[string]entry
}

var _ spec.ManagerFactory = (*Factory)(nil)

func New() *Factory {
	return &Factory{entries: map[string]entry{}}
}

// Register adds a manager under detail.Identifier. The identifier must be
// non-empty and not already registered, and ctor must be non-nil.
func (f *Factory) Register(detail spec.ManagerDetail, ctor Constructor) error {
	id := strings.TrimSpace(detail.Identifier)
	if id == "" {
		return errors.Join(spec.ErrInvalidInput, errors.New("manager identifier is required"))
	}
	if ctor == nil {
		return errors.Join(spec.ErrInvalidInput, fmt.Errorf("nil constructor for manager %s", id))
	}
	detail.Identifier = id

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.entries[id]; ok {
		return errors.Join(ErrAlreadyRegistered, fmt.Errorf("manager: %s", id))
	}
	f.entries[id] = entry{detail: detail, ctor: ctor}
	return nil
}

// Deregister removes a manager and reports whether it was present.
func (f *Factory) Deregister(identifier string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.entries[identifier]
	delete(f.entries, identifier)
	return ok
}

func (f *Factory) Managers(ctx context.Context) ([]spec.ManagerDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]spec.ManagerDetail, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.detail)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier < out[j].Identifier })
	return out, nil
}

func (f *Factory) ManagerRegistered(identifier string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.entries[identifier]
	return ok
}

func (f *Factory) Instantiate(ctx context.Context, identifier string) (spec.ManagerInterface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.RLock()
	e, ok := f.entries[identifier]
	f.mu.RUnlock()
	if !ok {
		return nil, errors.Join(spec.ErrManagerNotRegistered, fmt.Errorf("unknown manager: %s", identifier))
	}
	return e.ctor(ctx)
}
