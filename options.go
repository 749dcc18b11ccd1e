package assethost

import (
	"errors"
	"strings"

	"github.com/flexigpt/assethost-go/spec"
)

type Option func(*Session) error

// WithSessionID overrides the generated session ID. Useful for hosts that
// persist and restore sessions and need stable correlation IDs.
func WithSessionID(id spec.SessionID) Option {
	return func(s *Session) error {
		if strings.TrimSpace(string(id)) == "" {
			return errors.Join(spec.ErrInvalidInput, errors.New("session id must not be empty"))
		}
		s.id = id
		return nil
	}
}
