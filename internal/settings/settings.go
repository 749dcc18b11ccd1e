// Package settings implements the split/merge rules for session settings
// mappings: the reserved manager-identifier entry is session metadata and
// must never travel inside a manager's own settings payload.
package settings

import (
	"errors"
	"fmt"
	"maps"

	"github.com/flexigpt/assethost-go/spec"
)

// Split separates a combined session settings mapping into the selected
// manager identifier and the manager-specific settings. An absent or empty
// reserved entry yields identifier "" (meaning "no manager"). A reserved
// entry that is present but not a string is an input error.
func Split(all spec.SettingsMap) (string, spec.SettingsMap, error) {
	managerSettings := make(spec.SettingsMap, len(all))
	maps.Copy(managerSettings, all)

	v, ok := managerSettings[spec.KeyManagerIdentifier]
	if !ok {
		return "", managerSettings, nil
	}
	delete(managerSettings, spec.KeyManagerIdentifier)

	if v == nil {
		return "", managerSettings, nil
	}
	identifier, ok := v.(string)
	if !ok {
		return "", nil, errors.Join(
			spec.ErrInvalidInput,
			fmt.Errorf("setting %q must be a string, got %T", spec.KeyManagerIdentifier, v),
		)
	}
	return identifier, managerSettings, nil
}

// Merge builds a combined session settings mapping from a manager
// identifier and the manager's own settings. The reserved entry is always
// present; "" denotes "no manager".
func Merge(identifier string, managerSettings spec.SettingsMap) spec.SettingsMap {
	out := make(spec.SettingsMap, len(managerSettings)+1)
	maps.Copy(out, managerSettings)
	out[spec.KeyManagerIdentifier] = identifier
	return out
}

// StripReserved returns a copy of managerSettings without the reserved
// manager-identifier entry. A nil input yields a nil copy.
func StripReserved(managerSettings spec.SettingsMap) spec.SettingsMap {
	if managerSettings == nil {
		return nil
	}
	out := make(spec.SettingsMap, len(managerSettings))
	maps.Copy(out, managerSettings)
	delete(out, spec.KeyManagerIdentifier)
	return out
}
