package spec

// SessionID identifies one host/manager pairing session (UUIDv7 string).
type SessionID string

// KeyManagerIdentifier is the reserved key in a session settings mapping
// that names the selected manager. It is session-level metadata and is
// never forwarded into a manager's own settings payload.
const KeyManagerIdentifier = "managerIdentifier"

// SettingsMap holds settings exchanged between a host and a manager.
// Values are plain data (strings, numbers, bools) so that mappings
// survive config-file round trips.
type SettingsMap map[string]any

// ManagerDetail describes one registered manager plugin as reported by a
// ManagerFactory, without instantiating it.
type ManagerDetail struct {
	// Identifier is the unique reverse-DNS style id (e.g. "org.example.mgr").
	Identifier string `json:"identifier"`

	// DisplayName is a human-readable name suitable for manager pickers.
	DisplayName string `json:"displayName"`

	// Info contains additional registry metadata for the plugin.
	Info map[string]any `json:"info,omitempty"`
}
