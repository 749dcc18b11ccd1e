// Package assethost provides the host-side session layer for working with
// pluggable asset-management backends ("managers"). A host constructs a
// Session from its own identity capability, a logger and a manager
// factory; the Session mediates manager selection, lazy instantiation and
// initialization, and bidirectional settings exchange, without the host
// depending on any concrete manager implementation.
//
// Manager activation is deferred: UseManager and SetSettings only record a
// selection, and the selected manager is instantiated and initialized at
// most once, on the first CurrentManager call that observes it.
package assethost
