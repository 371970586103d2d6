// Package anime defines the tracked-show data model shared across the
// application: entries, their lifecycle status, and the snapshot envelope
// persisted to local storage and exchanged as export files.
package anime
