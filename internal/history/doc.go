// Package history persists a record of completed renders in SQLite so the
// CLI can show what was produced, where, and how long it took. The store is
// optional; the engine runs fine with it disabled.
package history
