// Package preflight provides readiness checks for the system pieces frame
// rendering depends on: a launchable browser binary and a working font stack.
//
// Checks are advisory. A failed font check means text renders as boxes, not
// that rasterization fails, so callers log the detail and continue.
package preflight
