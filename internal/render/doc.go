// Package render drives headless Chromium to rasterize substituted HTML into
// frame images.
//
// Backends are expensive stateful resources: each one owns a browser process
// sized to a single resolution, a locked profile directory, and a scratch
// directory it screenshots into. The Pool keys backends by requested size so
// a render at a new resolution never reuses a stale-sized browser, serializes
// screenshots per backend, and evicts the least recently used backend once
// the configured cap is reached.
package render
