// Package logging builds the slog loggers used across FrameForge.
//
// It centralizes handler construction (console or JSON, with an optional
// mirror into the configured log directory), canonical attribute helpers, and
// the standardized structured field names shared by the engine and the CLI.
package logging
