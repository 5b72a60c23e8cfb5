// Package main hosts the FrameForge CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into engine
// operations: rendering frames, inspecting template parameter schemas,
// listing templates, browsing render history, running environment checks, and
// configuration scaffolding. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
