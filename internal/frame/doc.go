// Package frame composes the template store, schema parser, substitutor,
// rendering backend pool, and output allocator into the engine behind the two
// public operations: render a frame, and read a template's parameter schema.
//
// Data flows one direction through the engine: reference → resolved path →
// loaded text → (schema | substituted HTML) → raster scratch file → relocated
// artifact returned to the caller. The engine owns the backend pool and must
// be closed; everything else it touches is stateless.
package frame
