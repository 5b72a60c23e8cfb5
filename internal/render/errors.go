package render

import "errors"

// ErrFailed marks backend construction, rasterization, timeout, and artifact
// relocation failures. The cause is always wrapped alongside; nothing in this
// package retries.
var ErrFailed = errors.New("rendering failed")
