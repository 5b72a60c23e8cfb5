package template

import "errors"

// ErrNotFound marks references that do not resolve to a readable template
// file. The CLI boundary maps it to a distinct "not found" message.
var ErrNotFound = errors.New("template not found")
