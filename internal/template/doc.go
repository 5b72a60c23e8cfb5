// Package template loads HTML frame templates and implements the two token
// syntaxes of the template format.
//
// A template is addressed by a reference like "1080x1920/default.html"
// resolved against one or more configured roots; the leading WxH path segment
// fixes the media size. Template text may contain plain substitution tokens
// ({{name}}) replaced at render time, and parameter declaration tokens
// ({{name:type=default}}) that describe customizable inputs without being
// substitution points themselves.
package template
