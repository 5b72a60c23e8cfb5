package template

import (
	"regexp"
	"strconv"
	"strings"
)

var sizeSegment = regexp.MustCompile(`^(\d+)x(\d+)$`)

// SizeFromPath derives the media size from the first path segment matching
// <int>x<int>. The size lives in the path by convention, never in the
// template body; a path without such a segment returns ok=false, which is a
// caller-configuration problem rather than a parse error.
func SizeFromPath(path string) (width, height int, ok bool) {
	normalized := strings.ReplaceAll(path, "\\", "/")
	for _, segment := range strings.Split(normalized, "/") {
		m := sizeSegment.FindStringSubmatch(segment)
		if m == nil {
			continue
		}
		w, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		h, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if w <= 0 || h <= 0 {
			continue
		}
		return w, h, true
	}
	return 0, 0, false
}
