package preflight

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

var commandContext = exec.CommandContext

// CheckFonts verifies that fontconfig is present and sees at least one font.
// Headless Chromium renders text through fontconfig on Linux; an empty font
// set produces frames full of tofu glyphs.
func CheckFonts(ctx context.Context) Result {
	const name = "Fonts"
	if runtime.GOOS != "linux" {
		return Result{Name: name, Passed: true, Detail: "skipped (not linux)"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	out, err := commandContext(checkCtx, "fc-list").Output()
	if err != nil {
		return Result{Name: name, Detail: "fontconfig not found; install fontconfig plus a base font package such as fonts-liberation"}
	}
	fonts := strings.Count(strings.TrimSpace(string(out)), "\n") + 1
	if strings.TrimSpace(string(out)) == "" {
		return Result{Name: name, Detail: "fontconfig reports no fonts; install fonts-liberation or fonts-noto"}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d fonts available", fonts)}
}

// CheckBrowser verifies that a Chromium/Chrome binary can be located. When
// chromePath is empty the usual executable names are probed on PATH.
func CheckBrowser(ctx context.Context, chromePath string) Result {
	const name = "Browser"
	if strings.TrimSpace(chromePath) != "" {
		if _, err := exec.LookPath(chromePath); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("configured browser %q not executable", chromePath)}
		}
		return Result{Name: name, Passed: true, Detail: chromePath}
	}
	for _, candidate := range []string{"chromium", "chromium-browser", "google-chrome", "google-chrome-stable", "headless-shell"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return Result{Name: name, Passed: true, Detail: path}
		}
	}
	return Result{Name: name, Detail: "no Chromium/Chrome binary on PATH; set renderer.chrome_path"}
}

// RunAll executes every applicable check.
func RunAll(ctx context.Context, chromePath string) []Result {
	return []Result{
		CheckBrowser(ctx, chromePath),
		CheckFonts(ctx),
	}
}
