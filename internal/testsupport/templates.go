package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"frameforge/internal/config"
)

// WriteTemplate places a template file under the config's first template root
// at the given reference and returns its absolute path.
func WriteTemplate(t testing.TB, cfg *config.Config, ref, source string) string {
	t.Helper()

	if len(cfg.Paths.TemplateDirs) == 0 {
		t.Fatal("config has no template roots")
	}
	path := filepath.Join(cfg.Paths.TemplateDirs[0], filepath.FromSlash(ref))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write template %s: %v", path, err)
	}
	return path
}
