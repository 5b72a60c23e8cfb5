package main

import (
	"testing"
)

func TestRenderCommandMissingTemplateFailsBeforeBrowser(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"render", "1080x1920/missing.html", "--title", "x"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing template")
	}
	requireContains(t, err.Error(), "not found")
}

func TestRenderCommandRejectsMalformedSet(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"render", "1080x1920/a.html", "--set", "noequals"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for malformed --set")
	}
	requireContains(t, err.Error(), "key=value")
}

func TestParseSetPairs(t *testing.T) {
	ext, err := parseSetPairs([]string{"accent=#fff", "caption=hello=world"})
	if err != nil {
		t.Fatal(err)
	}
	if ext["accent"] != "#fff" {
		t.Fatalf("accent = %q", ext["accent"])
	}
	if ext["caption"] != "hello=world" {
		t.Fatalf("value with equals should keep its tail: %q", ext["caption"])
	}

	if got, err := parseSetPairs(nil); err != nil || got != nil {
		t.Fatalf("empty input should yield nil, got %v (%v)", got, err)
	}
}
