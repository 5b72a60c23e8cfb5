package template_test

import (
	"strings"
	"testing"

	"frameforge/internal/template"
)

func TestSubstituteConcreteScenario(t *testing.T) {
	source := `<div>{{title}}</div><div>{{text}}</div>`
	ctx := template.BuildContext(template.Fields{
		Title: "Welcome",
		Text:  "Hi",
		Image: "a.png",
	}, nil)

	got := template.Substitute(source, ctx)
	if got != `<div>Welcome</div><div>Hi</div>` {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestSubstituteTitleFeedsTopicPlaceholder(t *testing.T) {
	ctx := template.BuildContext(template.Fields{Title: "Why reading matters"}, nil)
	got := template.Substitute(`<h1>{{topic}}</h1>`, ctx)
	if got != `<h1>Why reading matters</h1>` {
		t.Fatalf("topic placeholder should receive the title value: %q", got)
	}
}

func TestSubstituteMissingKeyStaysVerbatim(t *testing.T) {
	ctx := template.BuildContext(template.Fields{Text: "Hello"}, nil)
	got := template.Substitute(`<div>{{unknown_key}}</div>`, ctx)
	if !strings.Contains(got, "{{unknown_key}}") {
		t.Fatalf("unresolved placeholder must pass through verbatim: %q", got)
	}
}

func TestSubstituteExtensionOverridesRequired(t *testing.T) {
	ctx := template.BuildContext(
		template.Fields{Text: "from required"},
		map[string]string{"text": "from extension"},
	)
	got := template.Substitute(`{{text}}`, ctx)
	if got != "from extension" {
		t.Fatalf("extension value must win on collision: %q", got)
	}
}

func TestSubstituteEmptyValueReplacesToken(t *testing.T) {
	ctx := template.BuildContext(template.Fields{}, nil)
	got := template.Substitute(`[{{text}}]`, ctx)
	if got != "[]" {
		t.Fatalf("empty value should replace the token, not remove it: %q", got)
	}
}

func TestSubstituteNoRecursiveExpansion(t *testing.T) {
	// topic is applied before text, so a substituted value that mentions an
	// already-processed key is never re-scanned.
	ctx := template.BuildContext(template.Fields{Title: "Reading", Text: "{{topic}}"}, nil)
	got := template.Substitute(`{{text}}`, ctx)
	if got != "{{topic}}" {
		t.Fatalf("substituted values must not be expanded again: %q", got)
	}
}

func TestSubstituteDeclarationTokensUntouched(t *testing.T) {
	source := `{{accent_color:color=#ff0000}}<i style="color:{{accent_color}}"></i>`
	ctx := template.BuildContext(template.Fields{}, map[string]string{"accent_color": "#00ff00"})
	got := template.Substitute(source, ctx)
	if !strings.Contains(got, "{{accent_color:color=#ff0000}}") {
		t.Fatalf("declaration token must never be substituted: %q", got)
	}
	if !strings.Contains(got, `color:#00ff00`) {
		t.Fatalf("plain token should be substituted: %q", got)
	}
}

func TestContextSetDefaultDoesNotOverride(t *testing.T) {
	ctx := template.BuildContext(template.Fields{}, map[string]string{"accent": "caller"})
	ctx.SetDefault("accent", "declared-default")
	ctx.SetDefault("fresh", "value")

	if v, _ := ctx.Get("accent"); v != "caller" {
		t.Fatalf("SetDefault must not override: %q", v)
	}
	if v, _ := ctx.Get("fresh"); v != "value" {
		t.Fatalf("SetDefault should bind unbound keys: %q", v)
	}
}

func TestContextOrderStableUnderOverride(t *testing.T) {
	ctx := template.NewContext()
	ctx.Set("a", "1")
	ctx.Set("b", "2")
	ctx.Set("a", "3")
	keys := ctx.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("override must keep first-insertion order: %v", keys)
	}
	if v, _ := ctx.Get("a"); v != "3" {
		t.Fatalf("override must update the value: %q", v)
	}
}
