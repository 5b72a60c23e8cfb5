package template_test

import (
	"reflect"
	"testing"

	"frameforge/internal/template"
)

func TestParseParametersExtractsDeclarations(t *testing.T) {
	source := `<div style="color: {{accent_color:color=#ff0000}}">` +
		`{{custom_text:text=Hello World}}` +
		`<span data-count="{{item_count:number=3}}" data-flag="{{show_footer:bool=true}}"></span></div>`

	params := template.ParseParameters(source)
	if len(params) != 4 {
		t.Fatalf("expected 4 params, got %d: %#v", len(params), params)
	}

	accent, ok := params["accent_color"]
	if !ok {
		t.Fatal("missing accent_color")
	}
	want := template.ParameterSpec{
		Name:    "accent_color",
		Type:    template.ParamTypeColor,
		Default: "#ff0000",
		Label:   "accent_color",
	}
	if accent != want {
		t.Fatalf("unexpected accent_color spec: %#v", accent)
	}
	if params["custom_text"].Default != "Hello World" {
		t.Fatalf("default should keep literal text, got %q", params["custom_text"].Default)
	}
	if params["item_count"].Type != template.ParamTypeNumber {
		t.Fatalf("unexpected type: %v", params["item_count"].Type)
	}
	if params["show_footer"].Type != template.ParamTypeBool {
		t.Fatalf("unexpected type: %v", params["show_footer"].Type)
	}
}

func TestParseParametersPlainTokensYieldEmptySchema(t *testing.T) {
	params := template.ParseParameters(`<div>{{title}}</div><div>{{text}}</div><img src="{{image}}">`)
	if len(params) != 0 {
		t.Fatalf("plain tokens must not produce schema entries: %#v", params)
	}
}

func TestParseParametersUnknownTypeFallsBackToText(t *testing.T) {
	params := template.ParseParameters(`{{due:date=tomorrow}}`)
	spec, ok := params["due"]
	if !ok {
		t.Fatal("declaration with unknown type should still parse")
	}
	if spec.Type != template.ParamTypeText {
		t.Fatalf("unknown type must normalize to text, got %v", spec.Type)
	}
	if spec.Default != "tomorrow" {
		t.Fatalf("unexpected default: %q", spec.Default)
	}
}

func TestParseParametersSkipsMalformedDeclarations(t *testing.T) {
	source := `{{bad type=x}}{{:text=y}}{{9lives:text=z}}{{ok:text=fine}}{{half:text`
	params := template.ParseParameters(source)
	if len(params) != 1 {
		t.Fatalf("only the well-formed declaration should survive: %#v", params)
	}
	if params["ok"].Default != "fine" {
		t.Fatalf("unexpected default: %q", params["ok"].Default)
	}
}

func TestParseParametersDuplicateLastWins(t *testing.T) {
	params := template.ParseParameters(`{{accent:color=#111111}} ... {{accent:color=#222222}}`)
	if params["accent"].Default != "#222222" {
		t.Fatalf("later declaration should win, got %q", params["accent"].Default)
	}
}

func TestParseSchemaIsIdempotent(t *testing.T) {
	tpl := &template.Template{
		Ref:    "1080x1920/default.html",
		Path:   "/tmp/1080x1920/default.html",
		Source: `{{accent_color:color=#ff0000}}<div>{{text}}</div>`,
		Width:  1080,
		Height: 1920,
	}
	first := template.ParseSchema(tpl)
	second := template.ParseSchema(tpl)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("schema parse must be idempotent: %#v vs %#v", first, second)
	}
	if first.MediaWidth != 1080 || first.MediaHeight != 1920 {
		t.Fatalf("unexpected media size: %dx%d", first.MediaWidth, first.MediaHeight)
	}
}

func TestSchemaParamNamesSorted(t *testing.T) {
	s := template.Schema{Params: map[string]template.ParameterSpec{
		"zeta": {}, "alpha": {}, "mid": {},
	}}
	got := s.ParamNames()
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected order: %v", got)
	}
}
