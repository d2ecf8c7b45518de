package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg == "invalid_type" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_type", nil); msg == "invalid type" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_AllCodesCovered(t *testing.T) {
	codes := []string{
		"invalid_type", "required", "unknown_key", "too_short", "too_long",
		"invalid_enum", "invalid_format", "parse_error", "truncated",
	}
	for _, lang := range []string{"en", "ja"} {
		SetLanguage(lang)
		for _, code := range codes {
			if msg := T(code, nil); msg == code || msg == "" {
				t.Fatalf("lang %s: no dictionary entry for %s", lang, code)
			}
		}
	}
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown codes should echo the code, got %q", msg)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string {
	return "CODE:" + code
}

func TestSetTranslator(t *testing.T) {
	SetTranslator(upperTranslator{})
	if msg := T("required", nil); msg != "CODE:required" {
		t.Fatalf("custom translator not used, got %q", msg)
	}

	// nil restores the built-in english dictionary
	SetTranslator(nil)
	if msg := T("required", nil); msg != "required property missing" {
		t.Fatalf("nil should restore the default translator, got %q", msg)
	}

	// unsupported languages fall back to en
	SetLanguage("fr")
	if msg := T("required", nil); msg != "required property missing" {
		t.Fatalf("unsupported language should fall back to en, got %q", msg)
	}
	SetLanguage("en")
}
