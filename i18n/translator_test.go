package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	data := map[string]string{"field": "Nm", "max": "70"}
	if msg := For("").Message("1002", data); msg != "Nm exceeds the maximum length of 70" {
		t.Fatalf("unexpected english message: %q", msg)
	}

	msg := For("ja").Message("1002", data)
	if msg == "" || msg == "Nm exceeds the maximum length of 70" {
		t.Fatalf("expected japanese message, got %q", msg)
	}
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if msg := English().Message("42", nil); msg != "42" {
		t.Fatalf("expected code echo, got %q", msg)
	}
	if msg := English().Message("9999", nil); msg != "Unknown document type" {
		t.Fatalf("unexpected sentinel message: %q", msg)
	}
}

func TestTranslator_JapaneseCoversEveryCode(t *testing.T) {
	for code := range english {
		if msg := Japanese().Message(code, nil); msg == code {
			t.Fatalf("missing japanese text for %s", code)
		}
	}
	if For("JA").Message("9999", nil) != Japanese().Message("9999", nil) {
		t.Fatalf("language lookup must ignore case")
	}
}
