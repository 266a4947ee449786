package internal

import "testing"

func TestNewTranslator(t *testing.T) {
	tr, err := NewTranslator("id")
	if err != nil {
		t.Fatalf("NewTranslator() error: %v", err)
	}
	if tr.Locale() != "id" {
		t.Errorf("Locale() = %q, want %q", tr.Locale(), "id")
	}
}

func TestNewTranslator_UnknownLocaleFallsBack(t *testing.T) {
	tr, err := NewTranslator("fr")
	if err != nil {
		t.Fatalf("NewTranslator() error: %v", err)
	}
	if tr.Locale() != DefaultLocale {
		t.Errorf("Locale() = %q, want default %q", tr.Locale(), DefaultLocale)
	}
}

func TestTranslator_T(t *testing.T) {
	tr, err := NewTranslator("id")
	if err != nil {
		t.Fatalf("NewTranslator() error: %v", err)
	}

	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{name: "nested key id", locale: "id", key: "chat.tabs.inbox", want: "Pesan"},
		{name: "nested key en", locale: "en", key: "chat.tabs.inbox", want: "Messages"},
		{name: "top-level traversal", locale: "id", key: "chat.newChat", want: "Tanya AI Baru"},
		{name: "missing in active falls back to en", locale: "id", key: "legal.terms", want: "Terms of Service"},
		{name: "missing key returns key", locale: "id", key: "chat.tabs.archive", want: "chat.tabs.archive"},
		{name: "non-leaf returns key", locale: "id", key: "chat.tabs", want: "chat.tabs"},
		{name: "unknown root returns key", locale: "en", key: "payments.title", want: "payments.title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr.SetLocale(tt.locale)
			if got := tr.T(tt.key); got != tt.want {
				t.Errorf("T(%q) in %s = %q, want %q", tt.key, tt.locale, got, tt.want)
			}
		})
	}
}

func TestTranslator_SetLocaleIgnoresUnknown(t *testing.T) {
	tr, err := NewTranslator("id")
	if err != nil {
		t.Fatalf("NewTranslator() error: %v", err)
	}

	tr.SetLocale("de")
	if tr.Locale() != "id" {
		t.Errorf("Locale() = %q after SetLocale(de), want %q", tr.Locale(), "id")
	}
}
