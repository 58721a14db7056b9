package speakable

import "testing"

func TestLoadLocaleData(t *testing.T) {
	tables, err := loadLocaleData()
	if err != nil {
		t.Fatalf("loadLocaleData: %v", err)
	}
	if len(tables) != 3 {
		t.Fatalf("loadLocaleData returned %d tables, want 3", len(tables))
	}

	for code, data := range tables {
		if code != normalizeLocale(data.Code) {
			t.Fatalf("table keyed %q but declares %q", code, data.Code)
		}
		if _, ok := languageBuilders[data.Language]; !ok {
			t.Fatalf("locale %s declares unknown language %q", code, data.Language)
		}
		if len(data.Weekdays) != 7 {
			t.Fatalf("locale %s has %d weekday names", code, len(data.Weekdays))
		}
		if len(data.Months) != 12 {
			t.Fatalf("locale %s has %d month names", code, len(data.Months))
		}
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en_US", "en-us"},
		{" ES-es ", "es-es"},
		{"en", "en"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := normalizeLocale(tc.in); got != tc.want {
			t.Fatalf("normalizeLocale(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLocaleParentChain(t *testing.T) {
	chain := localeParentChain("en-us")
	if len(chain) == 0 || chain[0] != "en" {
		t.Fatalf("localeParentChain(en-us) = %v, want leading en", chain)
	}

	if chain := localeParentChain("en"); len(chain) != 0 {
		t.Fatalf("localeParentChain(en) = %v, want empty", chain)
	}
}
