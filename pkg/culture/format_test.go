package culture

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	p := New()
	feb := time.Date(2016, time.February, 3, 0, 0, 0, 0, time.UTC)
	oct := time.Date(2016, time.October, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		locale string
		moment time.Time
		want   string
	}{
		{"en", feb, "February 3, 2016"},
		{"en-GB", feb, "3 February 2016"},
		{"fr", oct, "30 octobre 2016"},
		{"es", time.Date(2025, time.October, 7, 0, 0, 0, 0, time.UTC), "7 de octubre de 2025"},
	}

	for _, tc := range tests {
		if got := p.FormatDate(tc.locale, tc.moment); got != tc.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tc.locale, got, tc.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	p := New()

	tests := []struct {
		locale string
		moment time.Time
		want   string
	}{
		{"fr", time.Date(2016, time.February, 3, 4, 5, 6, 0, time.UTC), "04:05"},
		{"es", time.Date(2025, time.October, 7, 14, 30, 0, 0, time.UTC), "14:30"},
	}

	for _, tc := range tests {
		if got := p.FormatTime(tc.locale, tc.moment); got != tc.want {
			t.Errorf("FormatTime(%q) = %q, want %q", tc.locale, got, tc.want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	p := New()

	tests := []struct {
		locale string
		moment time.Time
		want   string
	}{
		{"fr", time.Date(2016, time.February, 3, 4, 5, 6, 0, time.UTC), "mercredi 3 février 2016 04:05"},
		{"fr", time.Date(2016, time.October, 30, 2, 5, 6, 0, time.UTC), "dimanche 30 octobre 2016 02:05"},
	}

	for _, tc := range tests {
		if got := p.FormatDateTime(tc.locale, tc.moment); got != tc.want {
			t.Errorf("FormatDateTime(%q) = %q, want %q", tc.locale, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	p := New()

	tests := []struct {
		locale   string
		value    float64
		decimals int
		want     string
	}{
		{"en", 1234.5, 1, "1,234.5"},
		{"en", 1234.5, -1, "1,234.5"},
		{"en", 1234.0, -1, "1,234"},
		{"fr", 3.14, 2, "3,14"},
	}

	for _, tc := range tests {
		if got := p.FormatNumber(tc.locale, tc.value, tc.decimals); got != tc.want {
			t.Errorf("FormatNumber(%q, %v, %d) = %q, want %q", tc.locale, tc.value, tc.decimals, got, tc.want)
		}
	}
}

func TestDecimalSeparator(t *testing.T) {
	p := New()
	if got := p.DecimalSeparator("en"); got != "." {
		t.Errorf("en separator = %q", got)
	}
	if got := p.DecimalSeparator("fr"); got != "," {
		t.Errorf("fr separator = %q", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	p := New()

	tests := []struct {
		locale    string
		value     float64
		code      string
		precision int
		want      string
	}{
		{"en", 12.34, "USD", -1, "$12.34"},
		{"en", 12.34, "EUR", -1, "€12.34"},
		{"fr", 12.34, "EUR", -1, "12,34 €"},
		{"en", 1234.0, "JPY", -1, "¥1,234"},
		{"en", 5.0, "USD", 0, "$5"},
	}

	for _, tc := range tests {
		got, err := p.FormatCurrency(tc.locale, tc.value, tc.code, tc.precision)
		if err != nil {
			t.Fatalf("FormatCurrency(%q, %q): %v", tc.locale, tc.code, err)
		}
		if got != tc.want {
			t.Errorf("FormatCurrency(%q, %v, %q) = %q, want %q", tc.locale, tc.value, tc.code, got, tc.want)
		}
	}
}

func TestFormatCurrencyUnknownCode(t *testing.T) {
	p := New()
	if _, err := p.FormatCurrency("en", 1, "WAT", -1); err == nil {
		t.Fatal("expected error for unknown currency code")
	}
}
