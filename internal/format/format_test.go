package format

import (
	"fmt"
	"reflect"
	"strconv"
	"testing"
)

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", ""},
		{"12a3b4", "1234"},
		{"01310-100", "01310100"},
		{"R$ 1.234,56", "123456"},
	}
	for _, tt := range tests {
		if got := DigitsOnly(tt.in); got != tt.want {
			t.Errorf("DigitsOnly(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMaskPostalCode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"0", "0"},
		{"01310", "01310"},
		{"013101", "01310-1"},
		{"01310100", "01310-100"},
		{"01310-100", "01310-100"},
		{"0131010099", "01310-100"},
		{"abc", ""},
	}
	for _, tt := range tests {
		if got := MaskPostalCode(tt.in); got != tt.want {
			t.Errorf("MaskPostalCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMaskPostalCodeShortDigitsPassThrough(t *testing.T) {
	// Digit strings of length <= 5 are returned unchanged.
	for l := 0; l <= 5; l++ {
		in := "1234567"[:l]
		if got := MaskPostalCode(in); got != in {
			t.Errorf("MaskPostalCode(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestMaskCurrency(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "R$ 0,00"},
		{"0", "R$ 0,00"},
		{"000", "R$ 0,00"},
		{"5", "R$ 0,05"},
		{"50", "R$ 0,50"},
		{"100", "R$ 1,00"},
		{"0100", "R$ 1,00"},
		{"123456", "R$ 1.234,56"},
		{"123456789", "R$ 1.234.567,89"},
		{"1,00", "R$ 1,00"},
		{"abc", "R$ 0,00"},
	}
	for _, tt := range tests {
		if got := MaskCurrency(tt.in); got != tt.want {
			t.Errorf("MaskCurrency(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"R$ 0,00", 0},
		{"R$ 1,00", 1},
		{"R$ 1.234,56", 1234.56},
		{"100", 1},
	}
	for _, tt := range tests {
		if got := ParseCurrency(tt.in); got != tt.want {
			t.Errorf("ParseCurrency(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	// parseCurrency(maskCurrency(cents)) == cents/100 for any cent amount.
	for _, cents := range []int64{0, 1, 5, 99, 100, 101, 99999, 123456, 100000000} {
		masked := MaskCurrency(strconv.FormatInt(cents, 10))
		if got, want := ParseCurrency(masked), float64(cents)/100; got != want {
			t.Errorf("round trip for %d cents: mask %q parsed to %v, want %v", cents, masked, got, want)
		}
	}
}

func TestMaskCurrencyCents(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{123456, "R$ 1.234,56"},
		{-150, "-R$ 1,50"},
	}
	for _, tt := range tests {
		if got := MaskCurrencyCents(tt.in); got != tt.want {
			t.Errorf("MaskCurrencyCents(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1, "R$ 1,00"},
		{1234.56, "R$ 1.234,56"},
		{0.1, "R$ 0,10"},
		{-2.5, "-R$ 2,50"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCurrencyPtr(t *testing.T) {
	if got := FormatCurrencyPtr(nil); got != "R$ 0,00" {
		t.Errorf("FormatCurrencyPtr(nil) = %q, want R$ 0,00", got)
	}
	v := 10.5
	if got := FormatCurrencyPtr(&v); got != "R$ 10,50" {
		t.Errorf("FormatCurrencyPtr(10.5) = %q, want R$ 10,50", got)
	}
}

func TestMaskDateInput(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"2", "2"},
		{"25", "25"},
		{"251", "25/1"},
		{"2512", "25/12"},
		{"25122", "25/12/2"},
		{"25122024", "25/12/2024"},
		{"25/12/2024", "25/12/2024"},
		{"251220249999", "25/12/2024"},
	}
	for _, tt := range tests {
		if got := MaskDateInput(tt.in); got != tt.want {
			t.Errorf("MaskDateInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDateInput(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"25122024", "2024-12-25"},
		{"25/12/2024", "2024-12-25"},
		{"01011990", "1990-01-01"},
		{"", ""},
		{"2512202", ""},
		{"251220245", ""},
		{"25/12/24", ""},
		{"abc", ""},
	}
	for _, tt := range tests {
		if got := ParseDateInput(tt.in); got != tt.want {
			t.Errorf("ParseDateInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStorageDateToDisplay(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-12-25", "25/12/2024"},
		{"1990-01-01", "01/01/1990"},
		{"", ""},
		{"2024-12-25T00:00:00Z", ""},
		{"25/12/2024", ""},
		{"2024-1-5", ""},
	}
	for _, tt := range tests {
		if got := StorageDateToDisplay(tt.in); got != tt.want {
			t.Errorf("StorageDateToDisplay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDateRoundTrip(t *testing.T) {
	// storageDateToDisplay(parseDateInput(x)) == x for well formed dd/mm/yyyy.
	for _, in := range []string{"25/12/2024", "01/01/1990", "31/07/2001"} {
		stored := ParseDateInput(in)
		if got := StorageDateToDisplay(stored); got != in {
			t.Errorf("round trip %q: stored %q displayed as %q", in, stored, got)
		}
	}
}

func TestDisplayDateOrPlaceholder(t *testing.T) {
	if got := DisplayDateOrPlaceholder(""); got != "-" {
		t.Errorf("empty date displayed as %q, want -", got)
	}
	if got := DisplayDateOrPlaceholder("2024-12-25"); got != "25/12/2024" {
		t.Errorf("stored date displayed as %q, want 25/12/2024", got)
	}
}

func TestParseAges(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"", nil},
		{"5", []int{5}},
		{"5, 8, 12", []int{5, 8, 12}},
		{"5,,8", []int{5, 8}},
		{"5, abc, 8", []int{5, 8}},
		{"5, -3, 8", []int{5, 8}},
		{" 0 ", []int{0}},
	}
	for _, tt := range tests {
		if got := ParseAges(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseAges(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMaskPostalCodeHyphenPosition(t *testing.T) {
	// Lengths 6-8 always place the hyphen after the 5th digit.
	for l := 6; l <= 8; l++ {
		in := "12345678"[:l]
		got := MaskPostalCode(in)
		want := fmt.Sprintf("%s-%s", in[:5], in[5:])
		if got != want {
			t.Errorf("MaskPostalCode(%q) = %q, want %q", in, got, want)
		}
	}
}
