// Package format holds the pt-BR input masking and parsing helpers used
// by the registration forms: currency (BRL), dates (dd/mm/yyyy) and
// postal codes (CEP). All functions are total; malformed input degrades
// to an empty string, zero or a placeholder so callers can run them on
// partial keystrokes.
package format

import (
	"regexp"
	"strconv"
	"strings"
)

// DatePlaceholder is shown when a record has no stored date.
const DatePlaceholder = "-"

var storageDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// DigitsOnly strips every non-digit character, preserving digit order.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskPostalCode formats a CEP as it is typed: up to 5 digits pass
// through unchanged, digits 6-8 go after a hyphen. Input beyond 8
// digits is ignored.
func MaskPostalCode(s string) string {
	d := DigitsOnly(s)
	if len(d) > 8 {
		d = d[:8]
	}
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// MaskCurrency interprets the digit sequence of s as a cent amount and
// renders it as "R$ <int>,<cents>" with thousands grouping. Empty or
// all-zero input yields "R$ 0,00".
func MaskCurrency(s string) string {
	d := strings.TrimLeft(DigitsOnly(s), "0")
	for len(d) < 3 {
		d = "0" + d
	}
	intPart := d[:len(d)-2]
	decPart := d[len(d)-2:]
	return "R$ " + groupThousands(intPart) + "," + decPart
}

// MaskCurrencyCents renders a stored integer cent amount in the mask
// format. Used to seed edit inputs from the stored numeric value rather
// than from a display string.
func MaskCurrencyCents(cents int64) string {
	if cents < 0 {
		return "-" + MaskCurrency(strconv.FormatInt(-cents, 10))
	}
	return MaskCurrency(strconv.FormatInt(cents, 10))
}

// ParseCurrency is the inverse of MaskCurrency: the digit sequence of s
// is a cent amount, returned divided by 100. Empty input parses to 0.
func ParseCurrency(s string) float64 {
	d := DigitsOnly(s)
	if d == "" {
		return 0
	}
	cents, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return 0
	}
	return float64(cents) / 100
}

// FormatCurrency renders an amount in base currency units using pt-BR
// conventions ("R$ 1.234,56"). The amount is rounded to cents.
func FormatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(v*100 + 0.5)
	out := MaskCurrency(strconv.FormatInt(cents, 10))
	if neg {
		return "-" + out
	}
	return out
}

// FormatCurrencyPtr is FormatCurrency with absent values treated as 0.
func FormatCurrencyPtr(v *float64) string {
	if v == nil {
		return FormatCurrency(0)
	}
	return FormatCurrency(*v)
}

// MaskDateInput groups the digits of s as dd/mm/yyyy while the user
// types, inserting a separator only once the next group has at least
// one digit. Input beyond 8 digits is ignored.
func MaskDateInput(s string) string {
	d := DigitsOnly(s)
	if len(d) > 8 {
		d = d[:8]
	}
	if len(d) <= 2 {
		return d
	}
	if len(d) <= 4 {
		return d[:2] + "/" + d[2:]
	}
	return d[:2] + "/" + d[2:4] + "/" + d[4:]
}

// ParseDateInput converts a typed dd/mm/yyyy date into the yyyy-mm-dd
// storage format. Anything whose digit count is not exactly 8 returns
// the empty string, never a partial date.
func ParseDateInput(s string) string {
	d := DigitsOnly(s)
	if len(d) != 8 {
		return ""
	}
	return d[4:8] + "-" + d[2:4] + "-" + d[0:2]
}

// StorageDateToDisplay reorders a stored yyyy-mm-dd date to dd/mm/yyyy.
// Values that do not match the storage pattern exactly yield "".
func StorageDateToDisplay(stored string) string {
	m := storageDatePattern.FindStringSubmatch(stored)
	if m == nil {
		return ""
	}
	return m[3] + "/" + m[2] + "/" + m[1]
}

// DisplayDateOrPlaceholder renders a stored date for display, falling
// back to a dash when no value is present.
func DisplayDateOrPlaceholder(stored string) string {
	if stored == "" {
		return DatePlaceholder
	}
	return StorageDateToDisplay(stored)
}

// ParseAges parses a comma separated list of ages, keeping only
// well-formed non-negative numbers and preserving their order.
func ParseAges(s string) []int {
	var ages []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			continue
		}
		ages = append(ages, n)
	}
	return ages
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
