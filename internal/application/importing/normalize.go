package importing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// spanishMonths maps Spanish and Catalan month names to their number
var spanishMonths = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
	"gener":      time.January,
	"febrer":     time.February,
	"marc":       time.March,
	"març":       time.March,
	"maig":       time.May,
	"juny":       time.June,
	"juliol":     time.July,
	"agost":      time.August,
	"setembre":   time.September,
	"octobre":    time.October,
	"novembre":   time.November,
	"desembre":   time.December,
}

var longDateRe = regexp.MustCompile(`(\d{1,2})\s+(?:de|d['’])\s*([\p{L}·]+)(?:\s+de)?\s+(\d{4})`)

// NormalizeDecimal converts a European-formatted amount such as "3.680,00"
// to a decimal. Currency markers and spaces are stripped, and a
// parenthesised amount like "(52,50)" is read as negative.
func NormalizeDecimal(txt string) (decimal.Decimal, error) {
	s := strings.TrimSpace(txt)
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, "EUR", "")
	s = strings.ReplaceAll(s, " ", "")
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", txt, err)
	}
	return d, nil
}

// ParseLongDate converts a Spanish or Catalan long date such as
// "29 de noviembre de 2025" or "3 d'abril 2025" to a midnight-UTC date
func ParseLongDate(txt string) (time.Time, error) {
	m := longDateRe.FindStringSubmatch(strings.ToLower(txt))
	if m == nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q", txt)
	}

	day, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", txt, err)
	}
	month, ok := spanishMonths[m[2]]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month %q in date %q", m[2], txt)
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", txt, err)
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}
