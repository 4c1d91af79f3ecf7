package expr

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/flowglyph/flowglyph/value"
)

func registerDefaultFilters(r *Registry) {
	r.Register("upper", filterUpper)
	r.Register("lower", filterLower)
	r.Register("trim", filterTrim)
	r.Register("number", filterNumber)
	r.Register("format", filterFormat)
	r.Register("truncate", filterTruncate)
	r.Register("currencySymbol", filterCurrencySymbol)
}

func parseCulture(culture string) language.Tag {
	if culture == "" {
		return language.Und
	}
	tag, err := language.Parse(culture)
	if err != nil {
		return language.Und
	}
	return tag
}

func filterUpper(input value.Value, _ FilterArguments, culture string) value.Value {
	s, ok := input.AsString()
	if !ok {
		return input
	}
	return value.String(cases.Upper(parseCulture(culture)).String(s))
}

func filterLower(input value.Value, _ FilterArguments, culture string) value.Value {
	s, ok := input.AsString()
	if !ok {
		return input
	}
	return value.String(cases.Lower(parseCulture(culture)).String(s))
}

func filterTrim(input value.Value, _ FilterArguments, _ string) value.Value {
	s, ok := input.AsString()
	if !ok {
		return input
	}
	return value.String(strings.TrimSpace(s))
}

// filterNumber formats a number with the positional digit count (default 2
// when omitted), equivalent to a culture-aware "F{n}" format.
func filterNumber(input value.Value, args FilterArguments, culture string) value.Value {
	n, ok := input.AsNumber()
	if !ok {
		return value.Null
	}
	digits := 2
	if args.Positional != nil {
		if d, ok := args.Positional.NumberCoerce(); ok {
			digits = clampInt(int(d), 0, 20)
		}
	}
	return value.String(formatFixed(n, digits, culture))
}

// filterFormat handles both the numeric "F{n}"-style formatter and the
// date-time formatter overload described in spec §4.2's filter table.
func filterFormat(input value.Value, args FilterArguments, culture string) value.Value {
	if args.Positional == nil {
		return value.Null
	}
	formatStr, ok := args.Positional.AsString()
	if !ok || len(formatStr) > 100 {
		return value.Null
	}

	if n, ok := input.AsNumber(); ok {
		return value.String(applyNumericFormat(n, formatStr, culture))
	}
	if s, ok := input.AsString(); ok {
		if t, ok := parseInvariantDateTime(s); ok {
			return value.String(applyDateTimeFormat(t, formatStr))
		}
	}
	return value.Null
}

func applyNumericFormat(n float64, format, culture string) string {
	if format == "" {
		return formatFixed(n, 2, culture)
	}
	kind := format[0]
	digits := 2
	if len(format) > 1 {
		if d, err := strconv.Atoi(format[1:]); err == nil {
			digits = clampInt(d, 0, 20)
		}
	}
	switch kind {
	case 'N', 'n':
		return formatThousands(n, digits, culture)
	case 'F', 'f':
		return formatFixed(n, digits, culture)
	case 'C', 'c':
		return formatCurrency(n, culture)
	case 'P', 'p':
		return formatPercent(n, digits, culture)
	default:
		return formatFixed(n, digits, culture)
	}
}

// formatFixed renders a plain, ungrouped decimal with culture-correct
// decimal separator (e.g. "1234,50" for de-DE vs "1234.50" for en-US).
func formatFixed(n float64, digits int, culture string) string {
	p := message.NewPrinter(parseCulture(culture))
	return p.Sprintf("%v", number.Decimal(n,
		number.MaxFractionDigits(digits), number.MinFractionDigits(digits), number.NoSeparator()))
}

// formatThousands renders a decimal with culture-correct digit grouping
// (e.g. "1,234.50" for en-US vs "1.234,50" for de-DE).
func formatThousands(n float64, digits int, culture string) string {
	p := message.NewPrinter(parseCulture(culture))
	return p.Sprintf("%v", number.Decimal(n,
		number.MaxFractionDigits(digits), number.MinFractionDigits(digits)))
}

// formatPercent renders n as a culture-correct percentage; n is the raw
// fraction (0.42 formats as "42%"), matching number.Percent's contract.
func formatPercent(n float64, digits int, culture string) string {
	p := message.NewPrinter(parseCulture(culture))
	return p.Sprintf("%v", number.Percent(n,
		number.MaxFractionDigits(digits), number.MinFractionDigits(digits)))
}

// formatCurrency resolves culture's default currency unit and formats n in
// it with the unit's own symbol and the culture's grouping/decimal rules
// (e.g. de-DE formats EUR as "1.234,50 €", en-US formats USD as "$1,234.50").
func formatCurrency(n float64, culture string) string {
	tag := parseCulture(culture)
	unit, _ := currency.FromTag(tag)
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(n)))
}

var invariantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"01/02/2006 15:04:05",
}

func parseInvariantDateTime(s string) (time.Time, bool) {
	for _, layout := range invariantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// applyDateTimeFormat translates a small set of .NET-style date tokens into
// Go's reference-time layout and formats t.
func applyDateTimeFormat(t time.Time, format string) string {
	replacer := strings.NewReplacer(
		"yyyy", "2006",
		"yy", "06",
		"MM", "01",
		"dd", "02",
		"HH", "15",
		"mm", "04",
		"ss", "05",
	)
	layout := replacer.Replace(format)
	return t.Format(layout)
}

// filterTruncate implements spec §4.2's truncate contract. Length is
// code-unit (rune) based, not grapheme-aware, per the spec's Open Question
// resolution (a grapheme-aware variant is a documented future extension).
func filterTruncate(input value.Value, args FilterArguments, _ string) value.Value {
	s := input.String()
	maxLen := 50
	if args.Positional != nil {
		if n, ok := args.Positional.NumberCoerce(); ok {
			maxLen = clampInt(int(n), 0, 10000)
		}
	}
	suffix := "…"
	if v, ok := args.Named["suffix"]; ok && v != nil {
		if sv, ok := v.AsString(); ok {
			suffix = sv
		}
	}
	fromEnd := false
	if v, ok := args.Named["fromEnd"]; ok {
		fromEnd = v == nil || v.Truthy()
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return value.String(s)
	}

	suffixRunes := []rune(suffix)
	if maxLen <= len(suffixRunes) {
		if maxLen <= 0 {
			return value.String("")
		}
		return value.String(string(suffixRunes[:maxLen]))
	}

	keep := maxLen - len(suffixRunes)
	if fromEnd {
		return value.String(suffix + string(runes[len(runes)-keep:]))
	}
	return value.String(string(runes[:keep]) + suffix)
}

func filterCurrencySymbol(input value.Value, _ FilterArguments, _ string) value.Value {
	if s, ok := input.AsString(); ok {
		if sym, ok := currencySymbols[strings.ToUpper(s)]; ok {
			return value.String(sym)
		}
		return value.String(s)
	}
	if n, ok := input.AsNumber(); ok {
		code := fmt.Sprintf("%03d", int(n))
		if alpha, ok := currencyNumericToAlpha[code]; ok {
			if sym, ok := currencySymbols[alpha]; ok {
				return value.String(sym)
			}
		}
		return value.Number(n)
	}
	return input
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
