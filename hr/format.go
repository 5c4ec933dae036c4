package hr

import "fmt"

// FormatCurrency renders a numeric value as a dollar amount with thousands
// separators. Unknown or missing values render as $0.00.
func FormatCurrency(value any) string {
	var amount float64

	switch v := value.(type) {
	case float64:
		amount = v
	case float32:
		amount = float64(v)
	case int64:
		amount = float64(v)
	case int:
		amount = float64(v)
	case nil:
		amount = 0
	default:
		return fmt.Sprintf("$%v", v)
	}

	return "$" + groupThousands(fmt.Sprintf("%.2f", amount))
}

// groupThousands inserts commas into the integer part of a formatted
// decimal, e.g. "75000.00" becomes "75,000.00".
func groupThousands(s string) string {
	intPart := s
	rest := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, rest = s[:i], s[i:]
			break
		}
	}

	sign := ""
	if len(intPart) > 0 && intPart[0] == '-' {
		sign, intPart = "-", intPart[1:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + rest
	}

	var out []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	return sign + string(out) + rest
}

// FormatValue renders a nullable cell for display.
func FormatValue(value any) string {
	if value == nil {
		return "N/A"
	}
	return fmt.Sprintf("%v", value)
}
