package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp layouts used in generator files and the transactions JSON.
const (
	TimestampLayout  = "2006-01-02 15:04:05" // Generator file timestamps
	DateMinuteLayout = "2006-01-02 15:04"    // Transaction JSON timestamps
)

// FormatCurrency renders an amount as "$" plus a thousands-grouped two-decimal
// value, e.g. $1,234.56. A missing value renders as $0.00.
func FormatCurrency(value any) string {
	var amount float64
	switch v := value.(type) {
	case nil:
		return "$0.00"
	case float64:
		amount = v
	case float32:
		amount = float64(v)
	case int:
		amount = float64(v)
	case int64:
		amount = float64(v)
	default:
		return "$0.00"
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	parts := strings.SplitN(s, ".", 2)
	return "$" + sign + groupThousands(parts[0]) + "." + parts[1]
}

// FormatChange renders a signed balance change string mirroring the sign of
// the amount, e.g. "+120.50" or "-45.00".
func FormatChange(amount float64) string {
	return fmt.Sprintf("%+.2f", amount)
}

// FormatTimestamp renders a timestamp in the generator file format.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// groupThousands inserts a comma between every group of three digits
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
