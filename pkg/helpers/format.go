package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupPrinter = message.NewPrinter(language.English)

// FormatPrice renders amount for display in the given ISO currency code.
// Rounding is half to even, so PKR 1234.5 renders as "Rs. 1,234".
func FormatPrice(amount float64, currency string) string {
	switch currency {
	case "USD":
		return "$" + groupDecimal(amount, 2)
	case "PKR":
		return "Rs. " + groupDecimal(amount, 0)
	default:
		return groupDecimal(amount, 2) + " " + currency
	}
}

// groupDecimal formats amount with a fixed number of decimals and comma thousands separators.
func groupDecimal(amount float64, decimals int) string {
	s := strconv.FormatFloat(amount, 'f', decimals, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return sign + s
	}
	out := sign + groupPrinter.Sprintf("%d", n)
	if frac != "" {
		out += "." + frac
	}
	return out
}

// CalculateTimeAgo describes how long ago ts was, relative to the current UTC time.
func CalculateTimeAgo(ts time.Time) string {
	return timeAgo(time.Now().UTC(), ts)
}

func timeAgo(now, ts time.Time) string {
	diff := now.Sub(ts)
	if diff < 0 {
		return "Just now"
	}
	days := int(diff / (24 * time.Hour))
	switch {
	case days >= 365:
		return plural(days/365, "year")
	case days >= 30:
		return plural(days/30, "month")
	case days >= 7:
		return plural(days/7, "week")
	case days == 1:
		return "1 day ago"
	case days > 1:
		return fmt.Sprintf("%d days ago", days)
	}
	if h := int(diff / time.Hour); h > 0 {
		return plural(h, "hour")
	}
	if m := int(diff / time.Minute); m > 0 {
		return plural(m, "minute")
	}
	return "Just now"
}

func plural(n int, unit string) string {
	if n > 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
