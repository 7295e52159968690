package format

import (
	"fmt"
	"strings"
)

// FormatNumberString inserts a thin separator every three digits of a decimal
// number string, e.g. "1234567" -> "1,234,567". A leading sign is preserved.
// Strings containing non-digit characters (hex output, prefixed literals) are
// returned unchanged.
func FormatNumberString(s string) string {
	digits := s
	sign := ""
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	if len(digits) <= 3 {
		return s
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return s
		}
	}

	var b strings.Builder
	b.Grow(len(s) + len(digits)/3)
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatBytes renders a byte count with a binary unit suffix, e.g.
// 1536 -> "1.5 KiB".
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
