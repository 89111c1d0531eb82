package analytics

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date representation. Bookings arrive
// with dates in this form; anything else is treated as malformed and dropped
// from date-based aggregation instead of failing the whole batch.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, bool) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// ParsePrice reads the leading decimal number out of a free-text price.
// Missing or non-numeric prices count as zero; aggregation never errors on
// bad input.
func ParsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	end := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		if (c == '-' || c == '+') && end == 0 {
			end++
			continue
		}
		break
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}
