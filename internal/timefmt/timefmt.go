// Package timefmt converts between puzzle completion times typed by people
// ("95", "3:42", "1:02:03") and integer seconds.
package timefmt

import (
	"math"
	"strconv"
	"strings"
)

// Placeholder is rendered for an absent value.
const Placeholder = "-"

// MaxSeconds is the largest time Parse accepts. Stored times are 32-bit.
const MaxSeconds = math.MaxInt32

// Number is any value Format accepts.
type Number interface {
	~int | ~int64 | ~float64
}

// Parse reads seconds, "mm:ss" or "hh:mm:ss". Minutes and seconds after the
// leading component must be below 60 and the total must not exceed
// MaxSeconds. It reports false for anything else.
func Parse(text string) (int, bool) {
	value := strings.TrimSpace(text)
	if value == "" {
		return 0, false
	}
	parts := strings.Split(value, ":")
	nums := make([]int64, 0, len(parts))
	for _, part := range parts {
		n, ok := parseComponent(strings.TrimSpace(part))
		if !ok || n > MaxSeconds {
			return 0, false
		}
		nums = append(nums, int64(n))
	}

	// components are at most MaxSeconds, so the sums cannot overflow int64
	var total int64
	switch len(nums) {
	case 1:
		total = nums[0]
	case 2:
		mm, ss := nums[0], nums[1]
		if ss >= 60 {
			return 0, false
		}
		total = mm*60 + ss
	case 3:
		hh, mm, ss := nums[0], nums[1], nums[2]
		if mm >= 60 || ss >= 60 {
			return 0, false
		}
		total = hh*3600 + mm*60 + ss
	default:
		return 0, false
	}
	if total > MaxSeconds {
		return 0, false
	}
	return int(total), true
}

func parseComponent(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Format renders secs as "m:ss" below an hour and "h:mm:ss" otherwise.
// Fractions are floored and negatives clamp to zero. Nil renders Placeholder.
func Format[T Number](secs *T) string {
	if secs == nil {
		return Placeholder
	}
	return Seconds(int(math.Max(0, math.Floor(float64(*secs)))))
}

// Seconds formats a present, non-negative value.
func Seconds(secs int) string {
	if secs < 0 {
		secs = 0
	}
	hh := secs / 3600
	mm := (secs % 3600) / 60
	ss := secs % 60
	var b strings.Builder
	if hh > 0 {
		b.WriteString(strconv.Itoa(hh))
		b.WriteByte(':')
		writePadded(&b, mm)
	} else {
		b.WriteString(strconv.Itoa(mm))
	}
	b.WriteByte(':')
	writePadded(&b, ss)
	return b.String()
}

func writePadded(b *strings.Builder, n int) {
	if n < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(n))
}

// Delta renders a signed difference such as a trend, "+0:12" meaning slower.
func Delta(secs *float64) string {
	if secs == nil {
		return Placeholder
	}
	v := *secs
	sign := "+"
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + Seconds(int(math.Floor(v)))
}
