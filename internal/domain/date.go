package domain

import "time"

const DateLayout = time.DateOnly

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays shifts a valid date by n days.
func AddDays(date string, n int) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return FormatDate(t.AddDate(0, 0, n))
}
