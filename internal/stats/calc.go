package stats

import "sort"

const trendWindow = 7

func mean(values []int) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	m := float64(sum) / float64(len(values))
	return &m
}

func median(values []int) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	var m float64
	if len(sorted)%2 == 1 {
		m = float64(sorted[mid])
	} else {
		m = float64(sorted[mid-1]+sorted[mid]) / 2
	}
	return &m
}

func minimum(values []int) *int {
	if len(values) == 0 {
		return nil
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return &m
}

func maximum(values []int) *int {
	if len(values) == 0 {
		return nil
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return &m
}

// windows splits chronological values into the last trendWindow values and
// the trendWindow values before them. Either may be shorter or empty.
func windows(values []int) (last, prev []int) {
	n := len(values)
	lastStart := n - trendWindow
	if lastStart < 0 {
		lastStart = 0
	}
	prevStart := n - 2*trendWindow
	if prevStart < 0 {
		prevStart = 0
	}
	return values[lastStart:], values[prevStart:lastStart]
}

// trend is recent minus previous; positive means slower.
func trend(values []int) (last7 *float64, delta *float64) {
	last, prev := windows(values)
	last7 = mean(last)
	prevAvg := mean(prev)
	if last7 == nil || prevAvg == nil {
		return last7, nil
	}
	d := *last7 - *prevAvg
	return last7, &d
}
