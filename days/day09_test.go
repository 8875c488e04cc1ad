package days

import (
	"testing"

	"aoc2023/aoc"
)

const day09Sample = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45`

func TestHistoryExtrapolation(t *testing.T) {
	histories := parseHistories([]byte(day09Sample))

	next, prev := 0, 0
	for _, h := range histories {
		next += aoc.Extrapolate(h, true)
		prev += aoc.Extrapolate(h, false)
	}
	if next != 114 {
		t.Errorf("sum of next values = %v, want 114", next)
	}
	if prev != 2 {
		t.Errorf("sum of previous values = %v, want 2", prev)
	}
}
