package days

import (
	"strings"
	"testing"
)

const day06Sample = `Time:      7  15   30
Distance:  9  40  200`

func TestBoatRaces(t *testing.T) {
	races := parseRaces([]byte(day06Sample))

	wantWays := []int{4, 8, 9}
	product := 1
	for i, want := range wantWays {
		got := waysToBeat(races[i])
		if got != want {
			t.Errorf("waysToBeat(%+v) = %v, want %v", races[i], got, want)
		}
		product *= got
	}
	if product != 288 {
		t.Errorf("product = %v, want 288", product)
	}
}

func TestBoatRaceSquashed(t *testing.T) {
	squashed := parseRaces([]byte(strings.ReplaceAll(day06Sample, " ", "")))
	if got := waysToBeat(squashed[0]); got != 71503 {
		t.Errorf("waysToBeat = %v, want 71503", got)
	}
}
