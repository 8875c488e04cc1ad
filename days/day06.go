package days

import (
	"fmt"
	"log"
	"math"
	"strings"

	"aoc2023/aoc"
)

// race is one boat race: the time limit and the distance record.
type race struct {
	time     int
	distance int
}

// Day06 counts the hold times that beat each race record.
func Day06() {
	input := aoc.ReadDay(6)

	races := parseRaces(input)
	product := 1
	for _, r := range races {
		product *= waysToBeat(r)
	}
	fmt.Println("Part 1: Product of ways to beat the records:", product)

	// Part 2: the spacing was wrong; it is all one big race.
	squashed := parseRaces([]byte(strings.ReplaceAll(string(input), " ", "")))
	fmt.Println("Part 2: Ways to beat the record:", waysToBeat(squashed[0]))
}

// parseRaces zips the Time: and Distance: lines into races.
func parseRaces(input []byte) []race {
	lines := strings.Split(strings.TrimSpace(string(input)), "\n")
	if len(lines) != 2 {
		log.Fatalf("want 2 input lines, got %d", len(lines))
	}
	times := aoc.Ints(strings.Fields(aoc.TrimPrefix(lines[0], "Time:"))...)
	dists := aoc.Ints(strings.Fields(aoc.TrimPrefix(lines[1], "Distance:"))...)
	if len(times) != len(dists) {
		log.Fatalf("mismatched times and distances")
	}
	races := make([]race, len(times))
	for i := range times {
		races[i] = race{time: times[i], distance: dists[i]}
	}
	return races
}

// waysToBeat counts the integer hold times t with t*(time-t) > distance.
// Holding for t gives speed t for the remaining time-t, so the winning
// window is the open interval between the roots of t^2 - time*t + distance.
// The ±1 before the inverse rounding keeps exact roots out of the count,
// since tying the record is not beating it.
func waysToBeat(r race) int {
	hi, lo := aoc.SolveQuad(1, -r.time, r.distance)
	t1 := int(math.Ceil(hi - 1))
	t2 := int(math.Floor(lo + 1))
	return t1 - t2 + 1
}
