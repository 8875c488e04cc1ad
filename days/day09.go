package days

import (
	"fmt"
	"strings"

	"aoc2023/aoc"
)

// Day09 extrapolates each history line by recursive finite differences
// and sums the results.
func Day09() {
	histories := parseHistories(aoc.ReadDay(9))

	next, prev := 0, 0
	for _, h := range histories {
		next += aoc.Extrapolate(h, true)
		prev += aoc.Extrapolate(h, false)
	}
	fmt.Println("Part 1: Sum of next values:", next)
	fmt.Println("Part 2: Sum of previous values:", prev)
}

func parseHistories(input []byte) [][]int {
	var histories [][]int
	aoc.ForLines(input, func(line string) {
		histories = append(histories, aoc.Ints(strings.Fields(line)...))
	})
	return histories
}
