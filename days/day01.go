// Package days holds one self-contained solution per Advent of Code
// 2023 day. Each DayNN reads inputs/dayNN from the working directory
// and prints the answers to both parts.
package days

import (
	"fmt"
	"log"
	"strings"

	"aoc2023/aoc"
)

// Day01 sums calibration values hidden in lines of text.
func Day01() {
	input := aoc.ReadDay(1)
	fmt.Println("Part 1: Total calibration value:", totalCalibration(input, lineDigits))
	fmt.Println("Part 2: Total calibration value:", totalCalibration(input, lineDigitsSpelled))
}

func totalCalibration(input []byte, digits func(string) (int, int)) int {
	total := 0
	aoc.ForLines(input, func(line string) {
		first, last := digits(line)
		total += first*10 + last
	})
	return total
}

// lineDigits returns the first and last ASCII digit of the line. If the
// line has a single digit it counts as both.
func lineDigits(line string) (first, last int) {
	first = -1
	for _, r := range line {
		if r < '0' || r > '9' {
			continue
		}
		d := aoc.Digit(r)
		if first == -1 {
			first = d
		}
		last = d
	}
	if first == -1 {
		log.Fatalf("no digit in line %q", line)
	}
	return first, last
}

var spelledDigits = []string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// digitAt reports the digit starting at offset i, either an ASCII digit
// or a spelled-out one.
func digitAt(line string, i int) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	for d, name := range spelledDigits {
		if strings.HasPrefix(line[i:], name) {
			return d + 1, true
		}
	}
	return 0, false
}

// lineDigitsSpelled is lineDigits with spelled-out digits allowed.
// Words may overlap: "oneight" yields 1 and 8.
func lineDigitsSpelled(line string) (first, last int) {
	first = -1
	for i := range line {
		d, ok := digitAt(line, i)
		if !ok {
			continue
		}
		if first == -1 {
			first = d
		}
		last = d
	}
	if first == -1 {
		log.Fatalf("no digit in line %q", line)
	}
	return first, last
}
