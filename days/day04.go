package days

import (
	"fmt"
	"log"
	"strings"

	"aoc2023/aoc"
)

// scratchcard keeps only what the puzzle needs: how many of the card's
// numbers appear in its winning set.
type scratchcard struct {
	matches int
}

// Day04 scores scratchcards and counts the cascading copies they win.
func Day04() {
	cards := parseCards(aoc.ReadDay(4))
	fmt.Println("Part 1: Total points:", totalPoints(cards))
	fmt.Println("Part 2: Total cards:", countCardPile(cards))
}

// parseCards parses lines like
// "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func parseCards(input []byte) []scratchcard {
	var cards []scratchcard
	aoc.ForLines(input, func(line string) {
		_, rest, ok := strings.Cut(line, ": ")
		if !ok {
			log.Fatalf("bad card: %q", line)
		}
		winning, have, ok := strings.Cut(rest, " | ")
		if !ok {
			log.Fatalf("bad card: %q", line)
		}
		win := make(map[int]bool)
		for _, n := range aoc.Ints(strings.Fields(winning)...) {
			win[n] = true
		}
		matches := 0
		for _, n := range aoc.Ints(strings.Fields(have)...) {
			if win[n] {
				matches++
			}
		}
		cards = append(cards, scratchcard{matches: matches})
	})
	return cards
}

func (c scratchcard) points() int {
	if c.matches == 0 {
		return 0
	}
	return 1 << (c.matches - 1)
}

func totalPoints(cards []scratchcard) int {
	total := 0
	for _, c := range cards {
		total += c.points()
	}
	return total
}

// countCardPile counts all cards after each card i wins one copy of the
// next matches cards, multiplied by how many copies of i exist.
func countCardPile(cards []scratchcard) int {
	pile := make([]int, len(cards))
	for i := range pile {
		pile[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.matches && j < len(pile); j++ {
			pile[j] += pile[i]
		}
	}
	return aoc.Sum(pile...)
}
