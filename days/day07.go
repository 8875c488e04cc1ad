package days

import (
	"cmp"
	"fmt"
	"log"
	"slices"
	"strings"

	"aoc2023/aoc"
)

// Hand categories, weakest first.
const (
	highCard = iota
	onePair
	twoPair
	threeOfKind
	fullHouse
	fourOfKind
	fiveOfKind
)

// hand is a five-card camel cards hand. cards holds per-position
// strengths so ties within a category compare card by card.
type hand struct {
	cards [5]int
	typ   int
	bid   int
}

// Day07 ranks camel cards hands and totals the winnings.
func Day07() {
	input := aoc.ReadDay(7)
	fmt.Println("Part 1: Total winnings:", totalWinnings(parseHands(input, false)))
	fmt.Println("Part 2: Total winnings:", totalWinnings(parseHands(input, true)))
}

// cardStrength maps a card label to its strength. With joker rules J
// drops below every other card.
func cardStrength(c byte, joker bool) int {
	switch c {
	case 'A':
		return 14
	case 'K':
		return 13
	case 'Q':
		return 12
	case 'J':
		if joker {
			return 1
		}
		return 11
	case 'T':
		return 10
	}
	if c < '2' || c > '9' {
		log.Fatalf("bad card: %q", c)
	}
	return int(c - '0')
}

// parseHands parses lines like "32T3K 765" and returns the hands sorted
// weakest first.
func parseHands(input []byte, joker bool) []hand {
	var hands []hand
	aoc.ForLines(input, func(line string) {
		cards, bid, ok := strings.Cut(line, " ")
		if !ok || len(cards) != 5 {
			log.Fatalf("bad hand: %q", line)
		}
		h := hand{bid: aoc.Int(bid)}
		for i := 0; i < 5; i++ {
			h.cards[i] = cardStrength(cards[i], joker)
		}
		h.typ = handType(h.cards)
		hands = append(hands, h)
	})
	slices.SortFunc(hands, compareHands)
	return hands
}

// handType categorizes a hand by its group sizes. Jokers join the
// largest group, which always yields the best category.
func handType(cards [5]int) int {
	counts := make(map[int]int)
	for _, c := range cards {
		counts[c]++
	}
	jokers := counts[1]
	delete(counts, 1)

	var groups []int
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })
	if len(groups) == 0 {
		groups = []int{0} // five jokers
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return fiveOfKind
	case groups[0] == 4:
		return fourOfKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	}
	return highCard
}

func compareHands(a, b hand) int {
	if a.typ != b.typ {
		return cmp.Compare(a.typ, b.typ)
	}
	for i := range a.cards {
		if a.cards[i] != b.cards[i] {
			return cmp.Compare(a.cards[i], b.cards[i])
		}
	}
	return 0
}

// totalWinnings sums bid times rank over hands sorted weakest first.
func totalWinnings(hands []hand) int {
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return total
}
