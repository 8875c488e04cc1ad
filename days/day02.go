package days

import (
	"fmt"
	"log"
	"strings"

	"aoc2023/aoc"
)

// Limits for part 1: a game is possible with at most this many cubes
// of each color in the bag.
const (
	limitRed   = 12
	limitGreen = 13
	limitBlue  = 14
)

// cubeGame records the maximum number of cubes of each color shown
// across all draws of one game.
type cubeGame struct {
	id    int
	red   int
	green int
	blue  int
}

// Day02 totals cube game ids and powers.
func Day02() {
	games := parseGames(aoc.ReadDay(2))
	fmt.Println("Part 1: Sum of possible game ids:", sumPossibleGames(games))
	fmt.Println("Part 2: Sum of powers:", sumPowers(games))
}

// parseGames parses lines like
// "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green".
func parseGames(input []byte) []cubeGame {
	var games []cubeGame
	aoc.ForLines(input, func(line string) {
		head, rest, ok := strings.Cut(line, ": ")
		if !ok {
			log.Fatalf("bad game record: %q", line)
		}
		g := cubeGame{id: aoc.Int(aoc.TrimPrefix(head, "Game "))}
		for _, draw := range strings.FieldsFunc(rest, func(r rune) bool {
			return r == ',' || r == ';'
		}) {
			f := strings.Fields(draw)
			if len(f) != 2 {
				log.Fatalf("bad cube record: %q", draw)
			}
			n := aoc.Int(f[0])
			switch f[1] {
			case "red":
				g.red = max(g.red, n)
			case "green":
				g.green = max(g.green, n)
			case "blue":
				g.blue = max(g.blue, n)
			default:
				log.Fatalf("bad color: %q", f[1])
			}
		}
		games = append(games, g)
	})
	return games
}

func sumPossibleGames(games []cubeGame) int {
	total := 0
	for _, g := range games {
		if g.red <= limitRed && g.green <= limitGreen && g.blue <= limitBlue {
			total += g.id
		}
	}
	return total
}

func sumPowers(games []cubeGame) int {
	total := 0
	for _, g := range games {
		total += g.red * g.green * g.blue
	}
	return total
}
