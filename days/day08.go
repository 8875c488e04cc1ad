package days

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/exp/maps"

	"aoc2023/aoc"
)

// node is a fork in the network: the nodes reached by going left or
// right.
type node struct {
	left, right string
}

// wasteland is the cyclic L/R instruction string plus the node map.
type wasteland struct {
	directions string
	nodes      map[string]node
}

// Day08 walks the haunted wasteland network.
func Day08() {
	w := parseWasteland(aoc.ReadDay(8))
	fmt.Println("Part 1: Steps from AAA to ZZZ:", w.steps("AAA", func(n string) bool { return n == "ZZZ" }))
	fmt.Println("Part 2: Steps until all ghosts reach ..Z:", w.ghostSteps())
}

// parseWasteland parses the directions line and node lines like
// "AAA = (BBB, CCC)".
func parseWasteland(input []byte) wasteland {
	w := wasteland{nodes: make(map[string]node)}
	aoc.ForLines(input, func(line string) {
		if line == "" {
			return
		}
		if w.directions == "" {
			w.directions = line
			return
		}
		if len(line) != 16 {
			log.Fatalf("bad node: %q", line)
		}
		w.nodes[line[0:3]] = node{left: line[7:10], right: line[12:15]}
	})
	return w
}

// steps counts moves from start until done reports true. The direction
// string repeats forever.
func (w wasteland) steps(start string, done func(string) bool) int {
	cur := start
	count := 0
	for {
		for _, dir := range w.directions {
			count++
			n, ok := w.nodes[cur]
			if !ok {
				log.Fatalf("unknown node %q", cur)
			}
			if dir == 'L' {
				cur = n.left
			} else {
				cur = n.right
			}
			if done(cur) {
				return count
			}
		}
	}
}

// ghostSteps starts a ghost on every ..A node. Each ghost's path cycles
// once it reaches a ..Z node, so the first simultaneous arrival is the
// LCM of the individual cycle lengths.
func (w wasteland) ghostSteps() int {
	endsInZ := func(n string) bool { return strings.HasSuffix(n, "Z") }
	var lengths []int
	for _, start := range maps.Keys(w.nodes) {
		if strings.HasSuffix(start, "A") {
			lengths = append(lengths, w.steps(start, endsInZ))
		}
	}
	if len(lengths) == 0 {
		log.Fatalf("no starting nodes")
	}
	return aoc.LCM(lengths...)
}
