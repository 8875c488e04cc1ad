package days

import (
	"fmt"
	"log"

	"aoc2023/aoc"
)

// Day10 walks the pipe loop. Part 1 is the farthest tile from the
// start; part 2 counts the tiles enclosed by the loop via the shoelace
// area and Pick's theorem.
func Day10() {
	maze := parseMaze(aoc.ReadDay(10))
	loop := traceLoop(maze)
	fmt.Println("Part 1: Farthest distance:", (len(loop)-1)/2)
	fmt.Println("Part 2: Enclosed tiles:", aoc.PolygonInteriorPoints(loop))
}

func parseMaze(input []byte) aoc.Grid[byte] {
	var grid aoc.Grid[byte]
	aoc.ForLines(input, func(line string) {
		grid = append(grid, []byte(line))
	})
	return grid
}

// pipeExit returns the direction a pipe sends flow that enters it
// heading in the given direction.
func pipeExit(pipe byte, heading aoc.Direction) (aoc.Direction, bool) {
	switch pipe {
	case '|':
		if heading == aoc.Up || heading == aoc.Down {
			return heading, true
		}
	case '-':
		if heading == aoc.Left || heading == aoc.Right {
			return heading, true
		}
	case 'L':
		switch heading {
		case aoc.Down:
			return aoc.Right, true
		case aoc.Left:
			return aoc.Up, true
		}
	case 'J':
		switch heading {
		case aoc.Down:
			return aoc.Left, true
		case aoc.Right:
			return aoc.Up, true
		}
	case '7':
		switch heading {
		case aoc.Up:
			return aoc.Left, true
		case aoc.Right:
			return aoc.Down, true
		}
	case 'F':
		switch heading {
		case aoc.Up:
			return aoc.Right, true
		case aoc.Left:
			return aoc.Down, true
		}
	case 'S':
		return heading, true
	}
	return 0, false
}

// findStart locates the S tile and a direction that enters a connecting
// pipe.
func findStart(grid aoc.Grid[byte]) (aoc.Pt, aoc.Direction) {
	start, found := aoc.Pt{}, false
	for y, row := range grid {
		for x, c := range row {
			if c == 'S' {
				start, found = aoc.Pt{X: x, Y: y}, true
			}
		}
	}
	if !found {
		log.Fatalf("no start tile")
	}
	for _, dir := range []aoc.Direction{aoc.Up, aoc.Right, aoc.Down, aoc.Left} {
		if p, ok := grid.Move(aoc.Path{Pt: start, Dir: dir}); ok {
			if _, ok := pipeExit(grid.At(p.Pt), dir); ok {
				return start, dir
			}
		}
	}
	log.Fatalf("start tile connects to nothing")
	panic("unreachable")
}

// traceLoop walks the loop from S back to S and returns every tile on
// it, with the start repeated at the end to close the polygon.
func traceLoop(grid aoc.Grid[byte]) []aoc.Pt {
	start, dir := findStart(grid)
	loop := []aoc.Pt{start}
	cur := aoc.Path{Pt: start, Dir: dir}
	for {
		next, ok := grid.Move(cur)
		if !ok {
			log.Fatalf("walked off the maze at %v heading %v", cur.Pt, cur.Dir)
		}
		if next.Pt == start {
			return append(loop, start)
		}
		exit, ok := pipeExit(grid.At(next.Pt), cur.Dir)
		if !ok {
			log.Fatalf("pipe %q at %v does not connect", grid.At(next.Pt), next.Pt)
		}
		loop = append(loop, next.Pt)
		cur = aoc.Path{Pt: next.Pt, Dir: exit}
	}
}
