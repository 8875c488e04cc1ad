package days

import (
	"fmt"

	"aoc2023/aoc"
)

// partNumber is a run of digits in the schematic, with the row it sits
// on and the columns it spans (inclusive).
type partNumber struct {
	val        int
	row        int
	start, end int
}

// Day03 sums part numbers and gear ratios in an engine schematic.
func Day03() {
	grid := parseSchematic(aoc.ReadDay(3))
	parts := findPartNumbers(grid)
	fmt.Println("Part 1: Sum of part numbers:", sumPartNumbers(parts))
	fmt.Println("Part 2: Sum of gear ratios:", sumGearRatios(grid, parts))
}

func parseSchematic(input []byte) aoc.Grid[byte] {
	var grid aoc.Grid[byte]
	aoc.ForLines(input, func(line string) {
		grid = append(grid, []byte(line))
	})
	return grid
}

func isSchematicSymbol(c byte) bool {
	return c != '.' && (c < '0' || c > '9')
}

// findPartNumbers scans each row for digit runs and keeps those with a
// symbol in any of the eight directions around any of their digits.
func findPartNumbers(grid aoc.Grid[byte]) []partNumber {
	var parts []partNumber
	for row, cells := range grid {
		col := 0
		for col < len(cells) {
			if cells[col] < '0' || cells[col] > '9' {
				col++
				continue
			}
			n := partNumber{row: row, start: col}
			for col < len(cells) && cells[col] >= '0' && cells[col] <= '9' {
				n.val = n.val*10 + int(cells[col]-'0')
				col++
			}
			n.end = col - 1
			if touchesSymbol(grid, n) {
				parts = append(parts, n)
			}
		}
	}
	return parts
}

func touchesSymbol(grid aoc.Grid[byte], n partNumber) bool {
	for col := n.start; col <= n.end; col++ {
		found := false
		p := aoc.Pt{X: col, Y: n.row}
		p.ForNeighbors(func(q aoc.Pt) bool {
			if c, ok := grid.AtOk(q); ok && isSchematicSymbol(c) {
				found = true
				return false
			}
			return true
		})
		if found {
			return true
		}
	}
	return false
}

func sumPartNumbers(parts []partNumber) int {
	total := 0
	for _, n := range parts {
		total += n.val
	}
	return total
}

// sumGearRatios finds '*' cells adjacent to exactly two part numbers
// and sums the products of those pairs.
func sumGearRatios(grid aoc.Grid[byte], parts []partNumber) int {
	total := 0
	for row, cells := range grid {
		for col, c := range cells {
			if c != '*' {
				continue
			}
			ratio, adjacent := 1, 0
			for _, n := range parts {
				if n.adjacentTo(aoc.Pt{X: col, Y: row}) {
					adjacent++
					ratio *= n.val
				}
			}
			if adjacent == 2 {
				total += ratio
			}
		}
	}
	return total
}

func (n partNumber) adjacentTo(p aoc.Pt) bool {
	return aoc.AbsDiff(n.row, p.Y) <= 1 && p.X >= n.start-1 && p.X <= n.end+1
}
