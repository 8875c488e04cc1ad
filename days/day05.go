package days

import (
	"cmp"
	"fmt"
	"log"
	"math"
	"runtime"
	"slices"
	"strings"

	"aoc2023/aoc"
)

// remapEntry maps the inclusive source range [start, end] onto the
// range of the same length beginning at dest.
type remapEntry struct {
	start, end int
	dest       int
}

// remapTable is one almanac map, sorted by range start.
type remapTable []remapEntry

// Day05 runs seeds through the almanac's remapping tables and reports
// the lowest final location.
func Day05() {
	seeds, almanac := parseAlmanac(aoc.ReadDay(5))
	fmt.Println("Part 1: Lowest location:", lowestLocation(seeds, almanac))
	fmt.Println("Part 2: Lowest location:", lowestLocationRanges(seeds, almanac))
}

// parseAlmanac parses the seed list and the blank-line-separated maps.
// Tables keep their order of occurrence; entries within a table are
// sorted for binary search.
func parseAlmanac(input []byte) (seeds []int, almanac []remapTable) {
	blocks := strings.Split(strings.TrimSpace(string(input)), "\n\n")
	if len(blocks) < 2 {
		log.Fatalf("almanac has no maps")
	}
	seeds = aoc.Ints(strings.Fields(aoc.TrimPrefix(blocks[0], "seeds: "))...)

	for _, block := range blocks[1:] {
		lines := strings.Split(block, "\n")
		var table remapTable
		for _, line := range lines[1:] { // skip the "x-to-y map:" header
			f := aoc.Ints(strings.Fields(line)...)
			if len(f) != 3 {
				log.Fatalf("bad map entry: %q", line)
			}
			table = append(table, remapEntry{
				start: f[1],
				end:   f[1] + f[2] - 1,
				dest:  f[0],
			})
		}
		slices.SortFunc(table, func(a, b remapEntry) int {
			return cmp.Compare(a.start, b.start)
		})
		almanac = append(almanac, table)
	}
	return seeds, almanac
}

// lookup translates v through the table. Values outside every range
// pass through unchanged.
func (t remapTable) lookup(v int) int {
	i, ok := slices.BinarySearchFunc(t, v, func(e remapEntry, v int) int {
		switch {
		case e.end < v:
			return -1
		case e.start > v:
			return 1
		}
		return 0
	})
	if !ok {
		return v
	}
	return t[i].dest + v - t[i].start
}

func seedLocation(seed int, almanac []remapTable) int {
	v := seed
	for _, t := range almanac {
		v = t.lookup(v)
	}
	return v
}

func lowestLocation(seeds []int, almanac []remapTable) int {
	lowest := math.MaxInt
	for _, s := range seeds {
		lowest = min(lowest, seedLocation(s, almanac))
	}
	return lowest
}

// seedRange is n consecutive seeds starting at start.
type seedRange struct {
	start, n int
}

// lowestLocationRanges reads the seed list as (start, length) pairs and
// brute-forces every seed. The ranges are partitioned into disjoint
// chunks, one goroutine per chunk, and the per-chunk minima are folded
// into the global minimum.
func lowestLocationRanges(seeds []int, almanac []remapTable) int {
	if len(seeds)%2 != 0 {
		log.Fatalf("odd seed range list")
	}
	var chunks []seedRange
	for i := 0; i < len(seeds); i += 2 {
		chunks = append(chunks, splitRange(seedRange{seeds[i], seeds[i+1]}, runtime.NumCPU())...)
	}
	return aoc.ParallelMapFold(chunks,
		func(r seedRange) int {
			lowest := math.MaxInt
			for s := r.start; s < r.start+r.n; s++ {
				lowest = min(lowest, seedLocation(s, almanac))
			}
			return lowest
		},
		func(acc, v int) int { return min(acc, v) },
		math.MaxInt)
}

// splitRange cuts r into at most parts equal pieces.
func splitRange(r seedRange, parts int) []seedRange {
	size := max(1, (r.n+parts-1)/parts)
	var out []seedRange
	for start := r.start; start < r.start+r.n; start += size {
		out = append(out, seedRange{start, min(size, r.start+r.n-start)})
	}
	return out
}
