package aoc

import (
	"math"
	"slices"
	"testing"
)

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		pts  []Pt
		want int
	}{
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 5, Y: 0},
				{X: 5, Y: 5},
				{X: 0, Y: 5},
				{X: 0, Y: 0},
			},
			want: 25,
		},
	}

	for _, tt := range tests {
		if got := PolygonArea(tt.pts); got != tt.want {
			t.Errorf("PolygonArea(%v) = %v, want %v", tt.pts, got, tt.want)
		}
	}
}

func TestPolygonInteriorPoints(t *testing.T) {
	// Unit square traced step by step: area 1, boundary 4, no interior
	// points. A 3x3 square has exactly one.
	tests := []struct {
		pts  []Pt
		want int
	}{
		{
			pts: []Pt{
				{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0},
			},
			want: 0,
		},
		{
			pts: []Pt{
				{0, 0}, {1, 0}, {2, 0},
				{2, 1}, {2, 2},
				{1, 2}, {0, 2},
				{0, 1}, {0, 0},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		if got := PolygonInteriorPoints(tt.pts); got != tt.want {
			t.Errorf("PolygonInteriorPoints(%v) = %v, want %v", tt.pts, got, tt.want)
		}
	}
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		in          []int
		wantForward int
		wantBack    int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 28, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
	}

	for _, tt := range tests {
		if got := Extrapolate(tt.in, true); got != tt.wantForward {
			t.Errorf("Extrapolate(%v, true) = %v, want %v", tt.in, got, tt.wantForward)
		}
		if got := Extrapolate(tt.in, false); got != tt.wantBack {
			t.Errorf("Extrapolate(%v, false) = %v, want %v", tt.in, got, tt.wantBack)
		}
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{7}, 7},
		{[]int{2, 3}, 6},
		{[]int{4, 6, 10}, 60},
	}

	for _, tt := range tests {
		if got := LCM(tt.in...); got != tt.want {
			t.Errorf("LCM(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSolveQuad(t *testing.T) {
	// x^2 - 5x + 6 has roots 3 and 2.
	hi, lo := SolveQuad(1, -5, 6)
	if hi != 3 || lo != 2 {
		t.Errorf("SolveQuad(1, -5, 6) = %v, %v, want 3, 2", hi, lo)
	}
}

func TestGridHash(t *testing.T) {
	g1 := Grid[byte]{[]byte("ab"), []byte("cd")}
	g2 := Grid[byte]{[]byte("ab"), []byte("cd")}
	g3 := Grid[byte]{[]byte("ab"), []byte("ce")}

	if g1.Hash() != g2.Hash() {
		t.Errorf("equal grids hashed differently")
	}
	if g1.Hash() == g3.Hash() {
		t.Errorf("different grids hashed equal")
	}
}

func TestParallelMapFold(t *testing.T) {
	in := []int{5, 3, 9, 1, 7}
	got := ParallelMapFold(in,
		func(v int) int { return v * v },
		func(acc, v int) int { return min(acc, v) },
		math.MaxInt)
	if got != 1 {
		t.Errorf("ParallelMapFold = %v, want 1", got)
	}
}

func TestDigits(t *testing.T) {
	if got := Digits("1402"); !slices.Equal(got, []int{1, 4, 0, 2}) {
		t.Errorf("Digits(\"1402\") = %v, want [1 4 0 2]", got)
	}
}
