// Package aoc are quick & dirty utilities for solving Advent of Code
// 2023 problems.
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ReadDay returns the puzzle input for the day, read from inputs/dayNN
// relative to the working directory.
func ReadDay(day int) []byte {
	name := filepath.Join("inputs", fmt.Sprintf("day%02d", day))
	return MustGet(os.ReadFile(name))
}

// ForLines calls onLine for each line of input.
func ForLines(input []byte, onLine func(line string)) {
	s := bufio.NewScanner(bytes.NewReader(input))
	for s.Scan() {
		onLine(s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		log.Fatalf("bad prefix: %q", s)
	}
	return s1
}

func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}
